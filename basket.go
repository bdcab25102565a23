package phie

import (
	"sort"
	"strconv"
	"strings"
)

// KidKind is the state a basket's slot for some Loc is currently in.
type KidKind int

const (
	// Empt is a slot nothing has demanded yet.
	Empt KidKind = iota
	// Rqtd is a slot whose resolution is in progress higher up the stack.
	Rqtd
	// Need is a slot waiting on a freshly-allocated child basket to be seeded.
	Need
	// Wait is a slot waiting on another basket's slot to dataize.
	Wait
	// Dtzd is a slot that has reached a concrete Data value.
	Dtzd
)

// Kid is the tagged state of one basket slot. Only the fields relevant to
// Kind are meaningful.
type Kid struct {
	Kind KidKind
	Ob   Ob   // Need
	Bk   Bk   // Need, Wait
	Loc  Loc  // Wait
	Data Data // Dtzd
}

func (k Kid) String() string {
	switch k.Kind {
	case Empt:
		return "→∅"
	case Rqtd:
		return "→?"
	case Need:
		return "→(ν" + strconv.Itoa(int(k.Ob)) + ";β" + strconv.Itoa(int(k.Bk)) + ")"
	case Wait:
		return "⇉β" + strconv.Itoa(int(k.Bk)) + "." + k.Loc.String()
	case Dtzd:
		return "⇶" + k.Data.String()
	default:
		return "?"
	}
}

// Bk is a basket id. -1 denotes the absence of a basket (empty/sentinel).
type Bk int

// Basket is one activation record: the object it instantiates, the parent
// basket (ψ) it was spawned from, and the current state of each attribute
// it has started to resolve.
type Basket struct {
	Ob   Ob
	Psi  Bk
	Kids map[Loc]Kid
}

// NewBasket returns a basket for object ob with no parent (Psi -1).
func NewBasket(ob Ob) *Basket {
	return &Basket{Ob: ob, Psi: -1, Kids: make(map[Loc]Kid)}
}

// StartBasket returns a basket for object ob spawned from parent psi.
func StartBasket(ob Ob, psi Bk) *Basket {
	return &Basket{Ob: ob, Psi: psi, Kids: make(map[Loc]Kid)}
}

// IsEmpty reports whether the basket has no parent (Psi < 0), i.e. is the
// sentinel empty basket. The engine's root basket is self-parented
// (Psi 0), so it is not empty.
func (b *Basket) IsEmpty() bool { return b.Psi < 0 }

func (b *Basket) String() string {
	locs := make([]Loc, 0, len(b.Kids))
	for l := range b.Kids {
		locs = append(locs, l)
	}
	sort.Slice(locs, func(i, j int) bool { return locLess(locs[i], locs[j]) })
	parts := make([]string, 0, len(locs))
	for _, l := range locs {
		parts = append(parts, l.String()+b.Kids[l].String())
	}
	out := "[ν" + strconv.Itoa(int(b.Ob)) + ", ξ:β" + strconv.Itoa(int(b.Psi))
	if len(parts) > 0 {
		out += ", " + strings.Join(parts, ", ")
	}
	return out + "]"
}

// ParseBasket parses a basket literal such as
// "[ν5, ξ:β18, Δ⇶0x1F21, ρ⇉β4.𝜑, 𝛼12→?, 𝛼1→?, 𝛼3→(ν5;β5), 𝜑→∅]".
func ParseBasket(s string) (*Basket, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return nil, errf(BadBasket, nil, "can't parse the basket %q", s)
	}
	body := s[1 : len(s)-1]
	parts := strings.Split(body, ",")
	if len(parts) < 2 {
		return nil, errf(BadBasket, nil, "missing psi part in %q", s)
	}
	obPart := strings.TrimSpace(parts[0])
	if !strings.HasPrefix(obPart, "ν") {
		return nil, errf(BadBasket, nil, "can't parse the v part %q", obPart)
	}
	obN, err := strconv.Atoi(strings.TrimPrefix(obPart, "ν"))
	if err != nil {
		return nil, errf(BadBasket, err, "can't parse the v part %q", obPart)
	}
	psiPart := strings.TrimSpace(parts[1])
	if !strings.HasPrefix(psiPart, "ξ:β") {
		return nil, errf(BadBasket, nil, "missing psi part in %q", s)
	}
	psiN, err := strconv.Atoi(strings.TrimPrefix(psiPart, "ξ:β"))
	if err != nil {
		return nil, errf(BadBasket, err, "can't parse the psi part %q", psiPart)
	}
	b := &Basket{Ob: Ob(obN), Psi: Bk(psiN), Kids: make(map[Loc]Kid)}
	for _, raw := range parts[2:] {
		kp := strings.TrimSpace(raw)
		if kp == "" {
			continue
		}
		loc, kid, err := parseKidPart(kp)
		if err != nil {
			return nil, err
		}
		b.Kids[loc] = kid
	}
	return b, nil
}

func parseKidPart(s string) (Loc, Kid, error) {
	markers := []string{"⇶0x", "⇉β", "→(ν", "→∅", "→?"}
	for _, m := range markers {
		idx := strings.Index(s, m)
		if idx < 0 {
			continue
		}
		locStr := s[:idx]
		loc, err := ParseLoc(locStr)
		if err != nil {
			return Loc{}, Kid{}, errf(BadBasket, err, "can't parse location in kid %q", s)
		}
		rest := s[idx:]
		switch m {
		case "⇶0x":
			d, err := ParseData(rest[len("⇶"):])
			if err != nil {
				return Loc{}, Kid{}, errf(BadBasket, err, "can't parse data %q", rest)
			}
			return loc, Kid{Kind: Dtzd, Data: d}, nil
		case "⇉β":
			tail := rest[len("⇉β"):]
			bkStr, locPart, ok := strings.Cut(tail, ".")
			if !ok {
				return Loc{}, Kid{}, errf(BadBasket, nil, "can't parse wait loc %q", rest)
			}
			bkN, err := strconv.Atoi(bkStr)
			if err != nil {
				return Loc{}, Kid{}, errf(BadBasket, err, "can't parse wait number %q", bkStr)
			}
			waitLoc, err := ParseLoc(locPart)
			if err != nil {
				return Loc{}, Kid{}, errf(BadBasket, err, "can't parse wait loc %q", locPart)
			}
			return loc, Kid{Kind: Wait, Bk: Bk(bkN), Loc: waitLoc}, nil
		case "→(ν":
			tail := strings.TrimSuffix(rest[len("→("):], ")")
			tail = strings.TrimPrefix(tail, "ν")
			obStr, bkStr, ok := strings.Cut(tail, ";β")
			if !ok {
				return Loc{}, Kid{}, errf(BadBasket, nil, "can't parse need obj %q", rest)
			}
			obN, err := strconv.Atoi(obStr)
			if err != nil {
				return Loc{}, Kid{}, errf(BadBasket, err, "can't parse need obj %q", obStr)
			}
			bkN, err := strconv.Atoi(bkStr)
			if err != nil {
				return Loc{}, Kid{}, errf(BadBasket, err, "can't parse need psi %q", bkStr)
			}
			return loc, Kid{Kind: Need, Ob: Ob(obN), Bk: Bk(bkN)}, nil
		case "→∅":
			return loc, Kid{Kind: Empt}, nil
		case "→?":
			return loc, Kid{Kind: Rqtd}, nil
		}
	}
	return Loc{}, Kid{}, errf(BadBasket, nil, "unknown kid type %q", s)
}
