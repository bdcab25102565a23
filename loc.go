package phie

import "strconv"

// LocKind discriminates the fixed and parameterized forms a Loc can take.
type LocKind int

const (
	LocRoot LocKind = iota
	LocRho
	LocPhi
	LocPi
	LocDelta
	LocSigma
	LocAttr
	LocObj
)

// Loc is one step of a Locator: either a fixed pointer (Φ, ρ, 𝜑, 𝜋, Δ, σ)
// or a parameterized one (𝛼N argument, νN object reference).
type Loc struct {
	Kind LocKind
	N    int // valid for LocAttr and LocObj only
}

var (
	Root  = Loc{Kind: LocRoot}
	Rho   = Loc{Kind: LocRho}
	Phi   = Loc{Kind: LocPhi}
	Pi    = Loc{Kind: LocPi}
	Delta = Loc{Kind: LocDelta}
	Sigma = Loc{Kind: LocSigma}
)

// Attr builds the 𝛼N locator step for argument N.
func Attr(n int) Loc { return Loc{Kind: LocAttr, N: n} }

// ObjLoc builds the νN locator step referencing object N.
func ObjLoc(n int) Loc { return Loc{Kind: LocObj, N: n} }

func (l Loc) String() string {
	switch l.Kind {
	case LocRoot:
		return "Φ"
	case LocRho:
		return "ρ"
	case LocPhi:
		return "𝜑"
	case LocPi:
		return "𝜋"
	case LocDelta:
		return "Δ"
	case LocSigma:
		return "σ"
	case LocAttr:
		return "𝛼" + strconv.Itoa(l.N)
	case LocObj:
		return "ν" + strconv.Itoa(l.N)
	default:
		return "?"
	}
}

// ParseLoc parses a single Loc token, accepting both the Unicode glyph
// and the plain-ASCII alias spec.md's surface syntax allows for each
// fixed form (Q/D/P/^/@/&).
func ParseLoc(s string) (Loc, error) {
	if len(s) == 0 {
		return Loc{}, errf(BadLoc, nil, "empty location")
	}
	switch s {
	case "Φ", "Q":
		return Root, nil
	case "ρ", "^":
		return Rho, nil
	case "𝜑", "@":
		return Phi, nil
	case "𝜋", "P":
		return Pi, nil
	case "Δ", "D":
		return Delta, nil
	case "σ", "&":
		return Sigma, nil
	}
	if n, ok := stripDigitPrefix(s, "𝛼"); ok {
		i, err := strconv.Atoi(n)
		if err != nil {
			return Loc{}, errf(BadLoc, err, "failed to parse attr number %q", n)
		}
		return Attr(i), nil
	}
	if n, ok := stripDigitPrefix(s, "ν"); ok {
		i, err := strconv.Atoi(n)
		if err != nil {
			return Loc{}, errf(BadLoc, err, "failed to parse obj number %q", n)
		}
		return ObjLoc(i), nil
	}
	return Loc{}, errf(BadLoc, nil, "unknown loc: %q", s)
}

func stripDigitPrefix(s, prefix string) (string, bool) {
	rs := []rune(s)
	pr := []rune(prefix)
	if len(rs) <= len(pr) {
		return "", false
	}
	for i, r := range pr {
		if rs[i] != r {
			return "", false
		}
	}
	return string(rs[len(pr):]), true
}
