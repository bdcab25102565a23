package phie

import (
	"sort"
	"strings"
)

// Ob is an object id: an index into an Emu's object table.
type Ob int

// Binding is one attribute binding of an Object: a Locator a demand on this
// attribute resolves to, plus whether the binding is ξ-anchored (reset to
// the basket that first invoked it) rather than 𝜋-anchored (a plain child
// reference, the default for an attribute that names a child object).
type Binding struct {
	Target Locator
	Xi     bool
}

func (a Binding) String() string {
	s := a.Target.String()
	if len(a.Target) != 1 || a.Target[0].Kind != LocObj {
		return s
	}
	if a.Xi {
		return s + "(ξ)"
	}
	return s + "(𝜋)"
}

// Object is a φ-calculus object: an optional literal Δ value, an optional
// λ atom name, a constant flag, and a set of named attributes.
type Object struct {
	Delta    Data
	HasDelta bool

	Lambda    string
	HasLambda bool

	Constant bool

	Attrs map[Loc]Binding
}

// NewObject returns an empty, mutable object with no Δ, λ, or attributes.
func NewObject() *Object {
	return &Object{Attrs: make(map[Loc]Binding)}
}

// WithAttr sets attribute loc to target, returning the object for chaining.
func (o *Object) WithAttr(loc Loc, target Locator, xi bool) *Object {
	o.Attrs[loc] = Binding{Target: target, Xi: xi}
	return o
}

// String renders the object in the canonical surface form:
// ⟦! λ↦name, Δ↦0x0000, loc↦target(suffix), ...⟧ with λ first, Δ second,
// and the remaining attributes sorted for determinism.
func (o *Object) String() string {
	var parts []string
	if o.HasLambda {
		parts = append(parts, "λ↦"+o.Lambda)
	}
	if o.HasDelta {
		parts = append(parts, "Δ↦"+o.Delta.String())
	}
	locs := make([]Loc, 0, len(o.Attrs))
	for l := range o.Attrs {
		locs = append(locs, l)
	}
	sort.Slice(locs, func(i, j int) bool { return locLess(locs[i], locs[j]) })
	for _, l := range locs {
		parts = append(parts, l.String()+"↦"+o.Attrs[l].String())
	}
	body := strings.Join(parts, ", ")
	if o.Constant {
		return "⟦! " + body + "⟧"
	}
	return "⟦" + body + "⟧"
}

func locLess(a, b Loc) bool {
	if a.Kind != b.Kind {
		return a.Kind < b.Kind
	}
	return a.N < b.N
}

// ParseObject parses an object literal such as
// "⟦! ρ↦𝜋.𝛼0.𝜑, 𝛼1↦ν4(𝜋)⟧".
func ParseObject(s string) (*Object, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "⟦") || !strings.HasSuffix(s, "⟧") {
		return nil, errf(BadObject, nil, "invalid format %q", s)
	}
	body := s[len("⟦") : len(s)-len("⟧")]
	body = strings.TrimSpace(body)
	constant := false
	if strings.HasPrefix(body, "!") {
		constant = true
		body = strings.TrimSpace(body[1:])
	}
	obj := NewObject()
	obj.Constant = constant
	if body == "" {
		return obj, nil
	}
	for _, raw := range strings.Split(body, ",") {
		attr := strings.TrimSpace(raw)
		if attr == "" {
			return nil, errf(BadObject, nil, "empty attribute name in %q", s)
		}
		name, val, ok := strings.Cut(attr, "↦")
		if !ok {
			return nil, errf(BadObject, nil, "can't split %q", attr)
		}
		name = strings.TrimSpace(name)
		val = strings.TrimSpace(val)
		if name == "" {
			return nil, errf(BadObject, nil, "empty attribute name in %q", s)
		}
		switch {
		case name == "λ":
			atomName := val
			if _, err := lookupAtom(atomName); err != nil {
				return nil, errf(BadObject, nil, "unknown lambda %q in %q", atomName, s)
			}
			obj.HasLambda = true
			obj.Lambda = atomName
		case name == "Δ":
			d, err := ParseData(val)
			if err != nil {
				return nil, errf(BadObject, err, "can't parse hex %q in %q", val, s)
			}
			obj.HasDelta = true
			obj.Delta = d
		default:
			loc, err := ParseLoc(name)
			if err != nil {
				return nil, errf(BadObject, err, "can't parse location %q in %q", name, s)
			}
			xi := false
			val = strings.TrimSuffix(val, "(𝜋)")
			if strings.HasSuffix(val, "(ξ)") {
				xi = true
				val = strings.TrimSuffix(val, "(ξ)")
			}
			target, err := ParseLocator(strings.TrimSpace(val))
			if err != nil {
				return nil, errf(BadObject, err, "can't parse locator %q in %q", val, s)
			}
			obj.Attrs[loc] = Binding{Target: target, Xi: xi}
		}
	}
	return obj, nil
}
