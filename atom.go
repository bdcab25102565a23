package phie

// Atom is a built-in function an Object's λ attribute can name. Every atom
// receives the dataized values of ρ (args[0]) and each 𝛼N (args[1:]) it
// declares, in attribute order, and returns the resulting Data.
type Atom func(args []Data) (Data, error)

// atoms is the fixed registry of the seven names the surface syntax
// accepts for λ. Unknown names are a parse-time error, not a runtime one.
var atoms = map[string]Atom{
	"int-times": func(a []Data) (Data, error) { return a[0].mul(a[1]), nil },
	"int-div":   func(a []Data) (Data, error) { return a[0].div(a[1]) },
	"int-sub":   func(a []Data) (Data, error) { return a[0].sub(a[1]), nil },
	"int-add":   func(a []Data) (Data, error) { return a[0].add(a[1]), nil },
	"int-neg":   func(a []Data) (Data, error) { return a[0].neg(), nil },
	"bool-if": func(a []Data) (Data, error) {
		if a[0] != falseData {
			return a[1], nil
		}
		return a[2], nil
	},
	"int-less": func(a []Data) (Data, error) { return boolData(a[0].less(a[1])), nil },
}

// lookupAtom resolves a λ attribute's atom name, erroring with the same
// "unknown lambda" shape the surface syntax uses for any other malformed
// object literal.
func lookupAtom(name string) (Atom, error) {
	a, ok := atoms[name]
	if !ok {
		return nil, errf(BadObject, nil, "unknown lambda %q", name)
	}
	return a, nil
}
