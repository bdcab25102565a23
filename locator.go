package phie

import "strings"

// Locator is an ordered sequence of Loc steps, printed dot-joined
// (e.g. "𝜋.𝜋.𝛼0").
type Locator []Loc

func (lc Locator) String() string {
	parts := make([]string, len(lc))
	for i, l := range lc {
		parts[i] = l.String()
	}
	return strings.Join(parts, ".")
}

// ParseLocator parses a dot-joined chain of Loc tokens.
func ParseLocator(s string) (Locator, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errf(BadLoc, nil, "empty locator")
	}
	parts := strings.Split(s, ".")
	out := make(Locator, 0, len(parts))
	for _, p := range parts {
		l, err := ParseLoc(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}
