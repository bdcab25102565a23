package phie

import (
	"sort"
	"strconv"
	"strings"
)

// Program is a whole φ-program: every object definition keyed by its id,
// the text form used by the emulator's file and CLI surfaces (one
// "νN(𝜋) ↦ ⟦...⟧" declaration per line, as in every original_source
// bin/*.rs fixture program).
type Program map[Ob]*Object

// String renders the program in object-id order.
func (p Program) String() string {
	ids := make([]Ob, 0, len(p))
	for ob := range p {
		ids = append(ids, ob)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	lines := make([]string, 0, len(ids))
	for _, ob := range ids {
		lines = append(lines, "ν"+strconv.Itoa(int(ob))+"(𝜋) ↦ "+p[ob].String())
	}
	return strings.Join(lines, "\n")
}

// ParseProgram parses a whole program's text, one declaration per
// non-blank line.
func ParseProgram(s string) (Program, error) {
	prog := make(Program)
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		head, body, ok := strings.Cut(line, "↦")
		if !ok {
			return nil, errf(BadObject, nil, "can't split program line %q", line)
		}
		head = strings.TrimSpace(head)
		head = strings.TrimSuffix(head, "(𝜋)")
		head = strings.TrimPrefix(head, "ν")
		obN, err := strconv.Atoi(strings.TrimSpace(head))
		if err != nil {
			return nil, errf(BadObject, err, "can't parse object id %q", head)
		}
		obj, err := ParseObject(strings.TrimSpace(body))
		if err != nil {
			return nil, err
		}
		if _, exists := prog[Ob(obN)]; exists {
			return nil, errf(BadObject, nil, "duplicate object index %d", obN)
		}
		prog[Ob(obN)] = obj
	}
	return prog, nil
}
