package phie

import "testing"

func TestLocRoundTrip(t *testing.T) {
	cases := []string{"Q", "&", "^", "@", "D", "Δ", "ν78", "𝜑", "𝜋", "𝛼0", "σ", "ρ"}
	for _, in := range cases {
		l, err := ParseLoc(in)
		if err != nil {
			t.Errorf("ParseLoc(%q) error: %v", in, err)
			continue
		}
		// The printed form uses canonical glyphs, not necessarily the
		// ASCII alias, so re-parsing it must yield the same Loc rather
		// than the same string.
		l2, err := ParseLoc(l.String())
		if err != nil {
			t.Errorf("ParseLoc(%q) (round trip of %q) error: %v", l.String(), in, err)
			continue
		}
		if l != l2 {
			t.Errorf("round trip mismatch for %q: %v != %v", in, l, l2)
		}
	}
}

func TestLocUnknown(t *testing.T) {
	if _, err := ParseLoc("xyz"); err == nil {
		t.Error("expected error for unknown loc")
	}
}

func TestLocAttrObj(t *testing.T) {
	l, err := ParseLoc("𝛼12")
	if err != nil {
		t.Fatal(err)
	}
	if l != Attr(12) {
		t.Errorf("ParseLoc(𝛼12) = %v, want Attr(12)", l)
	}
	l, err = ParseLoc("ν4")
	if err != nil {
		t.Fatal(err)
	}
	if l != ObjLoc(4) {
		t.Errorf("ParseLoc(ν4) = %v, want ObjLoc(4)", l)
	}
}
