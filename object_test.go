package phie

import "testing"

func TestObjectRoundTrip(t *testing.T) {
	want := "⟦! ρ↦𝜋.𝛼0.𝜑, 𝛼1↦ν4(𝜋)⟧"
	obj, err := ParseObject(want)
	if err != nil {
		t.Fatalf("ParseObject(%q): %v", want, err)
	}
	if got := obj.String(); got != want {
		t.Errorf("round trip: got %q, want %q", got, want)
	}
}

func TestObjectParsesXi(t *testing.T) {
	obj, err := ParseObject("⟦𝜑↦ν3(ξ)⟧")
	if err != nil {
		t.Fatal(err)
	}
	attr, ok := obj.Attrs[Phi]
	if !ok || !attr.Xi {
		t.Errorf("expected ξ-anchored 𝜑 attribute, got %+v", attr)
	}
}

func TestObjectParsesWithoutXi(t *testing.T) {
	obj, err := ParseObject("⟦𝛼0↦ν1(𝜋)⟧")
	if err != nil {
		t.Fatal(err)
	}
	attr, ok := obj.Attrs[Attr(0)]
	if !ok || attr.Xi {
		t.Errorf("expected 𝜋-anchored attribute, got %+v", attr)
	}
}

func TestObjectFailsOnUnknownLambda(t *testing.T) {
	if _, err := ParseObject("⟦λ↦bogus-atom⟧"); err == nil {
		t.Error("expected error for unknown lambda")
	}
}

func TestObjectFailsOnInvalidFormat(t *testing.T) {
	if _, err := ParseObject("not an object"); err == nil {
		t.Error("expected error for invalid format")
	}
}

func TestObjectFailsOnInvalidHex(t *testing.T) {
	if _, err := ParseObject("⟦Δ↦0xZZZZ⟧"); err == nil {
		t.Error("expected error for invalid hex")
	}
}

func TestObjectFailsOnMalformedAttribute(t *testing.T) {
	if _, err := ParseObject("⟦ρ no arrow here⟧"); err == nil {
		t.Error("expected error for malformed attribute")
	}
}

func TestObjectFailsOnEmptyAttributeName(t *testing.T) {
	if _, err := ParseObject("⟦↦ν1(𝜋)⟧"); err == nil {
		t.Error("expected error for empty attribute name")
	}
}

func TestObjectFailsOnInvalidLoc(t *testing.T) {
	if _, err := ParseObject("⟦zz↦ν1(𝜋)⟧"); err == nil {
		t.Error("expected error for invalid loc in attribute")
	}
}

func TestObjectConstantPrefix(t *testing.T) {
	obj := NewObject()
	obj.Constant = true
	obj.HasDelta = true
	obj.Delta = 84
	if got, want := obj.String(), "⟦! Δ↦0x0054⟧"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
