package phie

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// fixtureBasket is the literal from original_source/src/basket.rs's
// round-trip test. Its attribute order reflects that crate's HashMap
// iteration, not a specified sort, so this repo's own canonical print
// order (see Basket.String, sorted by Loc) is not expected to reproduce
// it byte-for-byte — only parsing it correctly is. The round trip itself
// is checked structurally: parse, print, re-parse, compare values.
const fixtureBasket = "[ν5, ξ:β18, Δ⇶0x1F21, ρ⇉β4.𝜑, 𝛼12→?, 𝛼1→?, 𝛼3→(ν5;β5), 𝜑→∅]"

func TestBasketParsesFixture(t *testing.T) {
	b, err := ParseBasket(fixtureBasket)
	if err != nil {
		t.Fatalf("ParseBasket(%q): %v", fixtureBasket, err)
	}
	if b.Ob != 5 || b.Psi != 18 {
		t.Errorf("got ob=%d psi=%d, want ob=5 psi=18", b.Ob, b.Psi)
	}
	want := map[Loc]Kid{
		Delta:    {Kind: Dtzd, Data: 0x1F21},
		Rho:      {Kind: Wait, Bk: 4, Loc: Phi},
		Attr(12): {Kind: Rqtd},
		Attr(1):  {Kind: Rqtd},
		Attr(3):  {Kind: Need, Ob: 5, Bk: 5},
		Phi:      {Kind: Empt},
	}
	if diff := cmp.Diff(want, b.Kids); diff != "" {
		t.Errorf("kids mismatch (-want +got):\n%s", diff)
	}
}

func TestBasketRoundTrip(t *testing.T) {
	b, err := ParseBasket(fixtureBasket)
	if err != nil {
		t.Fatalf("ParseBasket(%q): %v", fixtureBasket, err)
	}
	b2, err := ParseBasket(b.String())
	if err != nil {
		t.Fatalf("ParseBasket(printed form) failed: %v", err)
	}
	if diff := cmp.Diff(b.Kids, b2.Kids); diff != "" {
		t.Errorf("round trip mismatch (-orig +reparsed):\n%s", diff)
	}
	if b.Ob != b2.Ob || b.Psi != b2.Psi {
		t.Errorf("round trip mismatch: %v vs %v", b, b2)
	}
}

func TestBasketFailsOnInvalidFormat(t *testing.T) {
	if _, err := ParseBasket("not a basket"); err == nil {
		t.Error("expected error for invalid basket format")
	}
}

func TestBasketFailsOnMissingPsi(t *testing.T) {
	if _, err := ParseBasket("[ν5]"); err == nil {
		t.Error("expected error for missing psi part")
	}
}

func TestBasketFailsOnInvalidDataHex(t *testing.T) {
	if _, err := ParseBasket("[ν5, ξ:β18, Δ⇶0xZZZZ]"); err == nil {
		t.Error("expected error for invalid data hex")
	}
}

func TestBasketFailsOnUnknownKidType(t *testing.T) {
	if _, err := ParseBasket("[ν5, ξ:β18, 𝛼0⊙nonsense]"); err == nil {
		t.Error("expected error for unknown kid type")
	}
}

func TestBasketFailsOnInvalidNeedFormat(t *testing.T) {
	if _, err := ParseBasket("[ν5, ξ:β18, 𝛼0→(νX;β5)]"); err == nil {
		t.Error("expected error for invalid need obj number")
	}
}
