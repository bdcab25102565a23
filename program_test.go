package phie

import (
	"fmt"
	"testing"
)

func TestProgramRoundTrip(t *testing.T) {
	src := "ν0(𝜋) ↦ ⟦ Δ ↦ 0x0054 ⟧"
	prog, err := ParseProgram(src)
	if err != nil {
		t.Fatal(err)
	}
	obj, ok := prog[0]
	if !ok {
		t.Fatal("expected object 0")
	}
	if !obj.HasDelta || obj.Delta != 84 {
		t.Errorf("got %+v, want Δ=84", obj)
	}
	again, err := ParseProgram(prog.String())
	if err != nil {
		t.Fatalf("ParseProgram(%q): %v", prog.String(), err)
	}
	if obj, ok := again[0]; !ok || !obj.HasDelta || obj.Delta != 84 {
		t.Errorf("round trip of %q: got %+v, want Δ=84", prog.String(), obj)
	}
}

func TestProgramParsesFibonacciTemplate(t *testing.T) {
	src := fmt.Sprintf(fibonacciTemplate, Data(7).String())
	prog, err := ParseProgram(src)
	if err != nil {
		t.Fatal(err)
	}
	if len(prog) != 13 {
		t.Errorf("got %d objects, want 13", len(prog))
	}
}
