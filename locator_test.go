package phie

import "testing"

func TestLocatorRoundTrip(t *testing.T) {
	want := "𝜋.𝜋.𝛼0"
	lc, err := ParseLocator(want)
	if err != nil {
		t.Fatal(err)
	}
	if got := lc.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestLocatorEmpty(t *testing.T) {
	if _, err := ParseLocator(""); err == nil {
		t.Error("expected error for empty locator")
	}
}
