package phie

import "testing"

func TestDataString(t *testing.T) {
	cases := []struct {
		d    Data
		want string
	}{
		{0, "0x0000"},
		{84, "0x0054"},
		{-1, "0xFFFF"},
	}
	for _, c := range cases {
		if got := c.d.String(); got != c.want {
			t.Errorf("Data(%d).String() = %q, want %q", c.d, got, c.want)
		}
	}
}

func TestParseData(t *testing.T) {
	d, err := ParseData("0x0054")
	if err != nil {
		t.Fatal(err)
	}
	if d != 84 {
		t.Errorf("ParseData(0x0054) = %d, want 84", d)
	}
	if _, err := ParseData("nope"); err == nil {
		t.Error("expected error parsing invalid hex")
	}
}

func TestDataWraps(t *testing.T) {
	max := Data(0x7FFF)
	if got := max.add(1); got != Data(-0x8000) {
		t.Errorf("overflow add = %d, want wraparound to %d", got, Data(-0x8000))
	}
}
