package phie

import (
	"fmt"
	"strconv"
	"strings"
)

// Data is the engine's only scalar value: a 16-bit signed integer.
// Arithmetic wraps on overflow, per SPEC_FULL.md's resolution of the
// 16-bit-overflow open question; Go's int16 gives that for free.
type Data int16

// String renders Data the way the surface syntax expects it: Δ↦0x%04X,
// the hex digits taken from the value's two's-complement bit pattern.
func (d Data) String() string {
	return fmt.Sprintf("0x%04X", uint16(d))
}

// ParseData parses the hex payload of a Δ attribute, e.g. "0x0054".
// It does not accept the leading "Δ↦"; callers strip that first.
func ParseData(s string) (Data, error) {
	s = strings.TrimSpace(s)
	if len(s) < 3 || !strings.HasPrefix(strings.ToLower(s), "0x") {
		return 0, errf(ParseInt, nil, "can't parse hex %q", s)
	}
	n, err := strconv.ParseUint(s[2:], 16, 16)
	if err != nil {
		return 0, errf(ParseInt, err, "can't parse hex %q", s)
	}
	return Data(int16(uint16(n))), nil
}

func (d Data) add(o Data) Data  { return d + o }
func (d Data) sub(o Data) Data  { return d - o }
func (d Data) mul(o Data) Data  { return d * o }
func (d Data) neg() Data        { return -d }
func (d Data) less(o Data) bool { return d < o }

func (d Data) div(o Data) (Data, error) {
	if o == 0 {
		return 0, errf(EmuFailure, nil, "division by zero")
	}
	return d / o, nil
}

// trueData and falseData are the canonical boolean encodings used by the
// bool-if atom: any nonzero Data other than these two is still treated as
// truthy if nonzero, matching the int-less result feeding directly into
// bool-if without an intermediate bool type.
const (
	falseData Data = 0x0000
	trueData  Data = 0x0001
)

func boolData(b bool) Data {
	if b {
		return trueData
	}
	return falseData
}
