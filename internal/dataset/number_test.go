package dataset

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
)

func TestParseNumber(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"", 0, false},
		{"   ", 0, true},
		{"\t\n", 0, true},
		{"abc", 0, false},
		{"0x1A", 26, true},
		{"0X1a", 26, true},
		{"0o17", 15, true},
		{"0b101", 5, true},
		{" 0b101 ", 5, true},
		{"-0x1A", 0, false},
		{"0x", 0, false},
		{"0b102", 0, false},
		{"0x1p4", 0, false},
		{"1_0", 0, false},
		{"0x1_0", 0, false},
		{"inf", 0, false},
		{"nan", 0, false},
		{".5", 0.5, true},
		{"5.", 5, true},
		{"+7", 7, true},
		{".", 0, false},
		{"1e", 0, false},
		{"1e-400", 0, true},
		{"1.2.3", 0, false},
		{"NaN", 0, false},
		{"Infinity", 0, false},
		{"-Inf", 0, false},
		{"1e400", 0, false},
		{"0", 0, true},
		{"-0.5", -0.5, true},
		{" 12.25 ", 12.25, true},
		{"1e3", 1000, true},
		{"3.14159", 3.14159, true},
	}
	for _, tc := range cases {
		got, ok := ParseNumber(tc.in)
		if ok != tc.ok {
			t.Fatalf("ParseNumber(%q) ok=%v, want %v", tc.in, ok, tc.ok)
		}
		if ok && got != tc.want {
			t.Fatalf("ParseNumber(%q)=%v, want %v", tc.in, got, tc.want)
		}
	}
	if _, ok := ParseNumber("0x" + strings.Repeat("f", 300)); ok {
		t.Fatalf("hex literal beyond float64 range must be missing")
	}
	if got, ok := ParseNumber("0x" + strings.Repeat("f", 20)); !ok || got != 0x1p80 {
		t.Fatalf("wide hex literal = %v, %v", got, ok)
	}
}

func TestOfDowngradesNonFinite(t *testing.T) {
	if Of(math.NaN()).Valid || Of(math.Inf(1)).Valid || Of(math.Inf(-1)).Valid {
		t.Fatalf("non-finite values must be missing")
	}
	if v := Of(2.5); !v.Valid || v.Float != 2.5 {
		t.Fatalf("Of(2.5) = %+v", v)
	}
}

func TestValueJSON(t *testing.T) {
	b, err := json.Marshal([]Value{Parse("1.5"), Parse("")})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != "[1.5,null]" {
		t.Fatalf("unexpected json: %s", b)
	}
	var back []Value
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back[0].Valid || back[0].Float != 1.5 || back[1].Valid {
		t.Fatalf("round trip mismatch: %+v", back)
	}
	if Parse("").Ptr() != nil {
		t.Fatalf("missing value must have nil Ptr")
	}
}
