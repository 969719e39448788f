package dataset

import (
	"encoding/json"
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode"
)

// Value is a numeric cell that may be missing. The zero Value is missing.
type Value struct {
	Float float64
	Valid bool
}

// Missing returns the missing marker.
func Missing() Value { return Value{} }

// Of wraps f, downgrading non-finite numbers to missing.
func Of(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}
	}
	return Value{Float: f, Valid: true}
}

// ParseNumber converts a raw cell to a finite float using the grammar of
// an ECMAScript string-to-number conversion. An empty cell is missing; a
// cell holding only whitespace is 0. Decimal literals take an optional sign,
// digits with at most one point and an optional exponent. Unsigned 0x, 0o
// and 0b prefixes select hex, octal and binary integers. Anything else,
// and any non-finite result (Infinity, overflow), reports ok == false.
func ParseNumber(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	raw := strings.TrimFunc(s, isNumberSpace)
	if raw == "" {
		return 0, true
	}
	if len(raw) > 2 && raw[0] == '0' {
		if base := radix(raw[1]); base != 0 {
			f, ok := parseRadix(raw[2:], base)
			if !ok || math.IsInf(f, 0) {
				return 0, false
			}
			return f, true
		}
	}
	if !isDecimalLiteral(raw) {
		return 0, false
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// isNumberSpace matches ECMAScript white space and line terminators.
func isNumberSpace(r rune) bool {
	if r == '\ufeff' {
		return true
	}
	return r != '\u0085' && unicode.IsSpace(r)
}

func radix(c byte) int {
	switch c {
	case 'x', 'X':
		return 16
	case 'o', 'O':
		return 8
	case 'b', 'B':
		return 2
	}
	return 0
}

// parseRadix reads an unsigned integer of any length, rounding to the
// nearest float64.
func parseRadix(digits string, base int) (float64, bool) {
	for i := 0; i < len(digits); i++ {
		d := digitValue(digits[i])
		if d < 0 || d >= base {
			return 0, false
		}
	}
	n, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return 0, false
	}
	f, _ := new(big.Float).SetInt(n).Float64()
	return f, true
}

func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}

// isDecimalLiteral reports whether s is [+-](digits[.digits]|.digits)[e[+-]digits].
// Underscores, hex floats and spelled-out NaN/Inf forms are rejected.
func isDecimalLiteral(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		exp := 0
		for i < len(s) && isDigit(s[i]) {
			i++
			exp++
		}
		if exp == 0 {
			return false
		}
	}
	return i == len(s)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// Parse is ParseNumber returning a Value.
func Parse(s string) Value {
	f, ok := ParseNumber(s)
	if !ok {
		return Value{}
	}
	return Value{Float: f, Valid: true}
}

// Ptr returns nil for a missing value.
func (v Value) Ptr() *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float
	return &f
}

// MarshalJSON encodes missing values as null.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(v.Float)
}

// UnmarshalJSON accepts a number or null.
func (v *Value) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*v = Value{}
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*v = Of(f)
	return nil
}
