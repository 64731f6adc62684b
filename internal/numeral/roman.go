// Package numeral converts integers to Roman numerals.
package numeral

import (
	"errors"
	"fmt"
	"strings"
)

// ErrOutOfRange is returned for values Roman numerals cannot express.
var ErrOutOfRange = errors.New("value out of range")

const (
	MinValue = 1
	MaxValue = 3999
)

// symbols is ordered from largest to smallest, subtractive pairs included.
var symbols = []struct {
	value  int
	symbol string
}{
	{1000, "M"},
	{900, "CM"},
	{500, "D"},
	{400, "CD"},
	{100, "C"},
	{90, "XC"},
	{50, "L"},
	{40, "XL"},
	{10, "X"},
	{9, "IX"},
	{5, "V"},
	{4, "IV"},
	{1, "I"},
}

// Roman converts n to a Roman numeral.
func Roman(n int) (string, error) {
	if n < MinValue || n > MaxValue {
		return "", fmt.Errorf("%d: %w (must be %d-%d)", n, ErrOutOfRange, MinValue, MaxValue)
	}

	var b strings.Builder
	for _, s := range symbols {
		for n >= s.value {
			b.WriteString(s.symbol)
			n -= s.value
		}
	}
	return b.String(), nil
}

// Counter formats a count for display; values Roman numerals cannot express
// fall back to decimal.
func Counter(n int) string {
	r, err := Roman(n)
	if err != nil {
		return fmt.Sprintf("%d", n)
	}
	return r
}
