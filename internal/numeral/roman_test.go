package numeral

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoman(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{1, "I"},
		{2, "II"},
		{3, "III"},
		{4, "IV"},
		{5, "V"},
		{6, "VI"},
		{9, "IX"},
		{10, "X"},
		{20, "XX"},
		{40, "XL"},
		{49, "XLIX"},
		{90, "XC"},
		{400, "CD"},
		{1987, "MCMLXXXVII"},
		{2026, "MMXXVI"},
		{3999, "MMMCMXCIX"},
	}

	for _, tc := range tests {
		got, err := Roman(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, "conversion for %d is incorrect", tc.in)
	}
}

func TestRomanOutOfRange(t *testing.T) {
	for _, n := range []int{0, -1, 4000} {
		_, err := Roman(n)
		assert.ErrorIs(t, err, ErrOutOfRange, n)
	}
}

func TestCounter(t *testing.T) {
	assert.Equal(t, "XII", Counter(12))
	assert.Equal(t, "0", Counter(0))
	assert.Equal(t, "5000", Counter(5000))
}
