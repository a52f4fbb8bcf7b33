package engine

import (
	"strconv"
	"strings"

	"github.com/tartampluch/go-yourage/internal/config"
)

// InsertSeparators groups a decimal digit string by thousands, counting from
// the least significant digit: "16174080" becomes "16,174,080".
// Strings of three digits or fewer are returned unchanged.
func InsertSeparators(digits string) string {
	if len(digits) <= config.GroupSize {
		return digits
	}

	// Reverse, chunk from the start, join, reverse back.
	reversed := reverse(digits)

	var b strings.Builder
	b.Grow(len(digits) + (len(digits)-1)/config.GroupSize)
	for i := 0; i < len(reversed); i++ {
		if i > 0 && i%config.GroupSize == 0 {
			b.WriteByte(config.GroupSeparator)
		}
		b.WriteByte(reversed[i])
	}

	return reverse(b.String())
}

// FormatNumber renders n with grouping separators.
// Negative values keep their sign in front of the grouped magnitude
// ("-1,234"), which is how a birthday in the future is displayed.
func FormatNumber(n int64) string {
	s := strconv.FormatInt(n, 10)
	if strings.HasPrefix(s, config.NegativeSign) {
		return config.NegativeSign + InsertSeparators(s[len(config.NegativeSign):])
	}
	return InsertSeparators(s)
}

// reverse works on bytes: its input is always ASCII digits or separators.
func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}
