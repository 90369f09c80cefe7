package codec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	hnerrors "github.com/standardbeagle/hangulnum/internal/errors"
)

// DefaultSeparators are the thousands separators stripped by ParseNumber.
const DefaultSeparators = ","

// ParseNumber parses a non-negative decimal integer, ignoring any rune in
// separators (DefaultSeparators when empty) and surrounding whitespace.
// Negative, fractional, empty, non-numeric, and out-of-range input is an
// invalid argument.
func ParseNumber(input, separators string) (uint64, error) {
	if separators == "" {
		separators = DefaultSeparators
	}

	cleaned := strings.Map(func(r rune) rune {
		if strings.ContainsRune(separators, r) {
			return -1
		}
		return r
	}, strings.TrimSpace(input))

	invalid := func(detail string) error {
		return hnerrors.NewCodecError(hnerrors.KindInvalidArgument, "parse", detail).WithInput(input)
	}

	switch {
	case cleaned == "":
		return 0, invalid("empty")
	case strings.HasPrefix(cleaned, "-"):
		return 0, invalid("negative values are not supported")
	case strings.ContainsRune(cleaned, '.'):
		return 0, invalid("fractional values are not supported")
	}

	value, err := strconv.ParseUint(cleaned, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, invalid("exceeds uint64")
		}
		return 0, invalid("not a whole number")
	}
	return value, nil
}

// FromInt64 converts a signed value, rejecting negatives.
func FromInt64(n int64) (uint64, error) {
	if n < 0 {
		return 0, hnerrors.NewCodecError(hnerrors.KindInvalidArgument, "encode",
			fmt.Sprintf("negative value %d", n))
	}
	return uint64(n), nil
}

// EncodeInt64 is EncodeWithSeed for signed callers.
func (c *Codec) EncodeInt64(n int64, seed int) (string, error) {
	value, err := FromInt64(n)
	if err != nil {
		return "", err
	}
	return c.EncodeWithSeed(value, seed)
}
