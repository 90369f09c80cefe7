package encoding

import (
	"fmt"

	hnerrors "github.com/standardbeagle/hangulnum/internal/errors"
)

// ToDigits returns the base-128 digits of value, most significant first.
// Zero yields the single digit [0]; no other result has a leading zero.
func ToDigits(value uint64) []int {
	if value == 0 {
		return []int{0}
	}

	// Fill from the right, as Base63Encode did with its byte buffer
	var buf [MaxDataDigits]int
	pos := len(buf)

	for value > 0 {
		pos--
		buf[pos] = int(value % Base)
		value /= Base
	}

	out := make([]int, len(buf)-pos)
	copy(out, buf[pos:])
	return out
}

// FromDigits folds digits left to right as value = value*128 + digit.
// It is the exact inverse of ToDigits and also accepts leading zeros.
func FromDigits(digits []int) (uint64, error) {
	var value uint64

	for i, d := range digits {
		if d < 0 || d >= Base {
			return 0, hnerrors.NewCodecError(hnerrors.KindInvalidArgument, "fold",
				fmt.Sprintf("digit %d at position %d outside [0,%d]", d, i, Base-1))
		}

		// Check for overflow before multiplication
		if value > (^uint64(0)-uint64(d))/Base {
			return 0, hnerrors.NewCodecError(hnerrors.KindOverflow, "fold",
				fmt.Sprintf("%d digits exceed uint64", len(digits)))
		}
		value = value*Base + uint64(d)
	}

	return value, nil
}

// DigitCount returns len(ToDigits(value)) without allocating.
func DigitCount(value uint64) int {
	n := 1
	for value >= Base {
		value /= Base
		n++
	}
	return n
}
