package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScramble(t *testing.T) {
	tests := []struct {
		digit, seed, expected int
	}{
		{0, 0, 0},
		{57, 0, 57},
		{100, 27, 127},
		{100, 28, 0},
		{127, 127, 126},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, Scramble(tc.digit, tc.seed))
	}
}

func TestUnscrambleInverse(t *testing.T) {
	for seed := 0; seed < Base; seed++ {
		for digit := 0; digit < Base; digit++ {
			s := Scramble(digit, seed)
			assert.GreaterOrEqual(t, s, 0)
			assert.Less(t, s, Base)
			if got := Unscramble(s, seed); got != digit {
				t.Fatalf("Unscramble(Scramble(%d, %d)) = %d", digit, seed, got)
			}
		}
	}
}

func TestValidSeed(t *testing.T) {
	assert.True(t, ValidSeed(0))
	assert.True(t, ValidSeed(127))
	assert.False(t, ValidSeed(-1))
	assert.False(t, ValidSeed(128))
}
