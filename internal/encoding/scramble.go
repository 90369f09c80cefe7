package encoding

// Scramble offsets digit by seed modulo 128.
func Scramble(digit, seed int) int {
	return (digit + seed) % Base
}

// Unscramble reverses Scramble for the same seed.
func Unscramble(scrambled, seed int) int {
	return (scrambled - seed + Base) % Base
}

// ValidSeed reports whether seed can be used for scrambling.
func ValidSeed(seed int) bool {
	return seed >= 0 && seed < Base
}
