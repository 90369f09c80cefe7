// Package codec turns non-negative integers into short Hangul strings and back.
//
// An encoded string is a seed symbol followed by the base-128 digits of the
// value, most significant first, each shifted by the seed modulo 128. Every
// value has 128 spellings, one per seed, and all of them decode to the value.
//
// The seed only obfuscates. Encode draws it from a non-cryptographic source,
// so encoded strings must not be treated as secrets or unguessable tokens.
package codec

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/standardbeagle/hangulnum/internal/encoding"
	hnerrors "github.com/standardbeagle/hangulnum/internal/errors"
)

// Re-export constants from encoding package for convenience
const (
	Base     = encoding.Base
	NumSeeds = encoding.Base
)

// Sentinel errors for use with errors.Is
var (
	ErrConfiguration     = encoding.ErrConfiguration
	ErrInvalidArgument   = &hnerrors.CodecError{Kind: hnerrors.KindInvalidArgument}
	ErrInvalidSymbol     = encoding.ErrInvalidSymbol
	ErrInvalidSeedSymbol = &hnerrors.CodecError{Kind: hnerrors.KindInvalidSeedSymbol}
	ErrInvalidLength     = &hnerrors.CodecError{Kind: hnerrors.KindInvalidLength}
	ErrOverflow          = encoding.ErrOverflow
)

// SeedSource yields seeds for Encode. IntN must return a value in [0,n).
type SeedSource interface {
	IntN(n int) int
}

// globalSource uses the math/rand/v2 top-level generator, which is safe for concurrent use.
type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Option configures a Codec.
type Option func(*Codec)

// WithSeedSource replaces the default seed source. Sources that are not safe
// for concurrent use must not be shared by concurrent Encode callers.
func WithSeedSource(src SeedSource) Option {
	return func(c *Codec) {
		if src != nil {
			c.seeds = src
		}
	}
}

// Codec encodes and decodes values over one alphabet. It holds no mutable
// state of its own and is safe for concurrent use when its SeedSource is.
type Codec struct {
	alphabet *encoding.Alphabet
	seeds    SeedSource
}

// New creates a Codec over alphabet.
func New(alphabet *encoding.Alphabet, opts ...Option) (*Codec, error) {
	if alphabet == nil {
		return nil, hnerrors.NewCodecError(hnerrors.KindConfiguration, "build", "alphabet is nil")
	}
	c := &Codec{alphabet: alphabet, seeds: globalSource{}}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Default returns a Codec over the built-in Hangul alphabet.
func Default() *Codec {
	c, _ := New(encoding.DefaultAlphabet())
	return c
}

// Alphabet returns the alphabet the codec was built with.
func (c *Codec) Alphabet() *encoding.Alphabet {
	return c.alphabet
}

// EncodeWithSeed encodes value using seed, which must be in [0,127].
// The result is deterministic: the seed symbol followed by the scrambled digits.
func (c *Codec) EncodeWithSeed(value uint64, seed int) (string, error) {
	if !encoding.ValidSeed(seed) {
		return "", hnerrors.NewCodecError(hnerrors.KindInvalidArgument, "encode",
			fmt.Sprintf("seed %d outside [0,%d]", seed, NumSeeds-1))
	}

	digits := encoding.ToDigits(value)

	var sb strings.Builder
	sb.Grow((len(digits) + 1) * 4)
	sb.WriteString(c.alphabet.SymbolAt(seed))
	for _, d := range digits {
		sb.WriteString(c.alphabet.SymbolAt(encoding.Scramble(d, seed)))
	}
	return sb.String(), nil
}

// Encode encodes value with a randomly drawn seed.
// Equal values may produce different strings; all of them decode to value.
func (c *Codec) Encode(value uint64) (string, error) {
	return c.EncodeWithSeed(value, c.seeds.IntN(NumSeeds))
}

// EncodeAll returns the encodings of value for seeds 0 through 127, in seed order.
func (c *Codec) EncodeAll(value uint64) ([]string, error) {
	results := make([]string, 0, NumSeeds)
	for seed := 0; seed < NumSeeds; seed++ {
		s, err := c.EncodeWithSeed(value, seed)
		if err != nil {
			return nil, err
		}
		results = append(results, s)
	}
	return results, nil
}

// Decode returns the value encoded in s.
//
// s is split on grapheme cluster boundaries, never on bytes or runes, so
// symbols that occupy several code points still decode as one unit.
func (c *Codec) Decode(s string) (uint64, error) {
	symbols := Split(s)
	if len(symbols) < 2 {
		return 0, hnerrors.NewCodecError(hnerrors.KindInvalidLength, "decode",
			fmt.Sprintf("need at least 2 symbols, got %d", len(symbols))).WithInput(s)
	}

	seed, err := c.alphabet.IndexOf(symbols[0])
	if err != nil {
		return 0, hnerrors.NewCodecError(hnerrors.KindInvalidSeedSymbol, "decode", "position 0").WithInput(symbols[0])
	}

	digits := make([]int, len(symbols)-1)
	for i, sym := range symbols[1:] {
		scrambled, err := c.alphabet.IndexOf(sym)
		if err != nil {
			return 0, hnerrors.NewCodecError(hnerrors.KindInvalidSymbol, "decode",
				fmt.Sprintf("position %d", i+1)).WithInput(sym)
		}
		digits[i] = encoding.Unscramble(scrambled, seed)
	}

	value, err := encoding.FromDigits(digits)
	if err != nil {
		return 0, hnerrors.NewCodecError(hnerrors.KindOverflow, "decode",
			fmt.Sprintf("%d data symbols exceed uint64", len(digits))).WithInput(s).Wrap(err)
	}
	return value, nil
}

// SeedOf returns the seed carried by the first symbol of s.
func (c *Codec) SeedOf(s string) (int, error) {
	first := uniseg.NewGraphemes(s)
	if !first.Next() {
		return 0, hnerrors.NewCodecError(hnerrors.KindInvalidLength, "decode", "empty input")
	}
	seed, err := c.alphabet.IndexOf(first.Str())
	if err != nil {
		return 0, hnerrors.NewCodecError(hnerrors.KindInvalidSeedSymbol, "decode", "position 0").WithInput(first.Str())
	}
	return seed, nil
}

// IsValid reports whether s decodes without error.
func (c *Codec) IsValid(s string) bool {
	_, err := c.Decode(s)
	return err == nil
}

// Split breaks s into grapheme clusters.
func Split(s string) []string {
	if s == "" {
		return nil
	}
	out := make([]string, 0, len(s)/3+1)
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}
