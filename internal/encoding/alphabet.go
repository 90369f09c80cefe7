// Package encoding provides the low-level pieces of the hangul number codec:
// the 128-symbol alphabet, base-128 positional conversion, and seed scrambling.
//
// Every symbol is a single grapheme cluster, so an encoded string can be split
// back into symbols without separators. Values are uint64; a full-width value
// needs 10 data symbols (128^9 < 2^64 <= 128^10).
package encoding

import (
	"fmt"
	"sync"

	"github.com/rivo/uniseg"

	hnerrors "github.com/standardbeagle/hangulnum/internal/errors"
)

// Base-128 encoding constants
const (
	Base = 128

	// MaxDataDigits is the number of base-128 digits in the largest uint64.
	MaxDataDigits = 10
)

// Common errors for encoding operations, for use with errors.Is
var (
	ErrConfiguration = &hnerrors.CodecError{Kind: hnerrors.KindConfiguration}
	ErrInvalidSymbol = &hnerrors.CodecError{Kind: hnerrors.KindInvalidSymbol}
	ErrOverflow      = &hnerrors.CodecError{Kind: hnerrors.KindOverflow}
	ErrDigitRange    = &hnerrors.CodecError{Kind: hnerrors.KindInvalidArgument}
)

// Alphabet is an immutable ordered set of exactly 128 symbols with O(1)
// lookups in both directions. Safe for concurrent use.
type Alphabet struct {
	symbols [Base]string
	index   map[string]int
}

// BuildAlphabet validates symbols and builds the forward and reverse lookups.
//
// The list must hold exactly 128 distinct, non-empty symbols, each a single
// grapheme cluster, and no two symbols may fuse into one cluster when written
// next to each other. Any violation is a configuration error.
func BuildAlphabet(symbols []string) (*Alphabet, error) {
	if len(symbols) != Base {
		return nil, configError(fmt.Sprintf("expected %d symbols, got %d", Base, len(symbols)))
	}

	a := &Alphabet{index: make(map[string]int, Base)}
	for i, s := range symbols {
		if s == "" {
			return nil, configError(fmt.Sprintf("symbol %d is empty", i))
		}
		if n := uniseg.GraphemeClusterCount(s); n != 1 {
			return nil, configError(fmt.Sprintf("symbol %d %q spans %d grapheme clusters", i, s, n))
		}
		if prev, dup := a.index[s]; dup {
			return nil, configError(fmt.Sprintf("symbol %q appears at %d and %d", s, prev, i))
		}
		a.symbols[i] = s
		a.index[s] = i
	}

	if err := a.checkBoundaries(); err != nil {
		return nil, err
	}
	return a, nil
}

// checkBoundaries rejects alphabets where some adjacent pair, e.g. a conjoining
// jamo followed by a vowel jamo, would render as a single grapheme cluster.
func (a *Alphabet) checkBoundaries() error {
	for _, left := range a.symbols {
		for _, right := range a.symbols {
			if uniseg.GraphemeClusterCount(left+right) != 2 {
				return configError(fmt.Sprintf("symbols %q and %q merge into one grapheme cluster", left, right))
			}
		}
	}
	return nil
}

func configError(detail string) error {
	return hnerrors.NewCodecError(hnerrors.KindConfiguration, "build", detail)
}

// SymbolAt returns the symbol for index. Indexes outside 0..127 are reduced
// modulo 128, which keeps the function total; callers always pass valid digits.
func (a *Alphabet) SymbolAt(index int) string {
	return a.symbols[((index%Base)+Base)%Base]
}

// IndexOf returns the index of symbol.
func (a *Alphabet) IndexOf(symbol string) (int, error) {
	i, ok := a.index[symbol]
	if !ok {
		return 0, hnerrors.NewCodecError(hnerrors.KindInvalidSymbol, "lookup", "not in alphabet").WithInput(symbol)
	}
	return i, nil
}

// Contains reports whether symbol is part of the alphabet.
func (a *Alphabet) Contains(symbol string) bool {
	_, ok := a.index[symbol]
	return ok
}

// Symbols returns a copy of the symbols in index order.
func (a *Alphabet) Symbols() []string {
	out := make([]string, Base)
	copy(out, a.symbols[:])
	return out
}

// Size is always 128 for a built alphabet.
func (a *Alphabet) Size() int {
	return len(a.symbols)
}

var (
	defaultAlphabet     *Alphabet
	defaultAlphabetOnce sync.Once
)

// DefaultAlphabet returns the built-in Hangul alphabet, built on first use.
// It panics if the built-in list is invalid, which only a broken build can cause.
func DefaultAlphabet() *Alphabet {
	defaultAlphabetOnce.Do(func() {
		a, err := BuildAlphabet(HangulSymbols[:])
		if err != nil {
			panic(fmt.Sprintf("encoding: built-in alphabet: %v", err))
		}
		defaultAlphabet = a
	})
	return defaultAlphabet
}
