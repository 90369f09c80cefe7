package encoding

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultAlphabet_Size(t *testing.T) {
	a := DefaultAlphabet()
	assert.Equal(t, Base, a.Size())
	assert.Len(t, a.Symbols(), Base)
}

func TestDefaultAlphabet_BuiltOnce(t *testing.T) {
	assert.Same(t, DefaultAlphabet(), DefaultAlphabet())
}

func TestDefaultAlphabet_KnownSymbols(t *testing.T) {
	tests := []struct {
		index  int
		symbol string
	}{
		{0, "가"},
		{57, "새"},
		{96, "크"},
		{119, "하"},
		{127, "히"},
	}

	a := DefaultAlphabet()
	for _, tc := range tests {
		t.Run(tc.symbol, func(t *testing.T) {
			assert.Equal(t, tc.symbol, a.SymbolAt(tc.index))

			idx, err := a.IndexOf(tc.symbol)
			require.NoError(t, err)
			assert.Equal(t, tc.index, idx)
		})
	}
}

func TestAlphabet_Bijection(t *testing.T) {
	a := DefaultAlphabet()
	for i := 0; i < Base; i++ {
		idx, err := a.IndexOf(a.SymbolAt(i))
		require.NoError(t, err)
		assert.Equal(t, i, idx)
	}
}

func TestAlphabet_IndexOfUnknown(t *testing.T) {
	a := DefaultAlphabet()
	for _, s := range []string{"", "A", "분", "가가", "ㄱ"} {
		t.Run(s, func(t *testing.T) {
			_, err := a.IndexOf(s)
			assert.ErrorIs(t, err, ErrInvalidSymbol)
			assert.False(t, a.Contains(s))
		})
	}
}

func TestAlphabet_SymbolsIsCopy(t *testing.T) {
	a := DefaultAlphabet()
	symbols := a.Symbols()
	symbols[0] = "X"
	assert.Equal(t, "가", a.SymbolAt(0))
}

func asciiSymbols() []string {
	out := make([]string, 0, Base)
	for r := rune('!'); r <= '~'; r++ {
		out = append(out, string(r))
	}
	// 94 printable ASCII symbols; fill the rest from Latin-1 Supplement letters
	for r := rune(0xC0); len(out) < Base; r++ {
		out = append(out, string(r))
	}
	return out
}

func TestBuildAlphabet_Custom(t *testing.T) {
	a, err := BuildAlphabet(asciiSymbols())
	require.NoError(t, err)
	assert.Equal(t, "!", a.SymbolAt(0))
}

func TestBuildAlphabet_Rejects(t *testing.T) {
	valid := asciiSymbols()

	withAt := func(pairs ...any) []string {
		out := append([]string(nil), valid...)
		for i := 0; i < len(pairs); i += 2 {
			out[pairs[i].(int)] = pairs[i+1].(string)
		}
		return out
	}

	tests := []struct {
		name    string
		symbols []string
	}{
		{"empty list", nil},
		{"too few", valid[:127]},
		{"too many", append(append([]string(nil), valid...), "Z9")},
		{"duplicate", withAt(5, valid[0])},
		{"empty symbol", withAt(3, "")},
		{"two clusters", withAt(7, "ab")},
		// U+1100 (choseong kiyeok) followed by U+1161 (jungseong a) renders as one syllable
		{"fusing jamo", withAt(0, "\u1100", 1, "\u1161")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, err := BuildAlphabet(tc.symbols)
			assert.Nil(t, a)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrConfiguration), "expected configuration error, got %v", err)
		})
	}
}

func TestBuildAlphabet_SizeMessage(t *testing.T) {
	_, err := BuildAlphabet(HangulSymbols[:100])
	require.Error(t, err)
	assert.Contains(t, err.Error(), fmt.Sprintf("expected %d symbols, got 100", Base))
}

func BenchmarkIndexOf(b *testing.B) {
	a := DefaultAlphabet()
	for i := 0; i < b.N; i++ {
		_, _ = a.IndexOf(a.SymbolAt(i % Base))
	}
}
