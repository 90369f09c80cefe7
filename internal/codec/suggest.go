package codec

import (
	"errors"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/hbollon/go-edlib"

	hnerrors "github.com/standardbeagle/hangulnum/internal/errors"
)

// MaxSuggestDistance is the largest jamo edit distance Suggest reports.
const MaxSuggestDistance = 2

// Hangul syllable block layout (Unicode 3.12)
const (
	syllableBase = 0xAC00
	syllableLast = 0xD7A3
	leadBase     = 0x1100
	vowelBase    = 0x1161
	trailBase    = 0x11A7
	vowelCount   = 21
	trailCount   = 28
	syllablePerL = vowelCount * trailCount
)

// decomposeHangul spells precomposed syllables as their conjoining jamo so
// that "분" and "부" differ by one edit instead of being unrelated runes.
func decomposeHangul(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if r < syllableBase || r > syllableLast {
			sb.WriteRune(r)
			continue
		}
		idx := r - syllableBase
		sb.WriteRune(leadBase + idx/syllablePerL)
		sb.WriteRune(vowelBase + (idx%syllablePerL)/trailCount)
		if t := idx % trailCount; t > 0 {
			sb.WriteRune(trailBase + t)
		}
	}
	return sb.String()
}

// Suggest returns up to limit alphabet symbols closest to symbol, nearest
// first, ties in alphabet order. Symbols further than MaxSuggestDistance
// edits are never suggested, nor are candidates that would rewrite every
// rune of symbol. A symbol already in the alphabet gets none.
func (c *Codec) Suggest(symbol string, limit int) []string {
	if limit <= 0 || symbol == "" || c.alphabet.Contains(symbol) {
		return nil
	}

	type candidate struct {
		symbol   string
		index    int
		distance int
	}

	target := decomposeHangul(symbol)
	maxDistance := min(MaxSuggestDistance, utf8.RuneCountInString(target)-1)
	var candidates []candidate
	for i, s := range c.alphabet.Symbols() {
		d := edlib.LevenshteinDistance(target, decomposeHangul(s))
		if d <= maxDistance {
			candidates = append(candidates, candidate{symbol: s, index: i, distance: d})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].distance != candidates[j].distance {
			return candidates[i].distance < candidates[j].distance
		}
		return candidates[i].index < candidates[j].index
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	out := make([]string, len(candidates))
	for i, cand := range candidates {
		out[i] = cand.symbol
	}
	return out
}

// SuggestFor returns suggestions for the offending symbol of a decode error,
// or nil when err carries no symbol.
func (c *Codec) SuggestFor(err error, limit int) []string {
	sym, ok := offendingSymbol(err)
	if !ok {
		return nil
	}
	return c.Suggest(sym, limit)
}

func offendingSymbol(err error) (string, bool) {
	var ce *hnerrors.CodecError
	if !errors.As(err, &ce) || ce.Input == "" {
		return "", false
	}
	switch ce.Kind {
	case hnerrors.KindInvalidSymbol, hnerrors.KindInvalidSeedSymbol:
		return ce.Input, true
	}
	return "", false
}
