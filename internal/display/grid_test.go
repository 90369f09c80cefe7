package display

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/hangulnum/internal/codec"
)

func TestNewGridFormatter(t *testing.T) {
	// Test with default options
	formatter := NewGridFormatter(FormatterOptions{})
	assert.Equal(t, 8, formatter.options.Columns)
	assert.Equal(t, "✓", formatter.options.CheckMark)
	assert.Equal(t, "✗", formatter.options.CrossMark)
	assert.Equal(t, "  ", formatter.options.Gap)

	// Test with custom options
	options := FormatterOptions{
		Columns:   4,
		Color:     true,
		CheckMark: "ok",
		CrossMark: "no",
		Gap:       " | ",
	}
	formatter = NewGridFormatter(options)
	assert.Equal(t, options, formatter.options)
}

func TestGridFormatter_Format_Empty(t *testing.T) {
	assert.Equal(t, "", NewGridFormatter(FormatterOptions{}).Format(nil))
}

func TestGridFormatter_Format_AllSeeds(t *testing.T) {
	variants, err := codec.Default().Verify(119)
	require.NoError(t, err)

	output := NewGridFormatter(FormatterOptions{}).Format(variants)
	lines := strings.Split(strings.TrimSuffix(output, "\n"), "\n")
	require.Len(t, lines, 16)

	for row, line := range lines {
		cells := strings.Split(line, "  ")
		require.Len(t, cells, 8, "row %d", row)
		for col, cell := range cells {
			v := variants[row*8+col]
			assert.Equal(t, v.Encoded+"✓", cell)
		}
	}
	assert.True(t, strings.HasPrefix(output, "가하✓  간한✓"))
}

func TestGridFormatter_Format_PadsToWidestCell(t *testing.T) {
	variants := []codec.Variant{
		{Encoded: "가가", OK: true},
		{Encoded: "가가가", OK: false},
		{Encoded: "가", OK: true},
	}

	output := NewGridFormatter(FormatterOptions{Columns: 2}).Format(variants)
	assert.Equal(t, "가가✓    가가가✗\n가✓\n", output)
}

func TestGridFormatter_Format_Color(t *testing.T) {
	saved := color.NoColor
	defer func() { color.NoColor = saved }()
	ForceColor()

	variants := []codec.Variant{{Encoded: "가가", OK: true}, {Encoded: "가간", OK: false}}

	plain := NewGridFormatter(FormatterOptions{Color: false}).Format(variants)
	assert.NotContains(t, plain, "\x1b[")

	colored := NewGridFormatter(FormatterOptions{Color: true}).Format(variants)
	assert.Contains(t, colored, "\x1b[")
	assert.Contains(t, colored, "가가")

	DisableColor()
	assert.Equal(t, plain, NewGridFormatter(FormatterOptions{Color: true}).Format(variants))
}

func TestGridFormatter_Report(t *testing.T) {
	variants, err := codec.Default().Verify(12345)
	require.NoError(t, err)

	report := NewGridFormatter(FormatterOptions{}).Report(12345, variants)
	assert.True(t, strings.HasPrefix(report, "\nAll 128 encodings for 12,345:\n"+Rule+"\n가크새✓"))
	assert.Contains(t, report, "\nTotal: 128 variants, Length: 3 chars each\n")
	assert.True(t, strings.HasSuffix(report, Rule+"\n\n"))
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "Total: 0 variants, Length: 0 chars each\n", Summary(nil))

	variants, err := codec.Default().Verify(0)
	require.NoError(t, err)
	assert.Equal(t, "Total: 128 variants, Length: 2 chars each\n", Summary(variants))
}

func BenchmarkGridFormatter_Format(b *testing.B) {
	variants, _ := codec.Default().Verify(987654321)
	formatter := NewGridFormatter(FormatterOptions{})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = formatter.Format(variants)
	}
}
