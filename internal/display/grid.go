package display

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/standardbeagle/hangulnum/internal/codec"
)

// Rule separates console report blocks.
const Rule = "--------------------------------------------------"

// GridFormatter lays out a value's per-seed variants as a fixed-width grid.
type GridFormatter struct {
	options FormatterOptions
}

// FormatterOptions controls grid formatting
type FormatterOptions struct {
	Columns   int    // Cells per row
	Color     bool   // Colour the round-trip marks
	CheckMark string // Appended to variants that decoded back to the value
	CrossMark string // Appended to variants that did not
	Gap       string // Between cells
}

// NewGridFormatter creates a grid formatter, filling unset options with defaults.
func NewGridFormatter(options FormatterOptions) *GridFormatter {
	if options.Columns <= 0 {
		options.Columns = 8
	}
	if options.CheckMark == "" {
		options.CheckMark = "✓"
	}
	if options.CrossMark == "" {
		options.CrossMark = "✗"
	}
	if options.Gap == "" {
		options.Gap = "  "
	}
	return &GridFormatter{options: options}
}

// Format renders the variants row by row. Cells are padded to the widest
// cell's display width so rows stay aligned for double-width symbols.
func (gf *GridFormatter) Format(variants []codec.Variant) string {
	if len(variants) == 0 {
		return ""
	}

	cells := make([]string, len(variants))
	width := 0
	for i, v := range variants {
		cells[i] = v.Encoded + gf.mark(v.OK)
		if w := runewidth.StringWidth(cells[i]); w > width {
			width = w
		}
	}

	var sb strings.Builder
	for i, v := range variants {
		col := i % gf.options.Columns
		if col > 0 {
			sb.WriteString(gf.options.Gap)
		}

		sb.WriteString(v.Encoded)
		sb.WriteString(paint(gf.markColor(v.OK), gf.options.Color, gf.mark(v.OK)))

		last := col == gf.options.Columns-1 || i == len(variants)-1
		if !last {
			sb.WriteString(strings.Repeat(" ", width-runewidth.StringWidth(cells[i])))
		} else {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// Report renders the full console block for one value: header, grid and totals.
func (gf *GridFormatter) Report(value uint64, variants []codec.Variant) string {
	var sb strings.Builder
	sb.WriteString(Header(value, len(variants)))
	sb.WriteString(gf.Format(variants))
	sb.WriteString("\n")
	sb.WriteString(Summary(variants))
	sb.WriteString(Rule + "\n\n")
	return sb.String()
}

func (gf *GridFormatter) mark(ok bool) string {
	if ok {
		return gf.options.CheckMark
	}
	return gf.options.CrossMark
}

func (gf *GridFormatter) markColor(ok bool) *color.Color {
	if ok {
		return green
	}
	return red
}

// Header is the title line printed above a value's grid.
func Header(value uint64, count int) string {
	return fmt.Sprintf("\nAll %d encodings for %s:\n%s\n", count, FormatNumber(value), Rule)
}

// Summary reports the variant count and the symbol length they share.
func Summary(variants []codec.Variant) string {
	length := 0
	if len(variants) > 0 {
		length = len(codec.Split(variants[0].Encoded))
	}
	return fmt.Sprintf("Total: %d variants, Length: %d chars each\n", len(variants), length)
}
