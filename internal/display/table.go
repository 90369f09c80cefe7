package display

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/standardbeagle/hangulnum/internal/encoding"
)

// WriteAlphabetTable prints index, symbol and code points for every alphabet entry.
func WriteAlphabetTable(w io.Writer, a *encoding.Alphabet) error {
	table := tablewriter.NewWriter(w)
	table.Header("Index", "Hex", "Symbol", "Code points")

	for i, s := range a.Symbols() {
		row := []string{strconv.Itoa(i), fmt.Sprintf("0x%02X", i), s, codePoints(s)}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

func codePoints(s string) string {
	parts := make([]string, 0, len(s))
	for _, r := range s {
		parts = append(parts, fmt.Sprintf("U+%04X", r))
	}
	return strings.Join(parts, " ")
}
