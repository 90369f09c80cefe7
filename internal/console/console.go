// Package console runs the interactive encode loop: read a number, print
// every seed's encoding with a round-trip mark, repeat.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/standardbeagle/hangulnum/internal/codec"
	"github.com/standardbeagle/hangulnum/internal/debug"
	"github.com/standardbeagle/hangulnum/internal/display"
)

const (
	banner = "=== Hangul Number Converter (Base-128, Variable Length) ===\n" +
		"Enter a non-negative integer to encode.\n" +
		"Type 'exit' to quit.\n\n"
	prompt       = "Enter number: "
	invalidInput = "Please enter a valid number."

	// maxHints caps the "did you mean" list for a mistyped symbol.
	maxHints = 3
)

// Options configures a Console.
type Options struct {
	Separators string // Runes stripped from numeric input
	Display    display.FormatterOptions
}

// Console is one interactive session bound to a codec.
type Console struct {
	codec      *codec.Codec
	formatter  *display.GridFormatter
	separators string
}

// New creates a console over c.
func New(c *codec.Codec, opts Options) *Console {
	return &Console{
		codec:      c,
		formatter:  display.NewGridFormatter(opts.Display),
		separators: opts.Separators,
	}
}

// Run reads lines from in until "exit", an empty line, EOF, or ctx is done.
// Bad input is reported on out and never ends the loop.
func (c *Console) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	w := bufio.NewWriter(out)
	defer w.Flush()

	reader := bufio.NewReader(in)
	w.WriteString(banner)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		w.WriteString(prompt)
		if err := w.Flush(); err != nil {
			return err
		}

		// No line length limit.
		raw, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return readErr
		}

		line := strings.TrimSpace(raw)
		if line == "" || strings.EqualFold(line, "exit") {
			debug.LogConsole("session ended by %q\n", line)
			return nil
		}

		w.WriteString(c.Respond(line))
		if readErr == io.EOF {
			return nil
		}
	}
}

// Respond returns the console's answer to one trimmed input line.
func (c *Console) Respond(line string) string {
	value, err := codec.ParseNumber(line, c.separators)
	if err == nil {
		variants, err := c.codec.Verify(value)
		if err != nil {
			return fmt.Sprintf("Error: %v\n\n", err)
		}
		if !codec.AllOK(variants) {
			debug.LogConsole("round-trip mismatch for %d\n", value)
		}
		return c.formatter.Report(value, variants)
	}

	decoded, decodeErr := c.codec.Decode(line)
	if decodeErr == nil {
		return fmt.Sprintf("%s = %s\n\n", line, display.FormatNumber(decoded))
	}
	debug.LogConsole("rejected %q: parse: %v; decode: %v\n", line, err, decodeErr)

	var sb strings.Builder
	sb.WriteString(invalidInput + "\n")
	if hints := c.codec.SuggestFor(decodeErr, maxHints); len(hints) > 0 {
		sb.WriteString(fmt.Sprintf("Did you mean %s?\n", strings.Join(hints, ", ")))
	}
	sb.WriteString("\n")
	return sb.String()
}
