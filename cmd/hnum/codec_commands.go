package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/hangulnum/internal/codec"
	"github.com/standardbeagle/hangulnum/internal/debug"
	"github.com/standardbeagle/hangulnum/internal/display"
)

// suggestionLimit caps the "did you mean" list printed for a bad symbol.
const suggestionLimit = 3

type encodeOutput struct {
	Value    uint64          `json:"value"`
	Seed     int             `json:"seed"`
	Encoded  string          `json:"encoded"`
	Variants []codec.Variant `json:"variants,omitempty"`
}

type decodeOutput struct {
	Input       string   `json:"input"`
	Value       uint64   `json:"value"`
	Error       string   `json:"error,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

func encodeCommand(s *appState) *cli.Command {
	return &cli.Command{
		Name:      "encode",
		Aliases:   []string{"e"},
		Usage:     "Encode one or more non-negative integers",
		ArgsUsage: "VALUE...",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "seed",
				Aliases: []string{"s"},
				Usage:   "Seed 0-127 (random when omitted)",
			},
			&cli.BoolFlag{
				Name:    "all",
				Aliases: []string{"a"},
				Usage:   "Print all 128 encodings with a round-trip check",
			},
			&cli.BoolFlag{
				Name:    "json",
				Aliases: []string{"j"},
				Usage:   "Output as JSON",
			},
		},
		Action: s.encodeCommand,
	}
}

func decodeCommand(s *appState) *cli.Command {
	return &cli.Command{
		Name:      "decode",
		Aliases:   []string{"d"},
		Usage:     "Decode encoded strings (arguments, or one per line on stdin)",
		ArgsUsage: "[ENCODED...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "json",
				Aliases: []string{"j"},
				Usage:   "Output as JSON",
			},
		},
		Action: s.decodeCommand,
	}
}

func (s *appState) encodeCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("encode requires at least one value")
	}

	values := make([]uint64, c.NArg())
	for i, arg := range c.Args().Slice() {
		v, err := codec.ParseNumber(arg, s.cfg.Display.Separators)
		if err != nil {
			return err
		}
		values[i] = v
	}

	if c.Bool("all") {
		if c.IsSet("seed") {
			return fmt.Errorf("--seed and --all cannot be combined")
		}
		return s.encodeAll(c, values)
	}

	var outputs []encodeOutput
	if c.IsSet("seed") {
		seed := c.Int("seed")
		for _, v := range values {
			encoded, err := s.codec.EncodeWithSeed(v, seed)
			if err != nil {
				return err
			}
			outputs = append(outputs, encodeOutput{Value: v, Seed: seed, Encoded: encoded})
		}
	} else {
		results, err := s.codec.EncodeBatch(c.Context, values, s.cfg.Batch.Workers)
		if err != nil {
			return err
		}
		if err := codec.Errors(results); err != nil {
			return err
		}
		for _, r := range results {
			seed, _ := s.codec.SeedOf(r.Encoded)
			outputs = append(outputs, encodeOutput{Value: r.Value, Seed: seed, Encoded: r.Encoded})
		}
	}

	if c.Bool("json") {
		return writeJSON(c.App.Writer, outputs)
	}
	for _, o := range outputs {
		fmt.Fprintln(c.App.Writer, o.Encoded)
	}
	return nil
}

func (s *appState) encodeAll(c *cli.Context, values []uint64) error {
	formatter := display.NewGridFormatter(s.formatterOptions())

	var outputs []encodeOutput
	for _, v := range values {
		variants, err := s.codec.Verify(v)
		if err != nil {
			return err
		}
		if !codec.AllOK(variants) {
			debug.LogCodec("round-trip mismatch for %d\n", v)
		}
		if c.Bool("json") {
			outputs = append(outputs, encodeOutput{Value: v, Seed: -1, Variants: variants})
			continue
		}
		fmt.Fprint(c.App.Writer, formatter.Report(v, variants))
	}

	if c.Bool("json") {
		return writeJSON(c.App.Writer, outputs)
	}
	return nil
}

func (s *appState) decodeCommand(c *cli.Context) error {
	inputs := c.Args().Slice()
	if len(inputs) == 0 {
		var err error
		if inputs, err = readLines(c.App.Reader); err != nil {
			return err
		}
	}
	if len(inputs) == 0 {
		return fmt.Errorf("decode requires at least one encoded string")
	}

	results, err := s.codec.DecodeBatch(c.Context, inputs, s.cfg.Batch.Workers)
	if err != nil {
		return err
	}

	outputs := make([]decodeOutput, len(results))
	failed := 0
	for i, r := range results {
		outputs[i] = decodeOutput{Input: inputs[i], Value: r.Value}
		if r.Err != nil {
			failed++
			outputs[i].Value = 0
			outputs[i].Error = r.Err.Error()
			outputs[i].Suggestions = s.codec.SuggestFor(r.Err, suggestionLimit)
		}
	}

	if c.Bool("json") {
		if err := writeJSON(c.App.Writer, outputs); err != nil {
			return err
		}
	} else {
		for _, o := range outputs {
			if o.Error != "" {
				fmt.Fprintf(c.App.ErrWriter, "%s: %s\n", o.Input, o.Error)
				if len(o.Suggestions) > 0 {
					fmt.Fprintf(c.App.ErrWriter, "  did you mean %s?\n", strings.Join(o.Suggestions, ", "))
				}
				continue
			}
			fmt.Fprintln(c.App.Writer, o.Value)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed to decode", failed, len(inputs))
	}
	return nil
}

func (s *appState) alphabetCommand(c *cli.Context) error {
	a := s.codec.Alphabet()
	if c.Bool("json") {
		return writeJSON(c.App.Writer, a.Symbols())
	}
	return display.WriteAlphabetTable(c.App.Writer, a)
}

// readLines returns the trimmed non-empty lines of r. Lines may be any length.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
