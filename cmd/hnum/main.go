package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/hangulnum/internal/codec"
	"github.com/standardbeagle/hangulnum/internal/config"
	"github.com/standardbeagle/hangulnum/internal/console"
	"github.com/standardbeagle/hangulnum/internal/debug"
	"github.com/standardbeagle/hangulnum/internal/display"
	"github.com/standardbeagle/hangulnum/internal/version"
)

// appState is filled by the Before hook and shared by every command.
type appState struct {
	cfg   *config.Config
	codec *codec.Codec
}

// loadConfigWithOverrides loads configuration and applies CLI flag overrides
func loadConfigWithOverrides(c *cli.Context) (*config.Config, error) {
	configPath := c.String("config")

	cfg, err := config.Load(configPath)
	if err != nil {
		if configPath == "" {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
	}

	if c.Bool("no-color") {
		cfg.Display.Color = false
	}
	if c.IsSet("workers") {
		cfg.Batch.Workers = c.Int("workers")
	}
	if err := config.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newApp(in io.Reader, out, errOut io.Writer) *cli.App {
	state := &appState{}

	return &cli.App{
		Name:                   "hnum",
		Usage:                  "Encode integers as short Hangul strings and back",
		Version:                version.Version,
		UseShortOptionHandling: true,
		Reader:                 in,
		Writer:                 out,
		ErrWriter:              errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file path (.kdl or .toml); default merges ~/" + config.FileName + " and ./" + config.FileName,
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable coloured output",
			},
			&cli.BoolFlag{
				Name:  "color",
				Usage: "Colour output even when stdout is not a terminal",
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "Batch worker count (0 = number of CPUs)",
			},
			&cli.BoolFlag{
				Name:   "debug-log",
				Usage:  "Write debug output to a file under the temp directory",
				Hidden: true,
			},
		},
		Commands: []*cli.Command{
			encodeCommand(state),
			decodeCommand(state),
			{
				Name:    "alphabet",
				Aliases: []string{"a"},
				Usage:   "Print the active 128-symbol alphabet",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "json",
						Aliases: []string{"j"},
						Usage:   "Output as JSON",
					},
				},
				Action: state.alphabetCommand,
			},
			{
				Name:   "mcp",
				Usage:  "Serve encode/decode tools over the Model Context Protocol (stdio)",
				Action: state.mcpCommand,
			},
		},
		Before: func(c *cli.Context) error {
			if c.Args().First() == "mcp" {
				// stdout belongs to the protocol from here on
				debug.SetMCPMode(true)
			}
			if c.Bool("debug-log") {
				path, err := debug.InitDebugLogFile()
				if err != nil {
					return err
				}
				fmt.Fprintf(c.App.ErrWriter, "Debug log: %s\n", path)
			}

			cfg, err := loadConfigWithOverrides(c)
			if err != nil {
				return err
			}
			if !cfg.Display.Color {
				display.DisableColor()
			} else if c.Bool("color") {
				display.ForceColor()
			}

			cdc, err := cfg.NewCodec()
			if err != nil {
				return debug.Fatal("invalid alphabet: %v", err)
			}

			state.cfg = cfg
			state.codec = cdc
			return nil
		},
		After: func(c *cli.Context) error {
			return debug.CloseDebugLog()
		},
		Action: state.consoleCommand,
	}
}

// consoleCommand runs the interactive loop when no subcommand is given.
func (s *appState) consoleCommand(c *cli.Context) error {
	if c.NArg() > 0 {
		return fmt.Errorf("unknown command %q (see 'hnum help')", c.Args().First())
	}

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	con := console.New(s.codec, console.Options{
		Separators: s.cfg.Display.Separators,
		Display:    s.formatterOptions(),
	})
	err := con.Run(ctx, c.App.Reader, c.App.Writer)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (s *appState) formatterOptions() display.FormatterOptions {
	return display.FormatterOptions{
		Columns:   s.cfg.Display.Columns,
		Color:     s.cfg.Display.Color,
		CheckMark: s.cfg.Display.CheckMark,
		CrossMark: s.cfg.Display.CrossMark,
	}
}

func main() {
	app := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}
