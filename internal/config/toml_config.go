package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// tomlFile mirrors Config with pointer fields so absent keys keep their defaults.
type tomlFile struct {
	Version  *int `toml:"version"`
	Alphabet struct {
		Symbols []string `toml:"symbols"`
	} `toml:"alphabet"`
	Display struct {
		Columns    *int     `toml:"columns"`
		Color      *bool    `toml:"color"`
		Separators []string `toml:"separators"`
		CheckMark  *string  `toml:"check_mark"`
		CrossMark  *string  `toml:"cross_mark"`
	} `toml:"display"`
	Batch struct {
		Workers *int `toml:"workers"`
	} `toml:"batch"`
}

// LoadTOMLFile loads a TOML config from an explicit path.
func LoadTOMLFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg, err := parseTOML(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Source = path
	return cfg, nil
}

func parseTOML(data []byte) (*Config, error) {
	var f tomlFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse TOML config: %w", err)
	}

	cfg := Default()
	if f.Version != nil {
		cfg.Version = *f.Version
	}
	if len(f.Alphabet.Symbols) > 0 {
		cfg.Alphabet.Symbols = f.Alphabet.Symbols
	}
	if f.Display.Columns != nil {
		cfg.Display.Columns = *f.Display.Columns
	}
	if f.Display.Color != nil {
		cfg.Display.Color = *f.Display.Color
	}
	if f.Display.Separators != nil {
		cfg.Display.Separators = strings.Join(f.Display.Separators, "")
	}
	if f.Display.CheckMark != nil {
		cfg.Display.CheckMark = *f.Display.CheckMark
	}
	if f.Display.CrossMark != nil {
		cfg.Display.CrossMark = *f.Display.CrossMark
	}
	if f.Batch.Workers != nil {
		cfg.Batch.Workers = *f.Batch.Workers
	}
	return cfg, nil
}
