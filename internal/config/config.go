package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/standardbeagle/hangulnum/internal/codec"
	"github.com/standardbeagle/hangulnum/internal/debug"
	"github.com/standardbeagle/hangulnum/internal/encoding"
)

// FileName is the config file looked up in the home and working directories.
const FileName = ".hnum.kdl"

// Display defaults lay the 128 encodings out as 16 rows of 8.
const (
	DefaultColumns    = 8
	DefaultCheckMark  = "✓"
	DefaultCrossMark  = "✗"
	DefaultSeparators = codec.DefaultSeparators
)

type Config struct {
	Version  int
	Alphabet Alphabet
	Display  Display
	Batch    Batch
	Source   string // Path of the file the config was loaded from, empty for defaults
}

type Alphabet struct {
	Symbols []string // Custom 128-symbol alphabet; empty means the built-in Hangul set
}

type Display struct {
	Columns    int    // Encodings per console row
	Color      bool   // Colour the round-trip marks
	Separators string // Runes stripped from numeric input
	CheckMark  string
	CrossMark  string
}

type Batch struct {
	Workers int // 0 = auto-detect (NumCPU)
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{
		Version: 1,
		Display: Display{
			Columns:    DefaultColumns,
			Color:      true,
			Separators: DefaultSeparators,
			CheckMark:  DefaultCheckMark,
			CrossMark:  DefaultCrossMark,
		},
		Batch: Batch{Workers: 0},
	}
}

// Load reads an explicit config file, choosing the format by extension
// (.toml via go-toml, anything else as KDL). An empty path falls back to
// LoadWithRoot in the working directory.
func Load(path string) (*Config, error) {
	if path == "" {
		return LoadWithRoot(".")
	}

	var (
		cfg *Config
		err error
	)
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		cfg, err = LoadTOMLFile(path)
	} else {
		cfg, err = LoadKDLFile(path)
	}
	if err != nil {
		return nil, err
	}

	if err := NewValidator().ValidateAndSetDefaults(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadWithRoot loads ~/.hnum.kdl as a base and rootDir/.hnum.kdl on top of it.
func LoadWithRoot(rootDir string) (*Config, error) {
	searchDir := "."
	if rootDir != "" {
		searchDir = rootDir
	}

	// Step 1: Load global base config from ~/.hnum.kdl (if exists)
	var baseConfig *Config
	if homeDir, err := os.UserHomeDir(); err == nil {
		if globalCfg, err := LoadKDL(homeDir); err == nil && globalCfg != nil {
			baseConfig = globalCfg
		}
	}

	// Step 2: Load project-specific config from the search directory
	projectConfig, err := LoadKDL(searchDir)
	if err != nil {
		return nil, err
	}

	// Step 3: Merge configs (project overrides base)
	var cfg *Config
	switch {
	case baseConfig != nil && projectConfig != nil:
		cfg = mergeConfigs(baseConfig, projectConfig)
	case projectConfig != nil:
		cfg = projectConfig
	case baseConfig != nil:
		cfg = baseConfig
	default:
		cfg = Default()
	}

	if err := NewValidator().ValidateAndSetDefaults(cfg); err != nil {
		return nil, err
	}
	debug.LogConfig("loaded config (source=%q, custom alphabet=%v)\n", cfg.Source, len(cfg.Alphabet.Symbols) > 0)
	return cfg, nil
}

// mergeConfigs merges a base config with a project config.
// Project settings win; a base alphabet is kept when the project has none.
func mergeConfigs(base, project *Config) *Config {
	merged := *project

	if len(project.Alphabet.Symbols) == 0 && len(base.Alphabet.Symbols) > 0 {
		merged.Alphabet.Symbols = append([]string(nil), base.Alphabet.Symbols...)
	}

	return &merged
}

// BuildAlphabet returns the built-in alphabet or the configured custom one.
// A custom alphabet that fails validation is a configuration error and must
// stop startup.
func (c *Config) BuildAlphabet() (*encoding.Alphabet, error) {
	if len(c.Alphabet.Symbols) == 0 {
		return encoding.DefaultAlphabet(), nil
	}
	a, err := encoding.BuildAlphabet(c.Alphabet.Symbols)
	if err != nil {
		return nil, fmt.Errorf("alphabet from %s: %w", c.sourceName(), err)
	}
	return a, nil
}

// NewCodec builds the codec described by the config.
func (c *Config) NewCodec(opts ...codec.Option) (*codec.Codec, error) {
	a, err := c.BuildAlphabet()
	if err != nil {
		return nil, err
	}
	return codec.New(a, opts...)
}

func (c *Config) sourceName() string {
	if c.Source == "" {
		return "defaults"
	}
	return c.Source
}
