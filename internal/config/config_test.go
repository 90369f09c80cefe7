package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/hangulnum/internal/codec"
	"github.com/standardbeagle/hangulnum/internal/encoding"
)

func TestMergeConfigs_ProjectSettingsTakePrecedence(t *testing.T) {
	base := Default()
	base.Display.Columns = 4
	base.Alphabet.Symbols = []string{"base"}

	project := Default()
	project.Display.Columns = 16

	merged := mergeConfigs(base, project)
	assert.Equal(t, 16, merged.Display.Columns)
	assert.Equal(t, []string{"base"}, merged.Alphabet.Symbols, "base alphabet is inherited")

	project.Alphabet.Symbols = []string{"project"}
	merged = mergeConfigs(base, project)
	assert.Equal(t, []string{"project"}, merged.Alphabet.Symbols)
}

func TestLoadWithRoot_MergesGlobalAndProjectConfigs(t *testing.T) {
	tmpHome := t.TempDir()
	tmpProject := t.TempDir()
	t.Setenv("HOME", tmpHome)

	globalConfig := `
display {
    columns 4
    separators "," "_"
}
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpHome, FileName), []byte(globalConfig), 0644))

	projectConfig := `
display {
    columns 16
}
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpProject, FileName), []byte(projectConfig), 0644))

	cfg, err := LoadWithRoot(tmpProject)
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.Display.Columns, "project columns should override global")
	assert.Equal(t, filepath.Join(tmpProject, FileName), cfg.Source)
}

func TestLoadWithRoot_GlobalConfigOnly(t *testing.T) {
	tmpHome := t.TempDir()
	t.Setenv("HOME", tmpHome)

	require.NoError(t, os.WriteFile(filepath.Join(tmpHome, FileName), []byte("display { columns 2; }\n"), 0644))

	cfg, err := LoadWithRoot(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Display.Columns)
}

func TestLoadWithRoot_DefaultConfigFallback(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadWithRoot(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default().Display, cfg.Display)
	assert.Empty(t, cfg.Source)
}

func TestLoadWithRoot_InvalidProjectConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	tmpProject := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpProject, FileName), []byte("display { columns 0; }\n"), 0644))

	_, err := LoadWithRoot(tmpProject)
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.kdl"))
	assert.Error(t, err)
}

func TestBuildAlphabet_Default(t *testing.T) {
	a, err := Default().BuildAlphabet()
	require.NoError(t, err)
	assert.Same(t, encoding.DefaultAlphabet(), a)
}

func TestBuildAlphabet_InvalidCustomIsConfigurationError(t *testing.T) {
	cfg := Default()
	symbols := append([]string(nil), encoding.HangulSymbols[:]...)
	symbols[127] = symbols[0] // duplicate
	cfg.Alphabet.Symbols = symbols
	cfg.Source = "test.kdl"

	_, err := cfg.BuildAlphabet()
	require.Error(t, err)
	assert.ErrorIs(t, err, encoding.ErrConfiguration)
	assert.Contains(t, err.Error(), "test.kdl")

	_, err = cfg.NewCodec()
	assert.ErrorIs(t, err, codec.ErrConfiguration)
}

func TestNewCodec_CustomAlphabet(t *testing.T) {
	symbols := make([]string, 0, encoding.Base)
	for r := rune(0x4E00); len(symbols) < encoding.Base; r++ {
		symbols = append(symbols, string(r))
	}
	cfg := Default()
	cfg.Alphabet.Symbols = symbols

	c, err := cfg.NewCodec()
	require.NoError(t, err)

	encoded, err := c.EncodeWithSeed(0, 0)
	require.NoError(t, err)
	assert.Equal(t, "一一", encoded)
}
