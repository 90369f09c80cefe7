package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/hangulnum/internal/encoding"
)

func TestParseKDL_Defaults(t *testing.T) {
	cfg, err := parseKDL("")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 1, cfg.Version)
	assert.Empty(t, cfg.Alphabet.Symbols)
	assert.Equal(t, 8, cfg.Display.Columns)
	assert.True(t, cfg.Display.Color)
	assert.Equal(t, ",", cfg.Display.Separators)
	assert.Equal(t, "✓", cfg.Display.CheckMark)
	assert.Equal(t, "✗", cfg.Display.CrossMark)
	assert.Equal(t, 0, cfg.Batch.Workers)
}

func TestParseKDL_Display(t *testing.T) {
	kdlContent := `
display {
    columns 4
    color false
    separators "," "_" " "
    check_mark "ok"
    cross_mark "FAIL"
}

batch {
    workers 3
}
`
	cfg, err := parseKDL(kdlContent)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Display.Columns)
	assert.False(t, cfg.Display.Color)
	assert.Equal(t, ",_ ", cfg.Display.Separators)
	assert.Equal(t, "ok", cfg.Display.CheckMark)
	assert.Equal(t, "FAIL", cfg.Display.CrossMark)
	assert.Equal(t, 3, cfg.Batch.Workers)
}

func quotedSymbols(symbols []string) string {
	quoted := make([]string, len(symbols))
	for i, s := range symbols {
		quoted[i] = `"` + s + `"`
	}
	return strings.Join(quoted, " ")
}

func TestParseKDL_AlphabetInline(t *testing.T) {
	symbols := encoding.HangulSymbols[:]
	cfg, err := parseKDL("alphabet {\n    symbols " + quotedSymbols(symbols) + "\n}\n")
	require.NoError(t, err)
	assert.Equal(t, symbols, cfg.Alphabet.Symbols)
}

func TestParseKDL_AlphabetBlock(t *testing.T) {
	kdlContent := `
alphabet {
    symbols {
        "가"
        "간"
        "강"
    }
}
`
	cfg, err := parseKDL(kdlContent)
	require.NoError(t, err)
	assert.Equal(t, []string{"가", "간", "강"}, cfg.Alphabet.Symbols)
}

func TestParseKDL_WrongTypes(t *testing.T) {
	tests := []struct {
		name    string
		content string
		field   string
	}{
		{"columns", `display { columns "eight"; }`, "display.columns"},
		{"color", `display { color "yes"; }`, "display.color"},
		{"workers", `batch { workers "many"; }`, "batch.workers"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseKDL(tc.content)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}

func TestParseKDL_Malformed(t *testing.T) {
	_, err := parseKDL(`display { columns 4`)
	assert.Error(t, err)
}

func TestLoadKDL_Missing(t *testing.T) {
	cfg, err := LoadKDL(t.TempDir())
	assert.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestLoadKDLFile_RecordsSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.kdl")
	require.NoError(t, os.WriteFile(path, []byte("display { columns 2; }\n"), 0644))

	cfg, err := LoadKDLFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.Source)
	assert.Equal(t, 2, cfg.Display.Columns)
}
