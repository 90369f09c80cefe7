package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/hangulnum/internal/encoding"
	hnerrors "github.com/standardbeagle/hangulnum/internal/errors"
)

func TestValidateAndSetDefaults(t *testing.T) {
	cfg := &Config{
		Display: Display{Columns: 8},
	}

	err := NewValidator().ValidateAndSetDefaults(cfg)
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, DefaultSeparators, cfg.Display.Separators)
	assert.Equal(t, DefaultCheckMark, cfg.Display.CheckMark)
	assert.Equal(t, DefaultCrossMark, cfg.Display.CrossMark)
}

func TestValidateAndSetDefaults_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"zero columns", func(c *Config) { c.Display.Columns = 0 }, "display.columns"},
		{"negative columns", func(c *Config) { c.Display.Columns = -3 }, "display.columns"},
		{"too many columns", func(c *Config) { c.Display.Columns = 129 }, "display.columns"},
		{"negative workers", func(c *Config) { c.Batch.Workers = -1 }, "batch.workers"},
		{"short alphabet", func(c *Config) { c.Alphabet.Symbols = []string{"가"} }, "alphabet.symbols"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)

			err := ValidateConfig(cfg)
			require.Error(t, err)

			var cfgErr *hnerrors.ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tc.field, cfgErr.Field)
		})
	}
}

func TestValidateAndSetDefaults_FullAlphabet(t *testing.T) {
	cfg := Default()
	cfg.Alphabet.Symbols = encoding.HangulSymbols[:]
	assert.NoError(t, ValidateConfig(cfg))
}

func BenchmarkValidateAndSetDefaults(b *testing.B) {
	v := NewValidator()
	for i := 0; i < b.N; i++ {
		_ = v.ValidateAndSetDefaults(Default())
	}
}
