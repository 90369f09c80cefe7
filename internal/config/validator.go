package config

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/standardbeagle/hangulnum/internal/encoding"
	hnerrors "github.com/standardbeagle/hangulnum/internal/errors"
)

// Validator validates configuration and sets smart defaults
type Validator struct{}

// NewValidator creates a new configuration validator
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateAndSetDefaults validates configuration and applies smart defaults.
// Symbol-level alphabet checks happen later in encoding.BuildAlphabet; here
// only the count is checked so a bad file is reported with its field name.
func (v *Validator) ValidateAndSetDefaults(cfg *Config) error {
	if err := v.validateAlphabetConfig(&cfg.Alphabet); err != nil {
		return hnerrors.NewConfigError("alphabet.symbols", strconv.Itoa(len(cfg.Alphabet.Symbols)), err)
	}

	if err := v.validateDisplayConfig(&cfg.Display); err != nil {
		return hnerrors.NewConfigError("display.columns", strconv.Itoa(cfg.Display.Columns), err)
	}

	if err := v.validateBatchConfig(&cfg.Batch); err != nil {
		return hnerrors.NewConfigError("batch.workers", strconv.Itoa(cfg.Batch.Workers), err)
	}

	v.setSmartDefaults(cfg)
	return nil
}

// validateAlphabetConfig validates alphabet configuration
func (v *Validator) validateAlphabetConfig(a *Alphabet) error {
	if n := len(a.Symbols); n != 0 && n != encoding.Base {
		return fmt.Errorf("custom alphabet must have exactly %d symbols, got %d", encoding.Base, n)
	}
	return nil
}

// validateDisplayConfig validates display configuration
func (v *Validator) validateDisplayConfig(d *Display) error {
	if d.Columns <= 0 {
		return fmt.Errorf("Columns must be positive, got %d", d.Columns)
	}
	if d.Columns > encoding.Base {
		return fmt.Errorf("Columns must be at most %d, got %d", encoding.Base, d.Columns)
	}
	return nil
}

// validateBatchConfig validates batch configuration
func (v *Validator) validateBatchConfig(b *Batch) error {
	if b.Workers < 0 {
		return errors.New("Workers cannot be negative")
	}
	return nil
}

// setSmartDefaults fills in values left empty by the config file
func (v *Validator) setSmartDefaults(cfg *Config) {
	if cfg.Version == 0 {
		cfg.Version = 1
	}
	if cfg.Display.Separators == "" {
		cfg.Display.Separators = DefaultSeparators
	}
	if cfg.Display.CheckMark == "" {
		cfg.Display.CheckMark = DefaultCheckMark
	}
	if cfg.Display.CrossMark == "" {
		cfg.Display.CrossMark = DefaultCrossMark
	}
}

// ValidateConfig is a convenience function for validation
func ValidateConfig(cfg *Config) error {
	return NewValidator().ValidateAndSetDefaults(cfg)
}
