package errors

import (
	"errors"
	"fmt"
	"time"
)

// CodecErrorKind classifies a codec failure.
type CodecErrorKind int

const (
	// KindConfiguration means the alphabet is not a set of exactly 128 distinct,
	// boundary-safe symbols. Fatal at startup.
	KindConfiguration CodecErrorKind = iota
	// KindInvalidArgument means a value or seed outside the accepted range.
	KindInvalidArgument
	// KindInvalidSymbol means a data position holds a symbol outside the alphabet.
	KindInvalidSymbol
	// KindInvalidSeedSymbol means the first symbol is outside the alphabet.
	KindInvalidSeedSymbol
	// KindInvalidLength means fewer than two symbols were presented to decode.
	KindInvalidLength
	// KindOverflow means the decoded value does not fit in a uint64.
	KindOverflow
)

func (k CodecErrorKind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration error"
	case KindInvalidArgument:
		return "invalid argument"
	case KindInvalidSymbol:
		return "invalid symbol"
	case KindInvalidSeedSymbol:
		return "invalid seed symbol"
	case KindInvalidLength:
		return "invalid length"
	case KindOverflow:
		return "overflow"
	default:
		return "unknown"
	}
}

// CodecError describes why an encode, decode or alphabet build failed.
type CodecError struct {
	Kind       CodecErrorKind
	Op         string // "build", "encode", "decode", "parse"
	Input      string // Offending input, if any
	Detail     string // Optional additional detail
	Underlying error
}

// NewCodecError creates a codec error of the given kind.
func NewCodecError(kind CodecErrorKind, op, detail string) *CodecError {
	return &CodecError{Kind: kind, Op: op, Detail: detail}
}

// WithInput records the offending input on the error
func (e *CodecError) WithInput(input string) *CodecError {
	e.Input = input
	return e
}

// Wrap attaches an underlying cause
func (e *CodecError) Wrap(err error) *CodecError {
	e.Underlying = err
	return e
}

// Error implements the error interface
func (e *CodecError) Error() string {
	msg := e.Kind.String()
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Input != "" {
		msg += fmt.Sprintf(" %q", e.Input)
	}
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	if e.Underlying != nil {
		msg += ": " + e.Underlying.Error()
	}
	return msg
}

// Unwrap returns the underlying error for errors.Is/As
func (e *CodecError) Unwrap() error {
	return e.Underlying
}

// Is matches any CodecError of the same kind, so kind sentinels work with errors.Is.
func (e *CodecError) Is(target error) bool {
	var ce *CodecError
	if errors.As(target, &ce) {
		return e.Kind == ce.Kind
	}
	return false
}

// KindOf reports the kind of the first CodecError in err's chain.
func KindOf(err error) (CodecErrorKind, bool) {
	var ce *CodecError
	if errors.As(err, &ce) {
		return ce.Kind, true
	}
	return 0, false
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field      string
	Value      string
	Underlying error
	Timestamp  time.Time
}

// NewConfigError creates a new config error
func NewConfigError(field, value string, err error) *ConfigError {
	return &ConfigError{
		Field:      field,
		Value:      value,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error for field %s (value %s): %v", e.Field, e.Value, e.Underlying)
}

// Unwrap returns the underlying error
func (e *ConfigError) Unwrap() error {
	return e.Underlying
}

// MultiError represents multiple errors
type MultiError struct {
	Errors []error
}

// NewMultiError creates a new multi-error
func NewMultiError(errs []error) *MultiError {
	// Filter out nil errors
	filtered := make([]error, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			filtered = append(filtered, err)
		}
	}
	return &MultiError{Errors: filtered}
}

// Error implements the error interface
func (e *MultiError) Error() string {
	if len(e.Errors) == 0 {
		return "no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	return fmt.Sprintf("%d errors: %v", len(e.Errors), e.Errors)
}

// Unwrap returns all errors
func (e *MultiError) Unwrap() []error {
	return e.Errors
}

// ErrorOrNil returns nil when no errors were collected.
func (e *MultiError) ErrorOrNil() error {
	if e == nil || len(e.Errors) == 0 {
		return nil
	}
	return e
}
