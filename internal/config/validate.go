package config

import (
	"errors"
	"fmt"
)

// Validation errors for configuration fields.
var (
	// ErrVersionTooLow indicates the version field is below the minimum.
	ErrVersionTooLow = errors.New("version must be >= 1")

	// ErrInvalidOutputFormat indicates an unrecognized output_format value.
	ErrInvalidOutputFormat = errors.New("output_format must be text or json")

	// ErrInvalidColorMode indicates an unrecognized color value.
	ErrInvalidColorMode = errors.New("color must be auto, always, or never")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version < 1 {
		errs = append(errs, ErrVersionTooLow)
	}

	switch cfg.OutputFormat {
	case "", OutputText, OutputJSON:
	default:
		errs = append(errs, &FieldError{
			Field: "output_format",
			Value: cfg.OutputFormat,
			Err:   ErrInvalidOutputFormat,
		})
	}

	switch cfg.Color {
	case "", ColorAuto, ColorAlways, ColorNever:
	default:
		errs = append(errs, &FieldError{
			Field: "color",
			Value: cfg.Color,
			Err:   ErrInvalidColorMode,
		})
	}

	return errs
}

// FieldError represents a validation error for a specific config field.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s (got %q)", e.Field, e.Err.Error(), e.Value)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
