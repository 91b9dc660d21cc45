package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mvp-joe/grrs/internal/logging"
)

var (
	// ErrInvalidLogLevel indicates an unknown log level name
	ErrInvalidLogLevel = errors.New("invalid log level")

	// ErrInvalidEncoding indicates an unsupported log encoding
	ErrInvalidEncoding = errors.New("invalid log encoding")
)

// Validate checks that the configuration is valid and complete.
func Validate(cfg *Config) error {
	var errs []error

	if err := validateLog(&cfg.Log); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

func validateLog(cfg *LogConfig) error {
	var errs []error

	if _, err := logging.ParseVerbosity(cfg.Level); err != nil {
		errs = append(errs, fmt.Errorf("%w: must be one of off, error, warn, info, debug, trace, got '%s'", ErrInvalidLogLevel, cfg.Level))
	}

	encoding := strings.ToLower(cfg.Encoding)
	if encoding != "console" && encoding != "json" {
		errs = append(errs, fmt.Errorf("%w: must be 'console' or 'json', got '%s'", ErrInvalidEncoding, cfg.Encoding))
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

// joinErrors combines multiple errors into a single error with clear formatting.
// The result still matches every combined error with errors.Is.
func joinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}

	if len(errs) == 1 {
		return errs[0]
	}

	var msgs []string
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}

	return &joinedError{
		msg:  fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - ")),
		errs: errs,
	}
}

type joinedError struct {
	msg  string
	errs []error
}

func (e *joinedError) Error() string   { return e.msg }
func (e *joinedError) Unwrap() []error { return e.errs }
