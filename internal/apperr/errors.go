package apperr

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// ErrOracleUnavailable marks transient oracle failures (quota, 5xx, timeouts).
var ErrOracleUnavailable = errors.New("oracle service unavailable")

// ConfigurationError is fatal: the process must not serve requests with it.
type ConfigurationError struct {
	Msg string
	Err error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("configuration error: %s: %v", e.Msg, e.Err)
	}
	return "configuration error: " + e.Msg
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// ParseError means the oracle text held no recognizable structure.
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string { return "parse error: " + e.Msg }

// GenerationError is returned once the retry budget of a generator is spent.
type GenerationError struct {
	Msg string
	Err error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *GenerationError) Unwrap() error { return e.Err }

type RateLimitError struct {
	Msg string
}

func (e *RateLimitError) Error() string { return e.Msg }

func Validation(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

func Parse(msg string) error {
	return &ParseError{Msg: msg}
}

func Generation(msg string, cause error) error {
	return &GenerationError{Msg: msg, Err: cause}
}

func RateLimit(msg string) error {
	return &RateLimitError{Msg: msg}
}

func Configuration(msg string, cause error) error {
	return &ConfigurationError{Msg: msg, Err: cause}
}

// Retryable reports whether a generator may try again after err.
// Structural and caller errors are surfaced immediately.
func Retryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	var (
		cfgErr   *ConfigurationError
		valErr   *ValidationError
		limitErr *RateLimitError
	)
	switch {
	case errors.As(err, &cfgErr), errors.As(err, &valErr), errors.As(err, &limitErr):
		return false
	}
	return true
}

// Status maps an error to the HTTP status surfaced to the client.
func Status(err error) int {
	var (
		valErr   *ValidationError
		limitErr *RateLimitError
		genErr   *GenerationError
	)
	switch {
	case errors.As(err, &valErr):
		return http.StatusBadRequest
	case errors.As(err, &limitErr):
		return http.StatusTooManyRequests
	case errors.As(err, &genErr):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// PublicMessage is the text that may be shown to the caller for err.
// Oracle output and internal causes never leave the process through it.
func PublicMessage(err error) string {
	var (
		valErr   *ValidationError
		limitErr *RateLimitError
		genErr   *GenerationError
	)
	switch {
	case errors.As(err, &valErr):
		return valErr.Msg
	case errors.As(err, &limitErr):
		return limitErr.Msg
	case errors.As(err, &genErr):
		return genErr.Msg + ". Please try again."
	}
	return "internal server error"
}
