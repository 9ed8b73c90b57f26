package idiomate

import (
	"errors"
	"fmt"
)

// ErrProviderUnavailable is returned when no translation provider is
// configured or the provider is not ready. It is fatal for the request.
var ErrProviderUnavailable = errors.New("translation provider unavailable")

// TranslationError is the base error type for translation failures.
type TranslationError struct {
	Message string
	Cause   error
}

func (e *TranslationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *TranslationError) Unwrap() error {
	return e.Cause
}

// ProviderError indicates a translation provider failure (API error,
// rate limit, malformed response, etc.).
type ProviderError struct {
	Message   string
	Cause     error
	Retryable bool // Whether the operation can be retried
}

func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("provider error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("provider error: %s", e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// CacheError indicates a cache operation failure.
type CacheError struct {
	Message string
	Cause   error
}

func (e *CacheError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cache error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("cache error: %s", e.Message)
}

func (e *CacheError) Unwrap() error {
	return e.Cause
}

// UnknownLanguageError indicates a language code that is neither a known
// alias nor a registered canonical code. No translation is attempted.
type UnknownLanguageError struct {
	Code string
}

func (e *UnknownLanguageError) Error() string {
	return fmt.Sprintf("unknown language code: %q", e.Code)
}
