package core

import (
	"errors"
	"fmt"
)

// ValidationError reports a missing or blank required request field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s is required", e.Field)
}

// ConfigurationError is returned when a provider credential is absent.
// The message never includes the credential value.
type ConfigurationError struct {
	Provider string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s API key not configured on server", e.Provider)
}

// ProviderError wraps any failure of the external AI call.
type ProviderError struct {
	Op  string
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// ErrNoImageURL means the provider answered without a usable image URL.
var ErrNoImageURL = errors.New("no image URL returned from provider")

// ErrEmptyCompletion means the provider answered without any text choice.
var ErrEmptyCompletion = errors.New("no completion returned from provider")

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func IsConfiguration(err error) bool {
	var c *ConfigurationError
	return errors.As(err, &c)
}

func IsProvider(err error) bool {
	var p *ProviderError
	return errors.As(err, &p)
}
