// Package errors provides standardized error handling for hepsync.
// It implements structured error types with proper wrapping and
// classification following Go 1.20+ error handling practices.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// Runtime-related errors
	ErrRuntimeUnavailable = errors.New("container runtime unavailable")
	ErrNetworkInspect     = errors.New("network inspection failed")

	// Reconciliation-related errors
	ErrApplyFailed = errors.New("host endpoint apply failed")

	// System-related errors
	ErrInvalidConfig = errors.New("invalid configuration")
)

// NetworkError represents an error related to a runtime network operation
type NetworkError struct {
	Network   string
	Operation string
	Err       error
}

func (e *NetworkError) Error() string {
	if e.Network == "" {
		return fmt.Sprintf("network: operation %s: %v", e.Operation, e.Err)
	}
	return fmt.Sprintf("network %s: operation %s: %v", e.Network, e.Operation, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ApplyError represents a failure to apply a single host endpoint
type ApplyError struct {
	Endpoint  string
	Operation string
	Err       error
}

func (e *ApplyError) Error() string {
	return fmt.Sprintf("endpoint %s: operation %s: %v", e.Endpoint, e.Operation, e.Err)
}

func (e *ApplyError) Unwrap() error {
	return e.Err
}

// ConfigError represents an error related to configuration
type ConfigError struct {
	Component string
	Field     string
	Err       error
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config %s.%s: %v", e.Component, e.Field, e.Err)
	}
	return fmt.Sprintf("config %s: %v", e.Component, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Error wrapping constructors
func WrapNetworkError(network, operation string, err error) error {
	if err == nil {
		return nil
	}
	return &NetworkError{Network: network, Operation: operation, Err: err}
}

func WrapApplyError(endpoint, operation string, err error) error {
	if err == nil {
		return nil
	}
	return &ApplyError{Endpoint: endpoint, Operation: operation, Err: err}
}

func WrapConfigError(component, field string, err error) error {
	if err == nil {
		return nil
	}
	return &ConfigError{Component: component, Field: field, Err: err}
}

// Error classification functions
func IsNetworkError(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

func IsApplyError(err error) bool {
	var ae *ApplyError
	return errors.As(err, &ae)
}

func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// IsFatalRuntimeError reports whether the error means network enumeration
// itself failed, which aborts the whole run.
func IsFatalRuntimeError(err error) bool {
	return errors.Is(err, ErrRuntimeUnavailable) || errors.Is(err, ErrNetworkInspect)
}

// Error extraction helpers
func GetNetwork(err error) (string, bool) {
	var ne *NetworkError
	if errors.As(err, &ne) {
		return ne.Network, true
	}
	return "", false
}

func GetEndpoint(err error) (string, bool) {
	var ae *ApplyError
	if errors.As(err, &ae) {
		return ae.Endpoint, true
	}
	return "", false
}

// Convenience constructors for common error patterns
func NewRuntimeUnavailableError(operation string, err error) error {
	return WrapNetworkError("", operation, fmt.Errorf("%w: %v", ErrRuntimeUnavailable, err))
}

func NewNetworkInspectError(network string, err error) error {
	return WrapNetworkError(network, "inspect", fmt.Errorf("%w: %v", ErrNetworkInspect, err))
}

func NewApplyFailedError(endpoint string, err error) error {
	return WrapApplyError(endpoint, "apply", fmt.Errorf("%w: %v", ErrApplyFailed, err))
}

func NewConfigError(component, field string, err error) error {
	return WrapConfigError(component, field, fmt.Errorf("%w: %v", ErrInvalidConfig, err))
}
