package router

import (
	"errors"
	"fmt"
)

var (
	// ErrNoTransition is returned by Run when OnTransition was never called.
	ErrNoTransition = errors.New("router: no transition function set")

	// ErrNoTable is returned by Open when the router has no route table.
	ErrNoTable = errors.New("router: no route table set")

	// ErrSchemeMismatch indicates a link whose scheme the table does not serve.
	ErrSchemeMismatch = errors.New("scheme not served by route table")

	// ErrNotRegistered indicates navigation to a screen without a ScreenFunc.
	ErrNotRegistered = errors.New("screen not registered")
)

// ScreenError reports a failure while running a screen.
type ScreenError struct {
	Screen Screen
	Err    error
}

func (e *ScreenError) Error() string {
	return fmt.Sprintf("router: screen %d: %v", e.Screen, e.Err)
}

func (e *ScreenError) Unwrap() error {
	return e.Err
}

// ConfigError reports a route table that could not be loaded.
type ConfigError struct {
	Path string // empty when parsed from bytes
	Err  error
}

func (e *ConfigError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("route table %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("route table: %v", e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// IsConfigError checks if an error came from loading a route table.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}
