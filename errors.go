package logsetup

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownRotation    = errors.New("unknown rotation, valid values: minutely | hourly | daily | never")
	ErrUnknownFormat      = errors.New("unknown format, valid values: pretty | compact | json | full")
	ErrInvalidFilter      = errors.New("invalid filter expression")
	ErrInvalidOption      = errors.New("invalid option value")
	ErrAlreadyInitialized = errors.New("logsetup: global logger already installed, close the previous guard first")
)

// ConfigError reports which option was rejected and why. Err is one of the
// Err* sentinels above, so callers can test it with errors.Is.
type ConfigError struct {
	Option string
	Value  string
	Err    error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("logsetup: invalid %s %q: %v", e.Option, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

func newConfigError(option, value string, err error) *ConfigError {
	return &ConfigError{Option: option, Value: value, Err: err}
}
