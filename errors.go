package flasher

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is the error wrapped by all pattern parameter validation failures.
	ErrInvalidConfig = errors.New("invalid flasher configuration")
	// ErrNotImplemented is reserved for features that report false from Supported.
	ErrNotImplemented = errors.New("not implemented")
)

// ConfigError describes an invalid pattern generation parameter.
// It unwraps to ErrInvalidConfig.
type ConfigError struct {
	// Param is the name of the offending parameter, i.e. "N" or "L".
	Param string
	Msg   string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidConfig, e.Param, e.Msg)
}

func (e *ConfigError) Unwrap() error { return ErrInvalidConfig }

// NewConfigError returns a *ConfigError for parameter param with a formatted message.
func NewConfigError(param, format string, args ...interface{}) *ConfigError {
	return &ConfigError{Param: param, Msg: fmt.Sprintf(format, args...)}
}
