// Package config loads the quote file and the display settings file.
package config

import (
	"errors"
	"fmt"
)

// ErrConfig is matched by every ConfigError via errors.Is.
var ErrConfig = errors.New("configuration error")

// FileField is used as the Field of errors about the file as a whole.
const FileField = "(file)"

// ConfigError reports a malformed or missing configuration value.
// File and Field always identify where the problem is.
type ConfigError struct {
	File    string
	Field   string
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s: %v", e.File, e.Field, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s: %s", e.File, e.Field, e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

func fieldError(file, field, format string, args ...any) *ConfigError {
	return &ConfigError{
		File:    file,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}
