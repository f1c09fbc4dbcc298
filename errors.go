package styletransfer

import (
	"errors"
	"fmt"
)

const (
	EXIT_SUCCESS       int = 0
	EXIT_PROCESSING    int = 1
	EXIT_CONFIGURATION int = 2
	EXIT_INTERNAL      int = 3
)

// ConfigError is returned for problems detected before any image is processed: malformed
// globs, bad width or height values and missing arguments.
type ConfigError struct {
	Message string
	Err     error
}

func (e *ConfigError) Error() string {

	if e.Err == nil {
		return e.Message
	}

	return fmt.Sprintf("%s, %v", e.Message, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func configErrorf(format string, args ...any) error {
	return &ConfigError{Message: fmt.Sprintf(format, args...)}
}

// SynthesisError is returned when a synthesis session for Path can not be built or run.
type SynthesisError struct {
	Path string
	Err  error
}

func (e *SynthesisError) Error() string {
	return fmt.Sprintf("Failed to synthesize %s, %v", e.Path, e.Err)
}

func (e *SynthesisError) Unwrap() error {
	return e.Err
}

// PersistenceError is returned when the generated image can not be written to Path.
type PersistenceError struct {
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("Failed to write %s, %v", e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// ExitCode maps err to the exit status a command should terminate with.
func ExitCode(err error) int {

	if err == nil {
		return EXIT_SUCCESS
	}

	var config_err *ConfigError

	if errors.As(err, &config_err) {
		return EXIT_CONFIGURATION
	}

	var synth_err *SynthesisError
	var persist_err *PersistenceError

	if errors.As(err, &synth_err) || errors.As(err, &persist_err) {
		return EXIT_PROCESSING
	}

	return EXIT_INTERNAL
}
