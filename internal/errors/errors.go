// Package errors provides typed fatal errors and the exit codes they map to.
package errors

import (
	stderrors "errors"
	"fmt"
)

const (
	ExitSuccess      = 0
	ExitRuntimeError = 1
	ExitConfigError  = 2
	ExitIOError      = 3 // a required input file could not be read
)

type Kind int

const (
	KindRuntime Kind = iota
	KindConfig
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindIO:
		return "io"
	default:
		return "runtime"
	}
}

type Error struct {
	Kind    Kind
	Message string
	Path    string
	Cause   error
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Path != "" {
		msg = fmt.Sprintf("%s %s", msg, e.Path)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func (e *Error) ExitCode() int {
	switch e.Kind {
	case KindConfig:
		return ExitConfigError
	case KindIO:
		return ExitIOError
	default:
		return ExitRuntimeError
	}
}

// IO reports a required file that could not be read. It aborts the run.
func IO(path string, cause error) *Error {
	return &Error{Kind: KindIO, Message: "reading", Path: path, Cause: cause}
}

func Config(message string) *Error {
	return &Error{Kind: KindConfig, Message: message}
}

func Configf(format string, args ...interface{}) *Error {
	return Config(fmt.Sprintf(format, args...))
}

// Wrap attaches a message to err, keeping it a runtime error.
func Wrap(err error, message string) *Error {
	return &Error{Kind: KindRuntime, Message: message, Cause: err}
}

// Is reports whether err carries an *Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	return stderrors.As(err, &e) && e.Kind == kind
}

// GetExitCode returns the exit code for err, looking through wrapping.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var e *Error
	if stderrors.As(err, &e) {
		return e.ExitCode()
	}
	return ExitRuntimeError
}
