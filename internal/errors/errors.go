// Package errors provides structured error types and exit codes for aocrun.
package errors

import (
	"errors"
	"fmt"
)

// Exit codes returned by the aocrun CLI.
const (
	ExitSuccess          = 0 // Success
	ExitRuntimeError     = 1 // Runtime error (missing day, write failure, load failure)
	ExitConfigError      = 2 // Configuration or usage error (bad day, bad year, bad aoc.yaml)
	ExitEnvironmentError = 3 // Environment error (working directory unavailable, etc.)
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindConfig
	KindNotFound
	KindValidation
	KindEnvironment
	KindFetch
	KindWrite
	KindLoad
)

// String returns a short lowercase name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindNotFound:
		return "not found"
	case KindValidation:
		return "validation"
	case KindEnvironment:
		return "environment"
	case KindFetch:
		return "fetch"
	case KindWrite:
		return "write"
	case KindLoad:
		return "load"
	default:
		return "runtime"
	}
}

// Error is the base error type for aocrun.
type Error struct {
	Kind    ErrorKind
	Message string
	Day     int   // Day number if applicable
	Cause   error // Underlying error
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Cause != nil {
		if msg == "" {
			msg = e.Cause.Error()
		} else {
			msg = fmt.Sprintf("%s: %v", msg, e.Cause)
		}
	}
	if e.Day > 0 {
		return fmt.Sprintf("[day %d] %s", e.Day, msg)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error.
func (e *Error) ExitCode() int {
	switch e.Kind {
	case KindConfig, KindValidation:
		return ExitConfigError
	case KindEnvironment:
		return ExitEnvironmentError
	default:
		return ExitRuntimeError
	}
}

// New creates a new runtime error.
func New(message string) *Error {
	return &Error{
		Kind:    KindRuntime,
		Message: message,
	}
}

// Newf creates a new runtime error with formatting.
func Newf(format string, args ...interface{}) *Error {
	return New(fmt.Sprintf(format, args...))
}

// Config creates a new configuration error.
func Config(message string) *Error {
	return &Error{
		Kind:    KindConfig,
		Message: message,
	}
}

// Configf creates a new configuration error with formatting.
func Configf(format string, args ...interface{}) *Error {
	return Config(fmt.Sprintf(format, args...))
}

// Environment creates a new environment error.
func Environment(message string) *Error {
	return &Error{
		Kind:    KindEnvironment,
		Message: message,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) *Error {
	return &Error{
		Kind:    KindRuntime,
		Message: message,
		Cause:   err,
	}
}

// NotFound creates a not found error for a day.
func NotFound(day int, what string) *Error {
	return &Error{
		Kind:    KindNotFound,
		Day:     day,
		Message: fmt.Sprintf("%s not found", what),
	}
}

// Write wraps a directory or file operation failure.
func Write(day int, err error) *Error {
	return &Error{
		Kind:  KindWrite,
		Day:   day,
		Cause: err,
	}
}

// Load wraps a failure to load or evaluate a solution module.
func Load(day int, err error) *Error {
	return &Error{
		Kind:    KindLoad,
		Day:     day,
		Message: "could not load solution",
		Cause:   err,
	}
}

// Fetch wraps a failure to fetch puzzle input.
func Fetch(day int, err error) *Error {
	return &Error{
		Kind:    KindFetch,
		Day:     day,
		Message: "could not fetch input",
		Cause:   err,
	}
}

// IsKind reports whether err (or anything it wraps) is an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// exitCoder is implemented by errors that carry their own exit code.
type exitCoder interface {
	ExitCode() int
}

// GetExitCode returns the exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ec exitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}
	return ExitRuntimeError
}
