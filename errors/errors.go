// Package errors provides constant sentinel errors for the lint engine along with thin
// wrappers over the standard library so callers only need a single errors import.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSeparator separates the sentinel message from its cause in a wrapped error message.
const ErrSeparator = " -- "

const (
	// ErrUnknownRule is returned when a rule name is not present in a registry.
	ErrUnknownRule = Error("unknown rule")
	// ErrDuplicateRule is returned when a rule with the same name is registered twice.
	ErrDuplicateRule = Error("duplicate rule")
	// ErrUnknownPlugin is returned when configuration enables a plugin no registered rule belongs to.
	ErrUnknownPlugin = Error("unknown plugin")
	// ErrInvalidConfig is returned when a configuration document cannot be loaded.
	ErrInvalidConfig = Error("invalid config")
)

// Error is a string based error type allowing const errors to be declared in packages.
type Error string

func (s Error) Error() string {
	return string(s)
}

// Is reports whether target carries the same message, either directly or as the prefix of a wrapped error.
func (s Error) Is(target error) bool {
	msg := target.Error()
	return msg == string(s) || strings.HasPrefix(msg, string(s)+ErrSeparator)
}

// Wrap attaches err as the cause of s.
func (s Error) Wrap(err error) error {
	return wrappedError{msg: string(s), cause: err}
}

// Wrapf attaches a formatted cause to s.
func (s Error) Wrapf(format string, args ...any) error {
	return wrappedError{msg: string(s), cause: fmt.Errorf(format, args...)}
}

type wrappedError struct {
	msg   string
	cause error
}

func (w wrappedError) Error() string {
	if w.cause == nil {
		return w.msg
	}
	return w.msg + ErrSeparator + w.cause.Error()
}

func (w wrappedError) Is(target error) bool {
	return Error(w.msg).Is(target)
}

func (w wrappedError) Unwrap() error {
	return w.cause
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// New returns an error with the given message.
func New(message string) error {
	return errors.New(message)
}

// Join returns an error wrapping all non-nil errs.
func Join(errs ...error) error {
	return errors.Join(errs...)
}
