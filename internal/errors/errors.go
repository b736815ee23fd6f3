// Package errors is the one errors import for the module: matching comes from
// the standard library and wrapping from pkg/errors, which records stacks.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

func New(text string) error { return stderrors.New(text) }

func Is(err, target error) bool { return stderrors.Is(err, target) }

func As(err error, target any) bool { return stderrors.As(err, target) }

func Join(errs ...error) error { return stderrors.Join(errs...) }

// Wrap adds a stack and a message. A nil err stays nil.
func Wrap(err error, message string) error { return pkgerrors.Wrap(err, message) }

// Wrapf adds a stack and a formatted message. A nil err stays nil.
func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

func WithStack(err error) error { return pkgerrors.WithStack(err) }

// Errorf formats a new error carrying a stack.
func Errorf(format string, args ...any) error { return pkgerrors.Errorf(format, args...) }

// Cause unwraps pkg/errors layers down to the original error.
//
//nolint:wrapcheck // passthrough keeps pkg/errors semantics
func Cause(err error) error { return pkgerrors.Cause(err) }
