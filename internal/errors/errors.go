// Package errors is the single import for error handling across the module.
// Matching (Is, As, Join) delegates to the standard library; construction and
// wrapping go through pkg/errors so every error leaving a store carries a stack.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Join keeps every non-nil error reachable through Is and As.
func Join(errs ...error) error {
	return stderrors.Join(errs...)
}

// New records a stack at the call site.
func New(text string) error {
	return pkgerrors.New(text)
}

func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

// Wrap returns nil when err is nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

// Cause walks pkg/errors wrappers down to the original error. Errors joined
// or wrapped with %w are not unwrapped.
func Cause(err error) error {
	return pkgerrors.Cause(err)
}
