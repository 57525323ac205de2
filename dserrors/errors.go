// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package dserrors defines the errors returned by the containers in this
// module. All errors are precondition violations and are reported as
// *Error values whose kind can be tested for using errors.Is with one of
// ErrInvalidArgument, ErrIndexOutOfRange or ErrInvalidState.
package dserrors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrInvalidState    = errors.New("invalid state")
)

// Error records the operation that failed, the kind of failure and
// a description of the offending values.
type Error struct {
	Op     string
	Kind   error
	Detail string
}

func (e *Error) Error() string {
	if len(e.Detail) == 0 {
		return fmt.Sprintf("%v: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("%v: %v: %v", e.Op, e.Kind, e.Detail)
}

// Unwrap returns the kind of the error.
func (e *Error) Unwrap() error {
	return e.Kind
}

// Is supports errors.Is by matching on Kind.
func (e *Error) Is(target error) bool {
	if te, ok := target.(*Error); ok {
		return te.Kind == e.Kind
	}
	return target == e.Kind
}

func newError(kind error, op, format string, args ...any) error {
	return &Error{
		Op:     op,
		Kind:   kind,
		Detail: fmt.Sprintf(format, args...),
	}
}

// InvalidArgument returns an error of kind ErrInvalidArgument.
func InvalidArgument(op, format string, args ...any) error {
	return newError(ErrInvalidArgument, op, format, args...)
}

// IndexOutOfRange returns an error of kind ErrIndexOutOfRange.
func IndexOutOfRange(op, format string, args ...any) error {
	return newError(ErrIndexOutOfRange, op, format, args...)
}

// InvalidState returns an error of kind ErrInvalidState.
func InvalidState(op, format string, args ...any) error {
	return newError(ErrInvalidState, op, format, args...)
}

// KindName returns a short, hyphenated name for the kind of err, or the
// empty string if err is not one of the kinds defined by this package.
func KindName(err error) string {
	switch {
	case errors.Is(err, ErrInvalidArgument):
		return "invalid-argument"
	case errors.Is(err, ErrIndexOutOfRange):
		return "index-out-of-range"
	case errors.Is(err, ErrInvalidState):
		return "invalid-state"
	}
	return ""
}

// KindFromName is the inverse of KindName.
func KindFromName(name string) (error, bool) {
	switch name {
	case "invalid-argument":
		return ErrInvalidArgument, true
	case "index-out-of-range":
		return ErrIndexOutOfRange, true
	case "invalid-state":
		return ErrInvalidState, true
	}
	return nil, false
}
