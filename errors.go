// Copyright (C) 2025 The jtok Authors. All Rights Reserved.

package jtok

import (
	"errors"
	"fmt"
)

// Errors reported by Parse. Each failure is returned as a *ParseError
// wrapping one of these sentinels, so callers can classify failures with
// errors.Is.
var (
	// ErrCapacity means the token pool had no free slot for a token that
	// would otherwise have been accepted. The parser state is left at the
	// start of the failing token; the caller may retry with more capacity.
	ErrCapacity = errors.New("token pool exhausted")

	// ErrInvalid means the input contained a malformed character or escape,
	// or a token that violates the grammar expectation. Not recoverable
	// within the same parse.
	ErrInvalid = errors.New("invalid input")

	// ErrTruncated means the input ended mid-string, mid-primitive, or with
	// containers still open. The caller may append input and retry.
	ErrTruncated = errors.New("truncated input")
)

// ParseError is the concrete type of errors reported by Parse. It records
// the byte offset at which scanning failed.
type ParseError struct {
	Offset  int    // byte offset in the input buffer
	Err     error  // one of the sentinel errors above
	Message string // optional detail
}

func (e *ParseError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s (offset %d)", e.Err, e.Offset)
	}
	return fmt.Sprintf("%s: %s (offset %d)", e.Err, e.Message, e.Offset)
}

// Unwrap supports error wrapping.
func (e *ParseError) Unwrap() error { return e.Err }

func (st *State) fail(err error) error {
	return &ParseError{Offset: st.pos, Err: err}
}

func (st *State) failf(err error, msg string, args ...any) error {
	return &ParseError{Offset: st.pos, Err: err, Message: fmt.Sprintf(msg, args...)}
}
