// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// The closed set of error kinds the core raises (§6, §7).

package core

import (
	"fmt"
	"strings"

	"golang.org/x/xerrors"
)

// ParserError is raised by the lexer or the parser. Lexer errors carry the
// same (mark, lineText, message) shape and bubble up through here: there is
// no separate lexer error type at the public boundary, only this one.
type ParserError struct {
	Mark     Mark
	LineText string
	Message  string
}

func (e *ParserError) Error() string {
	var b strings.Builder
	b.WriteString("yaml: ")
	if e.Mark.Line != 0 {
		fmt.Fprintf(&b, "%s: ", e.Mark)
	}
	b.WriteString(e.Message)
	if e.LineText != "" {
		fmt.Fprintf(&b, "\n  %s", e.LineText)
	}
	return b.String()
}

// PresenterJSONError is raised when quoting==json and the event stream is
// JSON-incompatible (an alias, a non-finite float, or a non-scalar key).
type PresenterJSONError struct {
	Message string
}

func (e *PresenterJSONError) Error() string { return "yaml: json mode: " + e.Message }

// PresenterOutputError wraps a sink write failure. The presenter never
// attempts to recover from one; it wraps it exactly once and returns it.
type PresenterOutputError struct {
	Message string
	Cause   error
}

func (e *PresenterOutputError) Error() string {
	return xerrors.Errorf("yaml: writing output: %s: %w", e.Message, e.Cause).Error()
}

func (e *PresenterOutputError) Unwrap() error { return e.Cause }

// StreamError wraps a parser or lexer error surfaced through an event
// iterator, so callers driving next() in a loop can use errors.As directly
// against either this type or *ParserError.
type StreamError struct {
	Cause error
}

func (e *StreamError) Error() string { return e.Cause.Error() }
func (e *StreamError) Unwrap() error { return e.Cause }

// internalError signals a broken invariant inside the core itself: a bug,
// not a user-facing parse failure. It must never be mistaken for
// *ParserError by a caller matching on error type, so it deliberately does
// not share a shape with the error kinds above.
type internalError struct {
	reason string
}

func (e *internalError) Error() string { return "yaml: internal error: " + e.reason }

func newInternalError(reason string) error { return &internalError{reason: reason} }
