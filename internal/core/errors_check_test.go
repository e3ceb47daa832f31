// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"errors"
	"testing"

	. "gopkg.in/check.v1"
)

// Test hooks gocheck's suites into `go test`, the same entry point the
// teacher used before its tests moved to stdlib testing.
func Test(t *testing.T) { TestingT(t) }

type ErrorsSuite struct{}

var _ = Suite(&ErrorsSuite{})

func (s *ErrorsSuite) TestParserErrorFormatsMark(c *C) {
	err := &ParserError{
		Mark:     Mark{Line: 3, Column: 5},
		Message:  "found unexpected token",
		LineText: "a: [1, 2",
	}
	c.Assert(err.Error(), Equals, "yaml: line 3, column 6: found unexpected token\n  a: [1, 2")
}

func (s *ErrorsSuite) TestParserErrorWithoutMarkOmitsPosition(c *C) {
	err := &ParserError{Message: "end of input"}
	c.Assert(err.Error(), Equals, "yaml: end of input")
}

func (s *ErrorsSuite) TestPresenterJSONErrorMessage(c *C) {
	err := &PresenterJSONError{Message: "alias *x has no JSON representation"}
	c.Assert(err.Error(), Equals, "yaml: json mode: alias *x has no JSON representation")
}

func (s *ErrorsSuite) TestPresenterOutputErrorUnwraps(c *C) {
	cause := errors.New("disk full")
	err := &PresenterOutputError{Message: "flushing output", Cause: cause}
	c.Assert(errors.Is(err, cause), Equals, true)
	c.Assert(errors.Unwrap(err), Equals, cause)
}

func (s *ErrorsSuite) TestStreamErrorUnwrapsToParserError(c *C) {
	inner := &ParserError{Message: "bad indentation"}
	err := &StreamError{Cause: inner}
	var target *ParserError
	c.Assert(errors.As(err, &target), Equals, true)
	c.Assert(target, Equals, inner)
}

func (s *ErrorsSuite) TestInternalErrorMessage(c *C) {
	err := newInternalError("unreachable branch")
	c.Assert(err.Error(), Equals, "yaml: internal error: unreachable branch")
}
