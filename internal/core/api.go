// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Constructors wiring Source, Lexer and Parser together; the
// shape of this file mirrors the teacher's api.go (SetInputString /
// SetInputReader / NewParser / NewEmitter), adapted to the new three-stage
// pipeline.

package core

import "io"

// NewParserFromBytes builds a Parser reading a whole in-memory document.
func NewParserFromBytes(input []byte) *Parser {
	return NewParser(NewLexer(newStringSource(input)))
}

// NewParserFromReader builds a Parser reading incrementally from r.
func NewParserFromReader(r io.Reader) *Parser {
	return NewParser(NewLexer(newStreamSource(r)))
}
