// Copyright 2006-2010 Kirill Simonov
// Copyright 2011-2019 Canonical Ltd
// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0 AND MIT

// Position tracking shared by the lexer, parser and presenter.

package core

import (
	"fmt"
	"strings"
)

// Mark holds a position in the input: a rune index, a 1-based line and a
// column. Column is stored 0-based internally and rendered 1-based by
// String, matching the historic libyaml convention kept by the rest of the
// package.
type Mark struct {
	Index  int
	Line   int
	Column int
}

func (m Mark) String() string {
	var b strings.Builder
	if m.Line == 0 {
		return "<unknown position>"
	}
	fmt.Fprintf(&b, "line %d", m.Line)
	if m.Column != 0 {
		fmt.Fprintf(&b, ", column %d", m.Column+1)
	}
	return b.String()
}
