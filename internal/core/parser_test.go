// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// displayAll drains p to completion (or the first error) and returns the
// canonical display() form of every event produced.
func displayAll(t *testing.T, p *Parser) ([]string, error) {
	t.Helper()
	var out []string
	for {
		var ev Event
		if err := p.Parse(&ev); err != nil {
			return out, err
		}
		out = append(out, ev.Display())
		if ev.Kind == StreamEndEvent {
			return out, nil
		}
	}
}

// End-to-end parse scenarios, each checked against its literal expected
// event sequence: a block map, a block sequence, flow collections with an
// anchor and alias, a tagged literal after "---", a compact sequence under
// a map key, and an explicit indentation indicator.
func TestParserScenarios(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "simple block map",
			input: "a: 1\nb: 2\n",
			want: []string{
				"+STR", "+DOC", "+MAP",
				"=VAL :a", "=VAL :1", "=VAL :b", "=VAL :2",
				"-MAP", "-DOC", "-STR",
			},
		},
		{
			name:  "simple block sequence",
			input: "- one\n- two\n- three\n",
			want: []string{
				"+STR", "+DOC", "+SEQ",
				"=VAL :one", "=VAL :two", "=VAL :three",
				"-SEQ", "-DOC", "-STR",
			},
		},
		{
			name:  "flow collections with anchor and alias",
			input: "{a: [1, 2], b: &x 3, c: *x}\n",
			want: []string{
				"+STR", "+DOC", "+MAP {}",
				"=VAL :a", "+SEQ []", "=VAL :1", "=VAL :2", "-SEQ",
				"=VAL :b", "=VAL &x :3",
				"=VAL :c", "=ALI *x",
				"-MAP", "-DOC", "-STR",
			},
		},
		{
			name:  "tagged block literal with explicit directives-end",
			input: "--- !!str\n  |\n    hello\n    world\n",
			want: []string{
				"+STR", "+DOC ---",
				"=VAL <tag:yaml.org,2002:str> |hello\\nworld\\n",
				"-DOC", "-STR",
			},
		},
		{
			name:  "compact sequence under a map key",
			input: "a:\n- x\n- y\n",
			want: []string{
				"+STR", "+DOC", "+MAP",
				"=VAL :a", "+SEQ", "=VAL :x", "=VAL :y", "-SEQ",
				"-MAP", "-DOC", "-STR",
			},
		},
		{
			// The explicit indentation indicator is an offset added to the
			// enclosing block's indentation (§4.1), not an absolute column:
			// here the enclosing "child:" entry sits at column 2, so "|2"
			// means content starts at column 4. Content indented exactly to
			// that column carries no extra leading spaces.
			name:  "literal block scalar with explicit indentation indicator",
			input: "a:\n  child: |2\n    x\n",
			want: []string{
				"+STR", "+DOC", "+MAP",
				"=VAL :a", "+MAP",
				"=VAL :child", "=VAL |x\\n",
				"-MAP", "-MAP", "-DOC", "-STR",
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewParserFromBytes([]byte(tc.input))
			got, err := displayAll(t, p)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

// Scenario 5: documents separated by "..." each get their own +DOC/-DOC
// pair and reset handle table.
func TestParserMultiDocumentStream(t *testing.T) {
	p := NewParserFromBytes([]byte("a: 1\n...\nb: 2\n"))
	got, err := displayAll(t, p)
	require.NoError(t, err)
	require.Equal(t, []string{
		"+STR",
		"+DOC", "+MAP", "=VAL :a", "=VAL :1", "-MAP", "-DOC ...",
		"+DOC", "+MAP", "=VAL :b", "=VAL :2", "-MAP", "-DOC",
		"-STR",
	}, got)
}

// Indentation contract (testable property): a block sequence item less
// indented than its enclosing map's required indentation is a parser
// error, not a silently-accepted dedent.
func TestParserIndentationErrors(t *testing.T) {
	p := NewParserFromBytes([]byte("a:\n  - x\n - y\n"))
	_, err := displayAll(t, p)
	require.Error(t, err)
	var perr *ParserError
	require.ErrorAs(t, err, &perr)
}

// Single-line implicit-key rule: a multi-line scalar followed by ':' is a
// parser error.
func TestParserMultilineImplicitKeyIsError(t *testing.T) {
	p := NewParserFromBytes([]byte("a\nb: 1\n"))
	_, err := displayAll(t, p)
	require.Error(t, err)
}

// %YAML directives other than 1.2 warn rather than fail (§9 Open
// Questions).
func TestParserYAMLVersionWarnsNotFails(t *testing.T) {
	p := NewParserFromBytes([]byte("%YAML 1.1\n---\na: 1\n"))
	var warnings []string
	p.SetWarnFunc(func(msg string) { warnings = append(warnings, msg) })
	_, err := displayAll(t, p)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
}

// Duplicate %YAML directives are a hard error.
func TestParserDuplicateYAMLDirectiveIsError(t *testing.T) {
	p := NewParserFromBytes([]byte("%YAML 1.2\n%YAML 1.2\n---\na: 1\n"))
	_, err := displayAll(t, p)
	require.Error(t, err)
}

func TestParserBalancedEvents(t *testing.T) {
	p := NewParserFromBytes([]byte("root:\n  child: [1, {x: 2}]\n  other: plain text\n"))
	got, err := displayAll(t, p)
	require.NoError(t, err)
	require.Equal(t, "+STR", got[0])
	require.Equal(t, "-STR", got[len(got)-1])

	depth := 0
	for _, d := range got {
		switch d[0:4] {
		case "+MAP", "+SEQ":
			depth++
		case "-MAP", "-SEQ":
			depth--
			require.GreaterOrEqual(t, depth, 0)
		}
	}
	require.Equal(t, 0, depth)
}
