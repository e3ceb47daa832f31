// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// collectEvents drains p to StreamEndEvent, inclusive.
func collectEvents(t *testing.T, p EventSource) []Event {
	t.Helper()
	var out []Event
	for {
		var ev Event
		if err := p.Parse(&ev); err != nil {
			t.Fatalf("parse: %v", err)
		}
		out = append(out, ev)
		if ev.Kind == StreamEndEvent {
			return out
		}
	}
}

// positionIgnoring diffs two event slices ignoring StartPos/EndPos, the
// position-erased equality the round-trip property (§8, property 2)
// requires.
func positionIgnoring(a, b []Event) string {
	return cmp.Diff(a, b, cmpopts.IgnoreFields(Event{}, "StartPos", "EndPos"))
}

// Testable property 2: feeding a parser's event sequence into the
// presenter and then parsing the output again yields an event sequence
// equal to the original under position erasure.
func TestRoundTripEventEquality(t *testing.T) {
	inputs := []string{
		"a: 1\nb: 2\n",
		"- one\n- two\n- three\n",
		"{a: [1, 2], b: &x 3, c: *x}\n",
		"--- !!str\n  |\n    hello\n    world\n",
		"a: 1\n...\nb: 2\n",
		"a:\n- x\n- y\n",
		"root:\n  child: [1, {x: 2}]\n  other: plain text\n",
		"? complex key\n: value\n",
		"empty:\n",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			p := NewParserFromBytes([]byte(in))
			original := collectEvents(t, p)

			var buf strings.Builder
			opts := DefaultPresenterOptions()
			if err := NewPresenter(&buf, opts).Present(&fixedEvents{events: original}); err != nil {
				t.Fatalf("present: %v", err)
			}

			p2 := NewParserFromBytes([]byte(buf.String()))
			replayed := collectEvents(t, p2)

			if diff := positionIgnoring(original, replayed); diff != "" {
				t.Errorf("round trip mismatch for %q (rendered as %q):\n%s", in, buf.String(), diff)
			}
		})
	}
}

// The same property holds under forced flow rendering, which exercises
// a different code path (presentSeq/presentMap's flow branch) over the
// same event sequences.
func TestRoundTripEventEqualityForcedFlow(t *testing.T) {
	in := "a: 1\nb:\n  - x\n  - y\n"
	p := NewParserFromBytes([]byte(in))
	original := collectEvents(t, p)

	var buf strings.Builder
	opts := DefaultPresenterOptions()
	opts.Containers = "flow"
	if err := NewPresenter(&buf, opts).Present(&fixedEvents{events: original}); err != nil {
		t.Fatalf("present: %v", err)
	}

	p2 := NewParserFromBytes([]byte(buf.String()))
	replayed := collectEvents(t, p2)

	if diff := positionIgnoring(original, replayed); diff != "" {
		t.Errorf("round trip mismatch (rendered as %q):\n%s", buf.String(), diff)
	}
}
