// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// fixedEvents replays a literal event list as an EventSource, the same
// role sliceSource plays at the public API layer, kept here so presenter
// tests can build event streams by hand without a parser.
type fixedEvents struct {
	events []Event
	pos    int
}

func (f *fixedEvents) Parse(ev *Event) error {
	if f.pos >= len(f.events) {
		*ev = Event{Kind: StreamEndEvent}
		return nil
	}
	*ev = f.events[f.pos]
	f.pos++
	return nil
}

func simpleMapDoc(style CollectionStyle) []Event {
	return []Event{
		{Kind: StreamStartEvent},
		{Kind: DocStartEvent},
		{Kind: MapStartEvent, Style: style},
		{Kind: ScalarEvent, ScalarStyle: PlainScalarStyle, Content: "a"},
		{Kind: ScalarEvent, ScalarStyle: PlainScalarStyle, Content: "b"},
		{Kind: MapEndEvent},
		{Kind: DocEndEvent},
		{Kind: StreamEndEvent},
	}
}

func render(t *testing.T, events []Event, opts PresenterOptions) string {
	t.Helper()
	var buf strings.Builder
	err := NewPresenter(&buf, opts).Present(&fixedEvents{events: events})
	require.NoError(t, err)
	return buf.String()
}

// Scenario 6: a short scalar-only map presents as flow under "mixed" and
// as block when the estimate is not eligible or exceeds the budget.
func TestPresenterMixedContainers(t *testing.T) {
	opts := DefaultPresenterOptions()
	opts.Containers = "mixed"
	got := render(t, simpleMapDoc(BlockCollectionStyle), opts)
	require.Equal(t, "{a: b}\n", got)
}

func TestPresenterMixedContainersFallsBackToBlockWhenNested(t *testing.T) {
	events := []Event{
		{Kind: StreamStartEvent},
		{Kind: DocStartEvent},
		{Kind: MapStartEvent, Style: BlockCollectionStyle},
		{Kind: ScalarEvent, ScalarStyle: PlainScalarStyle, Content: "a"},
		{Kind: SeqStartEvent, Style: BlockCollectionStyle},
		{Kind: ScalarEvent, ScalarStyle: PlainScalarStyle, Content: "1"},
		{Kind: SeqEndEvent},
		{Kind: MapEndEvent},
		{Kind: DocEndEvent},
		{Kind: StreamEndEvent},
	}
	opts := DefaultPresenterOptions()
	opts.Containers = "mixed"
	got := render(t, events, opts)
	require.Equal(t, "a:\n  - 1\n", got)
}

func TestPresenterMixedContainersFallsBackToBlockWhenOverBudget(t *testing.T) {
	events := []Event{
		{Kind: StreamStartEvent},
		{Kind: DocStartEvent},
		{Kind: MapStartEvent, Style: BlockCollectionStyle},
	}
	for i := 0; i < 40; i++ {
		events = append(events,
			Event{Kind: ScalarEvent, ScalarStyle: PlainScalarStyle, Content: "k"},
			Event{Kind: ScalarEvent, ScalarStyle: PlainScalarStyle, Content: "v"},
		)
	}
	events = append(events, Event{Kind: MapEndEvent}, Event{Kind: DocEndEvent}, Event{Kind: StreamEndEvent})
	opts := DefaultPresenterOptions()
	opts.Containers = "mixed"
	got := render(t, events, opts)
	require.True(t, strings.HasPrefix(got, "k: v\n"))
	require.False(t, strings.HasPrefix(got, "{"))
}

func TestPresenterForcedFlow(t *testing.T) {
	opts := DefaultPresenterOptions()
	opts.Containers = "flow"
	got := render(t, simpleMapDoc(BlockCollectionStyle), opts)
	require.Equal(t, "{a: b}\n", got)
}

func TestPresenterForcedBlock(t *testing.T) {
	opts := DefaultPresenterOptions()
	opts.Containers = "block"
	got := render(t, simpleMapDoc(FlowCollectionStyle), opts)
	require.Equal(t, "a: b\n", got)
}

// JSON quoting mode rejects aliases, since JSON has no reference
// mechanism (§4.5 "quoting").
func TestPresenterJSONQuotingRejectsAlias(t *testing.T) {
	events := []Event{
		{Kind: StreamStartEvent},
		{Kind: DocStartEvent},
		{Kind: MapStartEvent, Style: BlockCollectionStyle},
		{Kind: ScalarEvent, ScalarStyle: PlainScalarStyle, Content: "a", Props: Properties{Anchor: "x"}},
		{Kind: AliasEvent, Target: "x"},
		{Kind: MapEndEvent},
		{Kind: DocEndEvent},
		{Kind: StreamEndEvent},
	}
	opts := DefaultPresenterOptions()
	opts.Quoting = "json"
	var buf strings.Builder
	err := NewPresenter(&buf, opts).Present(&fixedEvents{events: events})
	require.Error(t, err)
}

// JSON quoting mode always double-quotes scalars, never emits plain or
// single-quoted style.
func TestPresenterJSONQuotingForcesDoubleQuotes(t *testing.T) {
	opts := DefaultPresenterOptions()
	opts.Quoting = "json"
	got := render(t, simpleMapDoc(BlockCollectionStyle), opts)
	require.Equal(t, `{"a": "b"}`+"\n", got)
}

func TestPresenterJSONQuotingRejectsNonFiniteFloat(t *testing.T) {
	events := []Event{
		{Kind: StreamStartEvent},
		{Kind: DocStartEvent},
		{Kind: ScalarEvent, ScalarStyle: PlainScalarStyle, Content: ".inf", Props: Properties{Tag: FloatTag}},
		{Kind: DocEndEvent},
		{Kind: StreamEndEvent},
	}
	opts := DefaultPresenterOptions()
	opts.Quoting = "json"
	var buf strings.Builder
	err := NewPresenter(&buf, opts).Present(&fixedEvents{events: events})
	require.Error(t, err)
}

func TestPresenterJSONQuotingRejectsNonScalarKey(t *testing.T) {
	events := []Event{
		{Kind: StreamStartEvent},
		{Kind: DocStartEvent},
		{Kind: MapStartEvent, Style: BlockCollectionStyle},
		{Kind: SeqStartEvent, Style: FlowCollectionStyle},
		{Kind: ScalarEvent, ScalarStyle: PlainScalarStyle, Content: "1"},
		{Kind: SeqEndEvent},
		{Kind: ScalarEvent, ScalarStyle: PlainScalarStyle, Content: "v"},
		{Kind: MapEndEvent},
		{Kind: DocEndEvent},
		{Kind: StreamEndEvent},
	}
	opts := DefaultPresenterOptions()
	opts.Quoting = "json"
	var buf strings.Builder
	err := NewPresenter(&buf, opts).Present(&fixedEvents{events: events})
	require.Error(t, err)
}

// A plain scalar too long for the configured width, but made of short
// words with no leading-space lines, falls through the §4.5 cascade to
// folded style, which word-wraps its body to stay within Width.
func TestPresenterWidthWrapsLongScalarAsFolded(t *testing.T) {
	events := []Event{
		{Kind: StreamStartEvent},
		{Kind: DocStartEvent},
		{Kind: ScalarEvent, ScalarStyle: AnyScalarStyle, Content: "aaa bbb ccc ddd"},
		{Kind: DocEndEvent},
		{Kind: StreamEndEvent},
	}
	opts := DefaultPresenterOptions()
	opts.Width = 10
	got := render(t, events, opts)
	require.Equal(t, ">-\n  aaa bbb\n  ccc ddd\n", got)
}

// A double-quoted scalar too long for the configured width wraps near
// the line budget with a backslash continuation, the way a quoted value
// that can't use plain/literal/folded style still respects Width.
func TestPresenterWidthWrapsDoubleQuoted(t *testing.T) {
	events := []Event{
		{Kind: StreamStartEvent},
		{Kind: DocStartEvent},
		{Kind: ScalarEvent, ScalarStyle: DoubleQuotedScalarStyle, Content: "aaa bbb: ccc"},
		{Kind: DocEndEvent},
		{Kind: StreamEndEvent},
	}
	opts := DefaultPresenterOptions()
	opts.Width = 10
	got := render(t, events, opts)
	require.Equal(t, "\"aaa bbb:\\\n  ccc\"\n", got)
}

// width == 0 disables wrapping entirely, even for content that would
// otherwise overflow any reasonable line budget.
func TestPresenterWidthZeroDisablesWrapping(t *testing.T) {
	events := []Event{
		{Kind: StreamStartEvent},
		{Kind: DocStartEvent},
		{Kind: ScalarEvent, ScalarStyle: DoubleQuotedScalarStyle, Content: "aaa bbb ccc ddd eee fff ggg hhh"},
		{Kind: DocEndEvent},
		{Kind: StreamEndEvent},
	}
	opts := DefaultPresenterOptions()
	opts.Width = 0
	got := render(t, events, opts)
	require.Equal(t, "\"aaa bbb ccc ddd eee fff ggg hhh\"\n", got)
}

// Round-trip property: parsing a presenter's own output reproduces the
// same event sequence modulo position information.
func TestPresenterRoundTrip(t *testing.T) {
	input := "a: 1\nb:\n  - x\n  - y\nc: {d: 2, e: *f}\nf: &f anchored\n"
	p := NewParserFromBytes([]byte(input))
	var original []Event
	for {
		var ev Event
		require.NoError(t, p.Parse(&ev))
		original = append(original, ev)
		if ev.Kind == StreamEndEvent {
			break
		}
	}

	var buf strings.Builder
	opts := DefaultPresenterOptions()
	require.NoError(t, NewPresenter(&buf, opts).Present(&fixedEvents{events: original}))

	p2 := NewParserFromBytes([]byte(buf.String()))
	var replayed []Event
	for {
		var ev Event
		require.NoError(t, p2.Parse(&ev))
		replayed = append(replayed, ev)
		if ev.Kind == StreamEndEvent {
			break
		}
	}

	require.Equal(t, len(original), len(replayed))
	for i := range original {
		require.Truef(t, original[i].Equal(replayed[i]), "event %d differs: %s vs %s", i, original[i].Display(), replayed[i].Display())
	}
}
