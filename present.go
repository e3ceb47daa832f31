// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package yamlcore

import (
	"bytes"
	"io"
	"regexp"

	"github.com/streamyaml/yamlcore/internal/core"
)

// PresenterOptions configures Present/PresentString/Transform. Use
// DefaultPresenterOptions as a starting point.
type PresenterOptions = core.PresenterOptions

// DefaultPresenterOptions returns the conventional two-space block
// rendering most callers want.
func DefaultPresenterOptions() PresenterOptions { return core.DefaultPresenterOptions() }

// Presenter renders an Event stream as YAML text.
type Presenter = core.Presenter

// NewPresenter builds a Presenter writing to w under opts.
func NewPresenter(w io.Writer, opts PresenterOptions) *Presenter {
	return core.NewPresenter(w, opts)
}

// sliceSource replays a fixed slice of Events as a core.EventSource, so a
// pre-built event list can be fed straight into a Presenter.
type sliceSource struct {
	events []Event
	pos    int
}

func (s *sliceSource) Parse(ev *Event) error {
	if s.pos >= len(s.events) {
		*ev = Event{Kind: StreamEndEvent}
		return nil
	}
	*ev = s.events[s.pos]
	s.pos++
	return nil
}

// Present drives a pre-built event slice to completion against sink.
// events must already include the framing StreamStartEvent/StreamEndEvent
// and one DocStartEvent/DocEndEvent pair per document (§6 "present").
func Present(events []Event, sink io.Writer, opts PresenterOptions) error {
	return NewPresenter(sink, opts).Present(&sliceSource{events: events})
}

// PresentString is Present, returning the serialized form directly.
func PresentString(events []Event, opts PresenterOptions) (string, error) {
	var buf bytes.Buffer
	if err := Present(events, &buf, opts); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Transform parses input and re-emits it to sink, the composition
// `parse | present` exposed as one call (§6 "transform"). When
// resolveToCoreTags is true, every plain scalar whose tag is still empty
// or the non-specific "?" (i.e. unresolved by the parser) is assigned the YAML
// core-schema tag its content implies (tag:yaml.org,2002:{null,bool,int,
// float,str}) before presenting, the way a resolver pass in a full
// implementation would.
func Transform(input []byte, sink io.Writer, opts PresenterOptions, resolveToCoreTags bool) error {
	p := NewParser(input)
	var src core.EventSource = p
	if resolveToCoreTags {
		src = &coreTagResolvingSource{inner: p}
	}
	return NewPresenter(sink, opts).Present(src)
}

// coreTagResolvingSource wraps a Parser and rewrites each unresolved
// scalar's tag to the YAML core schema tag implied by its content,
// mirroring the "resolver" stage a full implementation delegates to a
// native-value binder (out of scope here, §1).
type coreTagResolvingSource struct {
	inner core.EventSource
}

func (s *coreTagResolvingSource) Parse(ev *Event) error {
	if err := s.inner.Parse(ev); err != nil {
		return err
	}
	if ev.Kind == ScalarEvent && (ev.Props.Tag == "" || ev.Props.Tag == NonSpecificQuestionTag) && ev.ScalarStyle == PlainScalarStyle {
		ev.Props.Tag = inferCoreTag(ev.Content)
	}
	return nil
}

var (
	coreIntPattern   = regexp.MustCompile(`^[-+]?(0|[1-9][0-9]*|0x[0-9a-fA-F]+|0o[0-7]+)$`)
	coreFloatPattern = regexp.MustCompile(`^[-+]?(\.inf|\.Inf|\.INF)$|^\.nan$|^\.NaN$|^\.NAN$|^[-+]?(\.[0-9]+|[0-9]+(\.[0-9]*)?)([eE][-+]?[0-9]+)?$`)
)

// inferCoreTag classifies content per the YAML core schema (10.2 in the
// 1.2 spec): the resolver a presenter-only Transform can reasonably
// reimplement without a full native-value layer.
func inferCoreTag(content string) string {
	switch content {
	case "", "~", "null", "Null", "NULL":
		return NullTag
	case "true", "True", "TRUE", "false", "False", "FALSE":
		return BoolTag
	}
	if coreIntPattern.MatchString(content) {
		return IntTag
	}
	if coreFloatPattern.MatchString(content) && content != "." {
		return FloatTag
	}
	return StrTag
}
