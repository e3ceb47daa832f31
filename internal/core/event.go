// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// The event model: the typed record exchanged between the parser and the
// presenter (§3, §4.2).

package core

import (
	"strings"
)

// EventKind tags the variant of an Event.
type EventKind int8

const (
	StreamStartEvent EventKind = iota
	StreamEndEvent
	DocStartEvent
	DocEndEvent
	MapStartEvent
	MapEndEvent
	SeqStartEvent
	SeqEndEvent
	ScalarEvent
	AliasEvent
)

func (k EventKind) String() string {
	switch k {
	case StreamStartEvent:
		return "StreamStart"
	case StreamEndEvent:
		return "StreamEnd"
	case DocStartEvent:
		return "DocStart"
	case DocEndEvent:
		return "DocEnd"
	case MapStartEvent:
		return "MapStart"
	case MapEndEvent:
		return "MapEnd"
	case SeqStartEvent:
		return "SeqStart"
	case SeqEndEvent:
		return "SeqEnd"
	case ScalarEvent:
		return "Scalar"
	case AliasEvent:
		return "Alias"
	}
	return "<unknown event>"
}

// ScalarStyle is the presentation style of a scalar node.
type ScalarStyle int8

const (
	AnyScalarStyle ScalarStyle = iota
	PlainScalarStyle
	SingleQuotedScalarStyle
	DoubleQuotedScalarStyle
	LiteralScalarStyle
	FoldedScalarStyle
)

func (s ScalarStyle) String() string {
	switch s {
	case PlainScalarStyle:
		return "Plain"
	case SingleQuotedScalarStyle:
		return "Single"
	case DoubleQuotedScalarStyle:
		return "Double"
	case LiteralScalarStyle:
		return "Literal"
	case FoldedScalarStyle:
		return "Folded"
	default:
		return "Any"
	}
}

// CollectionStyle is the presentation style of a mapping or sequence node.
// Pair marks a synthetic single-pair mapping arising from flow-sequence
// implicit-pair sugar (§4.4 "flow implicit pairs").
type CollectionStyle int8

const (
	AnyCollectionStyle CollectionStyle = iota
	BlockCollectionStyle
	FlowCollectionStyle
	PairCollectionStyle
)

func (s CollectionStyle) String() string {
	switch s {
	case BlockCollectionStyle:
		return "Block"
	case FlowCollectionStyle:
		return "Flow"
	case PairCollectionStyle:
		return "Pair"
	default:
		return "Any"
	}
}

// Properties is the (anchor, tag) pair attachable to any node. The zero
// value is "empty": no anchor, non-specific "?" tag.
type Properties struct {
	Anchor string
	Tag    string
}

// IsEmpty reports whether both the anchor and the tag are at their
// defaults (§3 "Properties").
func (p Properties) IsEmpty() bool {
	return p.Anchor == "" && (p.Tag == "" || p.Tag == NonSpecificQuestionTag)
}

// Event is the tagged-union record exchanged between the parser and the
// presenter. Only the fields relevant to Kind are meaningful; the zero
// value of the others is always the appropriate default. StartPos/EndPos
// are ignored by Equal and by cmp-based equality in tests (§4.2).
type Event struct {
	Kind               EventKind
	StartPos, EndPos   Mark

	// DocStart / DocEnd
	ExplicitDirectivesEnd bool // DocStart: an explicit "---" was written/seen
	ExplicitDocEnd        bool // DocEnd: an explicit "..." was written/seen
	Version               string
	Handles               []TagDirective

	// MapStart / SeqStart
	Props Properties
	Style CollectionStyle

	// Scalar
	ScalarStyle ScalarStyle
	Content     string

	// Alias
	Target string
}

// Equal compares two events ignoring StartPos/EndPos, as required by §3
// ("Equality on events ignores positions; testable").
func (e Event) Equal(o Event) bool {
	if e.Kind != o.Kind {
		return false
	}
	switch e.Kind {
	case DocStartEvent:
		if e.ExplicitDirectivesEnd != o.ExplicitDirectivesEnd || e.Version != o.Version {
			return false
		}
		if len(e.Handles) != len(o.Handles) {
			return false
		}
		for i := range e.Handles {
			if e.Handles[i] != o.Handles[i] {
				return false
			}
		}
		return true
	case DocEndEvent:
		return e.ExplicitDocEnd == o.ExplicitDocEnd
	case MapStartEvent, SeqStartEvent:
		return e.Props == o.Props && e.Style == o.Style
	case ScalarEvent:
		return e.Props == o.Props && e.ScalarStyle == o.ScalarStyle && e.Content == o.Content
	case AliasEvent:
		return e.Target == o.Target
	default:
		return true
	}
}

// Display renders the canonical yaml-test-suite representation described
// in §6: "+STR", "-STR", "+DOC [---]", "-DOC [...]", "+MAP"/"+SEQ" with
// "&anchor <tag>" attributes, "=VAL" with a style prefix, "=ALI *target".
func (e Event) Display() string {
	var b strings.Builder
	switch e.Kind {
	case StreamStartEvent:
		b.WriteString("+STR")
	case StreamEndEvent:
		b.WriteString("-STR")
	case DocStartEvent:
		b.WriteString("+DOC")
		if e.ExplicitDirectivesEnd {
			b.WriteString(" ---")
		}
	case DocEndEvent:
		b.WriteString("-DOC")
		if e.ExplicitDocEnd {
			b.WriteString(" ...")
		}
	case MapStartEvent:
		b.WriteString("+MAP")
		writeStyleBracket(&b, e.Style, "{}")
		writeProps(&b, e.Props)
	case MapEndEvent:
		b.WriteString("-MAP")
	case SeqStartEvent:
		b.WriteString("+SEQ")
		writeStyleBracket(&b, e.Style, "[]")
		writeProps(&b, e.Props)
	case SeqEndEvent:
		b.WriteString("-SEQ")
	case ScalarEvent:
		b.WriteString("=VAL")
		writeProps(&b, e.Props)
		b.WriteByte(' ')
		b.WriteString(scalarStylePrefix(e.ScalarStyle))
		b.WriteString(escapeDisplayContent(e.Content))
	case AliasEvent:
		b.WriteString("=ALI *")
		b.WriteString(e.Target)
	}
	return b.String()
}

// writeStyleBracket appends the style attribute for a collection start
// event: bracket is this collection kind's own flow punctuation ("{}" for
// a map, "[]" for a sequence). A synthetic pair mapping (§4.4 "flow
// implicit pairs") always displays as "{}" regardless of which bracket its
// enclosing node uses, since it is a map.
func writeStyleBracket(b *strings.Builder, s CollectionStyle, bracket string) {
	switch s {
	case FlowCollectionStyle:
		b.WriteString(" " + bracket)
	case PairCollectionStyle:
		b.WriteString(" {}")
	}
}

func writeProps(b *strings.Builder, p Properties) {
	if p.Anchor != "" {
		b.WriteString(" &")
		b.WriteString(p.Anchor)
	}
	if p.Tag != "" && p.Tag != NonSpecificQuestionTag && p.Tag != NonSpecificBangTag {
		b.WriteString(" <")
		b.WriteString(p.Tag)
		b.WriteByte('>')
	}
}

func scalarStylePrefix(s ScalarStyle) string {
	switch s {
	case SingleQuotedScalarStyle:
		return "'"
	case DoubleQuotedScalarStyle:
		return "\""
	case LiteralScalarStyle:
		return "|"
	case FoldedScalarStyle:
		return ">"
	default:
		return ":"
	}
}

// escapeDisplayContent applies the canonical-form scalar escaping from §6:
// backslash, newline, carriage return and tab are escaped; everything else
// passes through verbatim.
func escapeDisplayContent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
