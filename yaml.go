// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Package yamlcore is a YAML 1.2 lexer, parser and presenter built around
// an event stream: a Parser turns bytes into a sequence of Events, and a
// Presenter turns a sequence of Events back into bytes. The event stream
// is the public boundary between the two; callers are free to inspect,
// transform or filter events before presenting them, or to connect a
// Parser's output directly to a Presenter's input.
//
// This package does not bind events to Go values — there is no Marshal
// or Unmarshal here. Native-value serialization is a separate concern
// layered on top of the event model, not part of the core.
package yamlcore

import (
	"io"

	"github.com/streamyaml/yamlcore/internal/core"
)

// Event is the tagged-union record produced by a Parser and consumed by
// a Presenter. See EventKind for the set of variants and which fields
// are meaningful for each.
type Event = core.Event

// EventKind tags the variant of an Event.
type EventKind = core.EventKind

const (
	StreamStartEvent = core.StreamStartEvent
	StreamEndEvent   = core.StreamEndEvent
	DocStartEvent    = core.DocStartEvent
	DocEndEvent      = core.DocEndEvent
	MapStartEvent    = core.MapStartEvent
	MapEndEvent      = core.MapEndEvent
	SeqStartEvent    = core.SeqStartEvent
	SeqEndEvent      = core.SeqEndEvent
	ScalarEvent      = core.ScalarEvent
	AliasEvent       = core.AliasEvent
)

// ScalarStyle is the presentation style of a scalar node.
type ScalarStyle = core.ScalarStyle

const (
	AnyScalarStyle          = core.AnyScalarStyle
	PlainScalarStyle        = core.PlainScalarStyle
	SingleQuotedScalarStyle = core.SingleQuotedScalarStyle
	DoubleQuotedScalarStyle = core.DoubleQuotedScalarStyle
	LiteralScalarStyle      = core.LiteralScalarStyle
	FoldedScalarStyle       = core.FoldedScalarStyle
)

// CollectionStyle is the presentation style of a mapping or sequence.
type CollectionStyle = core.CollectionStyle

const (
	AnyCollectionStyle   = core.AnyCollectionStyle
	BlockCollectionStyle = core.BlockCollectionStyle
	FlowCollectionStyle  = core.FlowCollectionStyle
	PairCollectionStyle  = core.PairCollectionStyle
)

// Properties is the (anchor, tag) pair attachable to any node.
type Properties = core.Properties

// TagDirective is one %TAG directive surfaced on a DocStartEvent.
type TagDirective = core.TagDirective

// The well-known tag URIs and the two non-specific tags, re-exported for
// callers that build or inspect Events directly.
const (
	NonSpecificQuestionTag = core.NonSpecificQuestionTag
	NonSpecificBangTag     = core.NonSpecificBangTag

	StrTag       = core.StrTag
	SeqTag       = core.SeqTag
	MapTag       = core.MapTag
	NullTag      = core.NullTag
	BoolTag      = core.BoolTag
	IntTag       = core.IntTag
	FloatTag     = core.FloatTag
	TimestampTag = core.TimestampTag
	BinaryTag    = core.BinaryTag
	OMapTag      = core.OMapTag
	PairsTag     = core.PairsTag
	SetTag       = core.SetTag
	MergeTag     = core.MergeTag
	ValueTag     = core.ValueTag
	YamlTag      = core.YamlTag
)

// Error types raised at the package boundary (§7).
type (
	ParserError          = core.ParserError
	PresenterJSONError   = core.PresenterJSONError
	PresenterOutputError = core.PresenterOutputError
	StreamError          = core.StreamError
)

// Parser pulls Events from a YAML byte stream. Call Parse repeatedly
// until it returns a non-nil error or an Event whose Kind is
// StreamEndEvent.
type Parser = core.Parser

// NewParser builds a Parser over an in-memory document.
func NewParser(data []byte) *Parser { return core.NewParserFromBytes(data) }

// NewParserFromReader builds a Parser that reads r through a buffered
// stream source instead of taking the input as one byte slice. The first
// Parse call still reads and parses all of r before returning an event.
func NewParserFromReader(r io.Reader) *Parser { return core.NewParserFromReader(r) }

// EventSource is anything a Presenter can pull events from: a Parser, a
// sliceSource, or a caller-supplied transform sitting between the two.
type EventSource = core.EventSource

// Display renders an Event in the canonical test-suite form described in
// §6: "+STR", "-STR", "+DOC [---]", "-DOC [...]", "+MAP"/"+SEQ" with
// "&anchor <tag>" attributes, "=VAL" with a style prefix, "=ALI *target".
func Display(ev Event) string { return ev.Display() }
