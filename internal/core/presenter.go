// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// The presenter: renders an event stream back into YAML text (§4.5). It
// pulls events directly off an EventSource and recurses in lockstep with
// collection Start/End pairs, the same shape the teacher's emitter used
// for emitNode/emitSequenceStart/emitMappingStart, just driven by a pull
// source instead of a push queue.

package core

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
)

// EventSource is anything the presenter can pull events from; *Parser
// satisfies it, and so does any hand-built replay source used in tests.
type EventSource interface {
	Parse(ev *Event) error
}

// PresenterOptions configures rendering. The zero value is not valid;
// construct with DefaultPresenterOptions and override individual fields.
type PresenterOptions struct {
	// Indent is the number of columns added per nesting level of a block
	// collection. Must be between 1 and 9.
	Indent int `validate:"gte=1,lte=9"`

	// Width is the preferred maximum output line length. It guides scalar
	// style selection and the wrapping of folded and double-quoted
	// scalars; plain scalars are never wrapped. 0 disables wrapping.
	Width int `validate:"gte=0"`

	// LineBreak is the literal line separator written between lines.
	LineBreak string `validate:"oneof='\n' '\r\n'"`

	// Containers forces every collection to present in the given style
	// ("" lets each collection's own Style field decide; "block" or
	// "flow" overrides all of them; "mixed" uses flow for collections
	// whose fully-scalar content is short — §4.5 "length estimation" —
	// and block otherwise).
	Containers string `validate:"omitempty,oneof=block flow mixed"`

	// DirectivesEnd controls when a leading "---" is written: "always",
	// "never", or "ifNecessary" (only when the document carries
	// directives, its DocStartEvent has ExplicitDirectivesEnd set, or it is
	// not the stream's first document).
	DirectivesEnd string `validate:"oneof=always never ifNecessary"`

	// CondenseFlow omits the space after "," and ":" inside flow
	// collections.
	CondenseFlow bool

	// Quoting controls scalar style selection: "minimal" keeps each
	// scalar's requested style where the content and width allow it and
	// otherwise falls back as selectScalarStyle describes, "double" always
	// double-quotes,
	// "json" restricts output to the JSON-compatible subset of YAML
	// (double-quoted strings, flow collections, no aliases).
	Quoting string `validate:"oneof=minimal double json"`

	// SuppressAttrs omits anchors and tags from the rendered output
	// entirely (for diagnostic/preview rendering).
	SuppressAttrs bool

	// ExplicitKeys always renders mapping keys with the "? key" form
	// instead of the implicit "key:" shorthand.
	ExplicitKeys bool
}

// DefaultPresenterOptions returns the conventional two-space block
// rendering most callers want.
func DefaultPresenterOptions() PresenterOptions {
	return PresenterOptions{
		Indent:        2,
		Width:         80,
		LineBreak:     "\n",
		DirectivesEnd: "ifNecessary",
		Quoting:       "minimal",
	}
}

var optionsValidator = validator.New()

// Validate reports the fields that fail validation, if any.
func (o PresenterOptions) Validate() error {
	if err := optionsValidator.Struct(o); err != nil {
		return fmt.Errorf("yaml: invalid presenter options: %w", err)
	}
	return nil
}

// Presenter writes an event stream to an io.Writer as YAML text.
type Presenter struct {
	w    *bufio.Writer
	opts PresenterOptions

	docIndex int
}

// NewPresenter constructs a Presenter writing to w under opts. opts is
// validated; an invalid option set is reported the first time Present is
// called rather than here, so callers can build options incrementally.
func NewPresenter(w io.Writer, opts PresenterOptions) *Presenter {
	return &Presenter{w: bufio.NewWriter(w), opts: opts}
}

// Present drains src until StreamEndEvent, writing YAML text for every
// document it sees.
func (pr *Presenter) Present(src EventSource) error {
	if err := pr.opts.Validate(); err != nil {
		return err
	}

	var ev Event
	if err := pr.pull(src, &ev); err != nil {
		return err
	}
	if ev.Kind != StreamStartEvent {
		return newInternalError("event stream did not begin with StreamStartEvent")
	}

	for {
		if err := pr.pull(src, &ev); err != nil {
			return err
		}
		switch ev.Kind {
		case StreamEndEvent:
			return pr.flush()
		case DocStartEvent:
			if err := pr.presentDocument(src, ev); err != nil {
				return err
			}
		default:
			return newInternalError("expected DocStartEvent or StreamEndEvent")
		}
	}
}

func (pr *Presenter) pull(src EventSource, ev *Event) error {
	if err := src.Parse(ev); err != nil {
		return &StreamError{Cause: err}
	}
	return nil
}

func (pr *Presenter) flush() error {
	if err := pr.w.Flush(); err != nil {
		return &PresenterOutputError{Message: "flushing output", Cause: err}
	}
	return nil
}

func (pr *Presenter) writeStr(s string) error {
	if _, err := pr.w.WriteString(s); err != nil {
		return &PresenterOutputError{Message: "writing output", Cause: err}
	}
	return nil
}

func (pr *Presenter) writeIndent(col int) error { return pr.writeStr(strings.Repeat(" ", col)) }

func (pr *Presenter) presentDocument(src EventSource, start Event) error {
	wroteDirective := false
	if start.Version != "" {
		if err := pr.writeStr(fmt.Sprintf("%%YAML %s%s", start.Version, pr.opts.LineBreak)); err != nil {
			return err
		}
		wroteDirective = true
	}
	for _, h := range start.Handles {
		if err := pr.writeStr(fmt.Sprintf("%%TAG %s %s%s", h.Handle, h.Prefix, pr.opts.LineBreak)); err != nil {
			return err
		}
		wroteDirective = true
	}

	writeStart := pr.opts.DirectivesEnd == "always" ||
		(pr.opts.DirectivesEnd == "ifNecessary" && (wroteDirective || start.ExplicitDirectivesEnd || pr.docIndex > 0))
	if writeStart {
		if err := pr.writeStr("---"); err != nil {
			return err
		}
	}
	pr.docIndex++

	var root Event
	if err := pr.pull(src, &root); err != nil {
		return err
	}

	startedLine := !writeStart
	if writeStart {
		if root.Kind == ScalarEvent {
			if err := pr.writeStr(" "); err != nil {
				return err
			}
			startedLine = true
		} else {
			if err := pr.writeStr(pr.opts.LineBreak); err != nil {
				return err
			}
		}
	}
	if !startedLine {
		// nothing written yet on this line; nodes that begin with their
		// own newline (block collections) are fine starting at column 0.
	}

	if err := pr.presentNode(src, root, 0, false, writeStart && root.Kind == ScalarEvent); err != nil {
		return err
	}

	var end Event
	if err := pr.pull(src, &end); err != nil {
		return err
	}
	if end.Kind != DocEndEvent {
		return newInternalError("expected DocEndEvent")
	}
	if end.ExplicitDocEnd {
		if err := pr.writeStr(pr.opts.LineBreak + "..."); err != nil {
			return err
		}
	}
	return pr.writeStr(pr.opts.LineBreak)
}

// presentNode writes one node at block-indentation column indent.
// inFlow marks that we are already inside a flow collection (commas and
// brackets delimit siblings instead of newlines/indentation). sameLine
// marks that the cursor is already positioned right after a sibling
// separator on the current line (so no leading indent should be
// written).
func (pr *Presenter) presentNode(src EventSource, ev Event, indent int, inFlow, sameLine bool) error {
	switch ev.Kind {
	case ScalarEvent:
		if err := pr.writeProps(ev.Props); err != nil {
			return err
		}
		return pr.writeScalar(ev, indent)
	case AliasEvent:
		if pr.opts.Quoting == "json" {
			return &PresenterJSONError{Message: "alias *" + ev.Target + " has no JSON representation"}
		}
		return pr.writeStr("*" + ev.Target)
	case SeqStartEvent:
		return pr.presentSeq(src, ev, indent, inFlow)
	case MapStartEvent:
		return pr.presentMap(src, ev, indent, inFlow)
	}
	return newInternalError("unexpected event kind in node position: " + ev.Kind.String())
}

func (pr *Presenter) writeProps(p Properties) error {
	if pr.opts.SuppressAttrs {
		return nil
	}
	if p.Anchor != "" {
		if err := pr.writeStr("&" + p.Anchor + " "); err != nil {
			return err
		}
	}
	if p.Tag != "" && p.Tag != NonSpecificQuestionTag {
		tag := p.Tag
		if tag == NonSpecificBangTag {
			tag = "!"
		} else {
			tag = "!<" + tag + ">"
		}
		if err := pr.writeStr(tag + " "); err != nil {
			return err
		}
	}
	return nil
}

// collectionIsFlow decides whether a freshly opened collection renders in
// flow style. A synthetic pair mapping (§4.4 "flow implicit pairs") has no
// block form and stays flow regardless of Containers; every other
// collection follows Containers when it forces a style, and otherwise its
// own requested Style, except that Quoting "json" makes it flow.
func (pr *Presenter) collectionIsFlow(style CollectionStyle) bool {
	if style == PairCollectionStyle {
		return true
	}
	switch pr.opts.Containers {
	case "flow":
		return true
	case "block":
		return false
	}
	return style == FlowCollectionStyle || pr.opts.Quoting == "json"
}

// mixedFlowBudget is the "≤60" threshold from §4.5 "length estimation".
const mixedFlowBudget = 60

// bufferSubtree pulls every event belonging to an already-opened
// collection — everything up to, but not including, its matching End
// event — and returns it, having consumed that End event from src.
func (pr *Presenter) bufferSubtree(src EventSource) ([]Event, error) {
	var body []Event
	depth := 0
	for {
		var ev Event
		if err := pr.pull(src, &ev); err != nil {
			return nil, err
		}
		if depth == 0 && (ev.Kind == MapEndEvent || ev.Kind == SeqEndEvent) {
			return body, nil
		}
		switch ev.Kind {
		case MapStartEvent, SeqStartEvent:
			depth++
		case MapEndEvent, SeqEndEvent:
			depth--
		}
		body = append(body, ev)
	}
}

// estimateFlowLength implements §4.5's length estimation: 2+len(content)
// per scalar, 6 per alias, and disqualification (eligible=false) the
// moment any nested map or sequence appears anywhere in body.
func estimateFlowLength(body []Event) (total int, eligible bool) {
	eligible = true
	for _, ev := range body {
		switch ev.Kind {
		case ScalarEvent:
			total += 2 + len(ev.Content)
		case AliasEvent:
			total += 6
		case MapStartEvent, SeqStartEvent:
			eligible = false
		}
	}
	return total, eligible
}

// replaySource replays a buffered body followed by a synthetic End event,
// letting presentSeq/presentMap's ordinary pull loop run unmodified over
// content already read out of the real source during mixed-mode length
// estimation.
type replaySource struct {
	events []Event
	pos    int
	end    Event
	sent   bool
}

func (r *replaySource) Parse(ev *Event) error {
	if r.pos < len(r.events) {
		*ev = r.events[r.pos]
		r.pos++
		return nil
	}
	if !r.sent {
		r.sent = true
		*ev = r.end
		return nil
	}
	return newInternalError("replaySource exhausted")
}

// resolveContainerFlow decides block vs. flow for a freshly opened
// collection and returns the source presentSeq/presentMap should pull its
// body from. Outside "mixed" mode this is just src and collectionIsFlow's
// verdict; in "mixed" mode the body is buffered up front so its length can
// be estimated, and a replaySource stands in for src afterward.
func (pr *Presenter) resolveContainerFlow(src EventSource, start Event) (EventSource, bool, error) {
	if pr.opts.Containers != "mixed" {
		return src, pr.collectionIsFlow(start.Style), nil
	}
	body, err := pr.bufferSubtree(src)
	if err != nil {
		return nil, false, err
	}
	total, eligible := estimateFlowLength(body)
	flow := eligible && total <= mixedFlowBudget
	endKind := MapEndEvent
	if start.Kind == SeqStartEvent {
		endKind = SeqEndEvent
	}
	return &replaySource{events: body, end: Event{Kind: endKind}}, flow, nil
}

func (pr *Presenter) presentSeq(src EventSource, start Event, indent int, parentFlow bool) error {
	flow := parentFlow
	body := src
	if !parentFlow {
		var err error
		body, flow, err = pr.resolveContainerFlow(src, start)
		if err != nil {
			return err
		}
	}
	src = body
	if err := pr.writeProps(start.Props); err != nil {
		return err
	}

	if flow {
		if err := pr.writeStr("["); err != nil {
			return err
		}
		first := true
		for {
			var ev Event
			if err := pr.pull(src, &ev); err != nil {
				return err
			}
			if ev.Kind == SeqEndEvent {
				break
			}
			if !first {
				if err := pr.writeStr(pr.flowSep()); err != nil {
					return err
				}
			}
			first = false
			if err := pr.presentNode(src, ev, indent, true, false); err != nil {
				return err
			}
		}
		return pr.writeStr("]")
	}

	childIndent := indent + pr.opts.Indent
	first := true
	for {
		var ev Event
		if err := pr.pull(src, &ev); err != nil {
			return err
		}
		if ev.Kind == SeqEndEvent {
			if first {
				return pr.writeStr(" []")
			}
			return nil
		}
		if err := pr.writeStr(pr.opts.LineBreak); err != nil {
			return err
		}
		if err := pr.writeIndent(indent); err != nil {
			return err
		}
		if err := pr.writeStr("-"); err != nil {
			return err
		}
		if err := pr.writeStr(" "); err != nil {
			return err
		}
		if err := pr.presentNode(src, ev, childIndent, false, true); err != nil {
			return err
		}
		first = false
	}
}

func (pr *Presenter) presentMap(src EventSource, start Event, indent int, parentFlow bool) error {
	flow := parentFlow
	body := src
	if !parentFlow {
		var err error
		body, flow, err = pr.resolveContainerFlow(src, start)
		if err != nil {
			return err
		}
	}
	src = body
	if err := pr.writeProps(start.Props); err != nil {
		return err
	}

	if flow {
		if err := pr.writeStr("{"); err != nil {
			return err
		}
		first := true
		for {
			var key Event
			if err := pr.pull(src, &key); err != nil {
				return err
			}
			if key.Kind == MapEndEvent {
				break
			}
			if pr.opts.Quoting == "json" && key.Kind != ScalarEvent {
				return &PresenterJSONError{Message: "non-scalar map key has no JSON representation"}
			}
			if !first {
				if err := pr.writeStr(pr.flowSep()); err != nil {
					return err
				}
			}
			first = false
			if err := pr.presentNode(src, key, indent, true, false); err != nil {
				return err
			}
			if err := pr.writeStr(pr.flowColon()); err != nil {
				return err
			}
			var val Event
			if err := pr.pull(src, &val); err != nil {
				return err
			}
			if err := pr.presentNode(src, val, indent, true, false); err != nil {
				return err
			}
		}
		return pr.writeStr("}")
	}

	childIndent := indent + pr.opts.Indent
	first := true
	for {
		var key Event
		if err := pr.pull(src, &key); err != nil {
			return err
		}
		if key.Kind == MapEndEvent {
			if first {
				return pr.writeStr(" {}")
			}
			return nil
		}
		if err := pr.writeStr(pr.opts.LineBreak); err != nil {
			return err
		}
		if err := pr.writeIndent(indent); err != nil {
			return err
		}
		if pr.opts.Quoting == "json" && key.Kind != ScalarEvent {
			return &PresenterJSONError{Message: "non-scalar map key has no JSON representation"}
		}
		explicit := pr.opts.ExplicitKeys || key.Kind != ScalarEvent
		if explicit {
			if err := pr.writeStr("? "); err != nil {
				return err
			}
			if err := pr.presentNode(src, key, childIndent, false, true); err != nil {
				return err
			}
			if err := pr.writeStr(pr.opts.LineBreak); err != nil {
				return err
			}
			if err := pr.writeIndent(indent); err != nil {
				return err
			}
			if err := pr.writeStr(":"); err != nil {
				return err
			}
		} else {
			if err := pr.presentNode(src, key, indent, false, true); err != nil {
				return err
			}
			if err := pr.writeStr(":"); err != nil {
				return err
			}
		}

		var val Event
		if err := pr.pull(src, &val); err != nil {
			return err
		}
		if val.Kind == ScalarEvent && val.Content == "" && val.Props.IsEmpty() {
			first = false
			continue
		}
		if err := pr.writeStr(" "); err != nil {
			return err
		}
		if err := pr.presentNode(src, val, childIndent, false, true); err != nil {
			return err
		}
		first = false
	}
}

func (pr *Presenter) flowSep() string {
	if pr.opts.CondenseFlow {
		return ","
	}
	return ", "
}

func (pr *Presenter) flowColon() string {
	if pr.opts.CondenseFlow {
		return ":"
	}
	return ": "
}

// writeScalar renders a scalar value, selecting an actual style from the
// requested one and the content (§4.5 "scalar style selection").
func (pr *Presenter) writeScalar(ev Event, indent int) error {
	if pr.opts.Quoting == "json" && isNonFiniteFloat(ev.Content) {
		return &PresenterJSONError{Message: "non-finite float " + ev.Content + " has no JSON representation"}
	}
	style := pr.selectScalarStyle(ev, indent)
	switch style {
	case SingleQuotedScalarStyle:
		return pr.writeSingleQuoted(ev.Content)
	case DoubleQuotedScalarStyle:
		return pr.writeDoubleQuoted(ev.Content, indent)
	case LiteralScalarStyle:
		return pr.writeBlockScalar(ev.Content, indent, false)
	case FoldedScalarStyle:
		return pr.writeBlockScalar(ev.Content, indent, true)
	default:
		return pr.writeStr(ev.Content)
	}
}

// fitsWidth reports whether a single-line rendering of s, starting at
// column indent, respects the configured width (0 means "no limit").
func (pr *Presenter) fitsWidth(s string, indent int) bool {
	return pr.opts.Width <= 0 || indent+len(s) <= pr.opts.Width
}

// selectScalarStyle honors the requested style when it is safe for the
// content, and otherwise falls back the way the teacher's
// selectScalarStyle did: prefer plain, then single-quoted, then
// double-quoted as a last resort for content no simpler style can carry.
// When the requested style would overflow the configured width, it falls
// further through the §4.5 cascade (literal, then folded, then plain,
// then single-quoted, then double-quoted) before giving up.
func (pr *Presenter) selectScalarStyle(ev Event, indent int) ScalarStyle {
	if pr.opts.Quoting == "json" {
		return DoubleQuotedScalarStyle
	}
	if pr.opts.Quoting == "double" {
		return DoubleQuotedScalarStyle
	}

	requested := ev.ScalarStyle
	content := ev.Content
	width := pr.opts.Width
	childIndent := indent + pr.opts.Indent

	if requested == LiteralScalarStyle || requested == FoldedScalarStyle {
		if canBeBlockScalar(content) {
			if requested == LiteralScalarStyle && canUseLiteral(content, childIndent, width) {
				return LiteralScalarStyle
			}
			if requested == FoldedScalarStyle && canUseFolded(content, childIndent, width) {
				return FoldedScalarStyle
			}
		}
		requested = AnyScalarStyle
	}

	if requested == PlainScalarStyle || requested == AnyScalarStyle {
		if canBePlain(content) && pr.fitsWidth(content, indent) {
			return PlainScalarStyle
		}
	}
	if requested == SingleQuotedScalarStyle || requested == AnyScalarStyle || requested == PlainScalarStyle {
		if canBeSingleQuoted(content) && pr.fitsWidth(content, indent) {
			return SingleQuotedScalarStyle
		}
	}
	if requested == AnyScalarStyle || requested == PlainScalarStyle || requested == SingleQuotedScalarStyle {
		if canBeBlockScalar(content) && canUseLiteral(content, childIndent, width) {
			return LiteralScalarStyle
		}
		if canBeBlockScalar(content) && canUseFolded(content, childIndent, width) {
			return FoldedScalarStyle
		}
		if canBePlain(content) {
			return PlainScalarStyle
		}
		if canBeSingleQuoted(content) {
			return SingleQuotedScalarStyle
		}
	}
	return DoubleQuotedScalarStyle
}

// isNonFiniteFloat reports whether content is one of the core schema's
// infinity/NaN spellings (10.2.1.3), which JSON has no syntax for.
func isNonFiniteFloat(content string) bool {
	switch content {
	case ".inf", ".Inf", ".INF", "-.inf", "-.Inf", "-.INF", "+.inf", "+.Inf", "+.INF",
		".nan", ".NaN", ".NAN":
		return true
	}
	return false
}

func canBeBlockScalar(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < 0x20 && r != '\n' && r != '\t' {
			return false
		}
	}
	return true
}

// canUseLiteral reports whether every line of content fits within the
// configured width once its childIndent is accounted for (§4.5: "all
// lines fit within L−I"). width <= 0 means no limit.
func canUseLiteral(content string, childIndent, width int) bool {
	if width <= 0 {
		return true
	}
	for _, line := range strings.Split(strings.TrimRight(content, "\n"), "\n") {
		if childIndent+len(line) > width {
			return false
		}
	}
	return true
}

// canUseFolded reports whether content is eligible for folded style: no
// line may start with a blank (a leading space would be folded away and
// change meaning), and every word must fit within the configured width
// once wrapped (§4.5: "all words fit", "leading-space lines disable
// folded"). width <= 0 means no limit.
func canUseFolded(content string, childIndent, width int) bool {
	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	for _, line := range lines {
		if strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") {
			return false
		}
	}
	if width <= 0 {
		return true
	}
	for _, line := range lines {
		for _, word := range strings.Fields(line) {
			if childIndent+len(word) > width {
				return false
			}
		}
	}
	return true
}

// canBePlain reports whether s can be written without quoting: no
// leading/trailing blanks, no line breaks, none of the characters that
// begin an indicator in context, and not the lone "~". Other words such as
// "null" or "true" are accepted as plain.
func canBePlain(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == ' ' || s[len(s)-1] == ' ' {
		return false
	}
	switch s[0] {
	case '!', '&', '*', '-', '?', ':', ',', '[', ']', '{', '}', '#', '|', '>', '\'', '"', '%', '@', '`':
		return false
	}
	if s == "~" {
		return false
	}
	for i, r := range s {
		switch r {
		case '\n', '\t':
			return false
		case ':':
			if i+1 >= len(s) || s[i+1] == ' ' {
				return false
			}
		case '#':
			if i > 0 && s[i-1] == ' ' {
				return false
			}
		case ',', '[', ']', '{', '}':
			return false
		}
		if r < 0x20 {
			return false
		}
	}
	return true
}

func canBeSingleQuoted(s string) bool {
	for _, r := range s {
		if r < 0x20 && r != '\n' {
			return false
		}
	}
	return true
}

func (pr *Presenter) writeSingleQuoted(s string) error {
	var b strings.Builder
	b.WriteByte('\'')
	for _, r := range s {
		if r == '\'' {
			b.WriteString("''")
			continue
		}
		b.WriteRune(r)
	}
	b.WriteByte('\'')
	return pr.writeStr(b.String())
}

func escapeDoubleQuoted(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\x%02x`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

// writeDoubleQuoted writes s double-quoted, wrapping near the configured
// width the way the teacher's emitter tracked emitter.column against
// emitter.best_width: a line that would overflow breaks at the last
// preceding space, with a trailing backslash and a continuation line
// indented one step past indent. JSON output (§4.5 "no line wrapping")
// and width == 0 never wrap.
func (pr *Presenter) writeDoubleQuoted(s string, indent int) error {
	escaped := escapeDoubleQuoted(s)
	if err := pr.writeStr(`"`); err != nil {
		return err
	}
	if pr.opts.Quoting == "json" || pr.opts.Width <= 0 {
		if err := pr.writeStr(escaped); err != nil {
			return err
		}
		return pr.writeStr(`"`)
	}
	if err := pr.writeWrappedDoubleQuoted(escaped, indent); err != nil {
		return err
	}
	return pr.writeStr(`"`)
}

func (pr *Presenter) writeWrappedDoubleQuoted(escaped string, indent int) error {
	width := pr.opts.Width
	childIndent := indent + pr.opts.Indent
	words := strings.Split(escaped, " ")

	line := words[0]
	col := indent + 1 + len(line)
	for _, w := range words[1:] {
		if line != "" && col+1+len(w) > width-1 {
			if err := pr.writeStr(line); err != nil {
				return err
			}
			if err := pr.writeStr("\\"); err != nil {
				return err
			}
			if err := pr.writeStr(pr.opts.LineBreak); err != nil {
				return err
			}
			if err := pr.writeIndent(childIndent); err != nil {
				return err
			}
			line = w
			col = childIndent + len(w)
			continue
		}
		line += " " + w
		col += 1 + len(w)
	}
	return pr.writeStr(line)
}

// writeBlockScalar writes a literal or folded block scalar body at
// childIndent = indent + step, with a chomping indicator chosen from the
// content's trailing newlines.
func (pr *Presenter) writeBlockScalar(content string, indent int, folded bool) error {
	childIndent := indent + pr.opts.Indent
	trimmed := strings.TrimRight(content, "\n")
	trailingBreaks := len(content) - len(trimmed)

	var chomp byte
	switch {
	case trailingBreaks == 0:
		chomp = '-'
	case trailingBreaks >= 2:
		chomp = '+'
	default:
		chomp = 0
	}

	header := "|"
	if folded {
		header = ">"
	}
	if chomp != 0 {
		header += string(chomp)
	}
	if err := pr.writeStr(header); err != nil {
		return err
	}

	if trimmed == "" {
		return nil
	}
	if folded {
		return pr.writeFoldedBody(trimmed, childIndent)
	}
	for _, line := range strings.Split(trimmed, "\n") {
		if err := pr.writeStr(pr.opts.LineBreak); err != nil {
			return err
		}
		if line != "" {
			if err := pr.writeIndent(childIndent); err != nil {
				return err
			}
			if err := pr.writeStr(line); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeFoldedBody writes each "\n"-delimited paragraph of a folded
// scalar's content word-wrapped to the configured width, the paragraphs
// themselves separated by a blank line the way folding's "more indented
// or blank line" rule preserves a hard break. width == 0 writes each
// paragraph on a single line.
func (pr *Presenter) writeFoldedBody(trimmed string, childIndent int) error {
	width := pr.opts.Width
	for i, para := range strings.Split(trimmed, "\n") {
		if i > 0 {
			if err := pr.writeStr(pr.opts.LineBreak); err != nil {
				return err
			}
		}
		if err := pr.writeStr(pr.opts.LineBreak); err != nil {
			return err
		}
		if para == "" {
			continue
		}
		if width <= 0 {
			if err := pr.writeIndent(childIndent); err != nil {
				return err
			}
			if err := pr.writeStr(para); err != nil {
				return err
			}
			continue
		}
		words := strings.Fields(para)
		line := words[0]
		col := childIndent + len(line)
		for _, w := range words[1:] {
			if col+1+len(w) > width {
				if err := pr.writeIndent(childIndent); err != nil {
					return err
				}
				if err := pr.writeStr(line); err != nil {
					return err
				}
				if err := pr.writeStr(pr.opts.LineBreak); err != nil {
					return err
				}
				line = w
				col = childIndent + len(w)
				continue
			}
			line += " " + w
			col += 1 + len(w)
		}
		if err := pr.writeIndent(childIndent); err != nil {
			return err
		}
		if err := pr.writeStr(line); err != nil {
			return err
		}
	}
	return nil
}

