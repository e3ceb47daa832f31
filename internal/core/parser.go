// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// The pushdown parser: turns a token stream into an event stream (§4.4).
//
// Unlike the lexer, which is a straightforward imperative scanner, parsing
// YAML's block/flow grammar genuinely needs a stack of open collections.
// Rather than expose that stack across individual Parse calls (which would
// mean threading continuation state through the public API), the parser
// walks the whole token stream with ordinary recursive descent on the
// first call to Parse and buffers the resulting events; Parse itself just
// drains the buffer one event at a time. Every document of the stream is
// parsed on that first call: no event is returned before the whole input
// has been scanned (or an error has stopped the scan), and the events of
// the entire stream are held in memory at once.
package core

import "fmt"

// tokenCursor gives the parser one token of lookahead over a Lexer.
type tokenCursor struct {
	lx   *Lexer
	cur  Token
	have bool
}

func (tc *tokenCursor) peek() (Token, error) {
	if !tc.have {
		t, err := tc.lx.NextToken()
		if err != nil {
			return Token{}, err
		}
		tc.cur = t
		tc.have = true
	}
	return tc.cur, nil
}

func (tc *tokenCursor) next() (Token, error) {
	t, err := tc.peek()
	tc.have = false
	return t, err
}

// Parser pulls Events from a token stream produced by a Lexer.
type Parser struct {
	lx   *Lexer
	tc   *tokenCursor
	tags *TagRegistry

	flowDepth int

	events   []Event
	pos      int
	built    bool
	buildErr error

	warn func(string)
}

// NewParser builds a Parser reading tokens from lx.
func NewParser(lx *Lexer) *Parser {
	return &Parser{lx: lx, tc: &tokenCursor{lx: lx}, tags: newTagRegistry()}
}

// SetWarnFunc installs a callback for non-fatal parse warnings (currently
// just a %YAML directive naming a version other than 1.2, §7/§9). A nil
// callback, the default, silently drops warnings.
func (p *Parser) SetWarnFunc(fn func(string)) { p.warn = fn }

// Parse writes the next event into *ev, per the spec's pull contract:
// call it repeatedly until it returns a non-nil error or an event whose
// Kind is StreamEndEvent.
func (p *Parser) Parse(ev *Event) error {
	if !p.built {
		p.built = true
		if err := p.build(); err != nil {
			p.buildErr = err
		}
	}
	if p.pos < len(p.events) {
		*ev = p.events[p.pos]
		p.pos++
		return nil
	}
	return p.buildErr
}

func (p *Parser) peekReal() (Token, error) {
	for {
		tok, err := p.tc.peek()
		if err != nil {
			return Token{}, err
		}
		if tok.Type == INDENTATION_TOKEN {
			if _, err := p.tc.next(); err != nil {
				return Token{}, err
			}
			continue
		}
		return tok, nil
	}
}

func (p *Parser) enterFlow() {
	p.flowDepth++
	p.lx.SetFlowMode(p.flowDepth)
}

func (p *Parser) exitFlow() {
	if p.flowDepth > 0 {
		p.flowDepth--
	}
	p.lx.SetFlowMode(p.flowDepth)
}

// build walks the entire token stream and appends every event to
// p.events, stopping at the first error.
func (p *Parser) build() error {
	tok, err := p.tc.next()
	if err != nil {
		return err
	}
	if tok.Type != STREAM_START_TOKEN {
		return newInternalError("token stream did not begin with STREAM_START_TOKEN")
	}
	p.events = append(p.events, Event{Kind: StreamStartEvent, StartPos: tok.StartMark, EndPos: tok.EndMark})

	for {
		tok, err := p.peekReal()
		if err != nil {
			return err
		}
		if tok.Type == STREAM_END_TOKEN {
			p.tc.next()
			p.events = append(p.events, Event{Kind: StreamEndEvent, StartPos: tok.StartMark, EndPos: tok.EndMark})
			return nil
		}
		if err := p.parseDocument(); err != nil {
			return err
		}
	}
}

func (p *Parser) parseDocument() error {
	p.tags.reset()
	version := ""

directives:
	for {
		tok, err := p.peekReal()
		if err != nil {
			return err
		}
		switch tok.Type {
		case YAML_DIRECTIVE_TOKEN:
			p.tc.next()
			if version != "" {
				return &ParserError{Mark: tok.StartMark, Message: "found duplicate %YAML directive"}
			}
			version = fmt.Sprintf("%d.%d", tok.VersionMajor, tok.VersionMinor)
			if version != "1.2" && p.warn != nil {
				p.warn(fmt.Sprintf("%s: unsupported YAML version %s, expected 1.2", tok.StartMark, version))
			}
		case TAG_DIRECTIVE_TOKEN:
			p.tc.next()
			if err := p.tags.declare(string(tok.Handle), string(tok.Suffix)); err != nil {
				return err
			}
		case UNKNOWN_DIRECTIVE_TOKEN:
			p.tc.next()
		default:
			break directives
		}
	}

	tok, err := p.peekReal()
	if err != nil {
		return err
	}
	explicitStart := false
	if tok.Type == DIRECTIVES_END_TOKEN {
		p.tc.next()
		explicitStart = true
	} else if version != "" || len(p.tags.order) > 0 {
		return &ParserError{Mark: tok.StartMark, Message: "a document with directives must be followed by '---'"}
	}

	p.events = append(p.events, Event{
		Kind:                  DocStartEvent,
		ExplicitDirectivesEnd: explicitStart,
		Version:               version,
		Handles:               p.tags.directives(),
	})

	tok, err = p.peekReal()
	if err != nil {
		return err
	}
	if tok.Type == STREAM_END_TOKEN || tok.Type == DOCUMENT_END_TOKEN || tok.Type == DIRECTIVES_END_TOKEN {
		p.events = append(p.events, Event{Kind: ScalarEvent, ScalarStyle: PlainScalarStyle})
	} else {
		nodeEvents, err := p.parseNode(0, false)
		if err != nil {
			return err
		}
		p.events = append(p.events, nodeEvents...)
	}

	tok, err = p.peekReal()
	if err != nil {
		return err
	}
	explicitEnd := false
	switch tok.Type {
	case DOCUMENT_END_TOKEN:
		p.tc.next()
		explicitEnd = true
	case STREAM_END_TOKEN, DIRECTIVES_END_TOKEN:
	default:
		// A document holds exactly one node (§3); anything else left at
		// column 0 here is either a block item under-indented relative to
		// every open container it could belong to, or genuinely unexpected
		// content following the root node.
		return &ParserError{Mark: tok.StartMark, Message: "unexpected content after document root: found " + tok.Type.String()}
	}
	p.events = append(p.events, Event{Kind: DocEndEvent, ExplicitDocEnd: explicitEnd})
	return nil
}

func (p *Parser) scanProperties() (Properties, error) {
	var props Properties
	for {
		tok, err := p.peekReal()
		if err != nil {
			return props, err
		}
		switch tok.Type {
		case ANCHOR_TOKEN:
			p.tc.next()
			props.Anchor = string(tok.Value)
		case TAG_SUFFIX_TOKEN:
			p.tc.next()
			resolved, err := p.tags.resolve(string(tok.Handle), string(tok.Suffix))
			if err != nil {
				return props, &ParserError{Mark: tok.StartMark, Message: err.Error()}
			}
			props.Tag = resolved
		case VERBATIM_TAG_TOKEN:
			p.tc.next()
			props.Tag = string(tok.Value)
		default:
			return props, nil
		}
	}
}

func isBlockTerminator(tt TokenType) bool {
	switch tt {
	case STREAM_END_TOKEN, DOCUMENT_END_TOKEN, DIRECTIVES_END_TOKEN,
		FLOW_SEQ_END_TOKEN, FLOW_MAP_END_TOKEN, FLOW_ENTRY_TOKEN:
		return true
	}
	return false
}

func scalarStyleFor(tt TokenType) ScalarStyle {
	switch tt {
	case SINGLE_QUOTED_TOKEN:
		return SingleQuotedScalarStyle
	case DOUBLE_QUOTED_TOKEN:
		return DoubleQuotedScalarStyle
	case LITERAL_SCALAR_TOKEN:
		return LiteralScalarStyle
	case FOLDED_SCALAR_TOKEN:
		return FoldedScalarStyle
	default:
		return PlainScalarStyle
	}
}

// parseNode parses exactly one complete node, starting at the current
// token: a scalar, an alias, a flow collection, or — only when !flow — a
// block sequence or block mapping rooted at the current column. minIndent
// is the least column a block construct may start at (the "indentation
// closure" rule, §4.4); a token found less indented than minIndent means
// the position holds no node at all (an implicit empty scalar).
func (p *Parser) parseNode(minIndent int, flow bool) ([]Event, error) {
	props, err := p.scanProperties()
	if err != nil {
		return nil, err
	}
	tok, err := p.peekReal()
	if err != nil {
		return nil, err
	}
	col := tok.StartMark.Column

	if !flow && (col < minIndent || isBlockTerminator(tok.Type)) {
		return []Event{{Kind: ScalarEvent, Props: props, ScalarStyle: PlainScalarStyle}}, nil
	}

	switch tok.Type {
	case SEQ_ITEM_IND_TOKEN:
		if flow {
			return nil, &ParserError{Mark: tok.StartMark, Message: "block sequence entry not allowed in flow context"}
		}
		return p.parseBlockSeq(props, col)

	case MAP_KEY_IND_TOKEN:
		if flow {
			return nil, &ParserError{Mark: tok.StartMark, Message: "explicit mapping key not allowed in flow context"}
		}
		p.tc.next()
		keyEvents, err := p.parseNode(col+1, false)
		if err != nil {
			return nil, err
		}
		valEvents, err := p.parseOptionalBlockValue(col)
		if err != nil {
			return nil, err
		}
		return p.wrapBlockMap(props, col, append(keyEvents, valEvents...))

	case MAP_VALUE_IND_TOKEN:
		if flow {
			return nil, &ParserError{Mark: tok.StartMark, Message: "bare mapping value not allowed in flow context"}
		}
		valEvents, err := p.parseOptionalBlockValue(col)
		if err != nil {
			return nil, err
		}
		keyEvents := []Event{{Kind: ScalarEvent, ScalarStyle: PlainScalarStyle}}
		return p.wrapBlockMap(props, col, append(keyEvents, valEvents...))

	default:
		keyMultiline := tok.Type.isScalar() && tok.Multiline
		simple, err := p.parseSimpleNode(props, flow)
		if err != nil {
			return nil, err
		}
		if flow {
			return simple, nil
		}
		tok2, err := p.peekReal()
		if err != nil {
			return nil, err
		}
		if tok2.Type == MAP_VALUE_IND_TOKEN && (keyMultiline || tok2.StartMark.Line == tok.StartMark.Line) {
			if keyMultiline {
				return nil, &ParserError{Mark: tok.StartMark, Message: "implicit mapping key must be on a single line"}
			}
			valEvents, err := p.parseOptionalBlockValue(col)
			if err != nil {
				return nil, err
			}
			return p.wrapBlockMap(Properties{}, col, append(simple, valEvents...))
		}
		return simple, nil
	}
}

// parseSimpleNode parses a node that can never itself open a block
// collection: a scalar, an alias, or a flow collection. Block mapping
// keys and flow collection members are both restricted to this shape.
func (p *Parser) parseSimpleNode(props Properties, flow bool) ([]Event, error) {
	tok, err := p.peekReal()
	if err != nil {
		return nil, err
	}
	switch {
	case tok.Type == ALIAS_TOKEN:
		p.tc.next()
		return []Event{{Kind: AliasEvent, StartPos: tok.StartMark, EndPos: tok.EndMark, Target: string(tok.Value)}}, nil
	case tok.Type.isScalar():
		p.tc.next()
		return []Event{{
			Kind: ScalarEvent, StartPos: tok.StartMark, EndPos: tok.EndMark,
			Props: props, ScalarStyle: scalarStyleFor(tok.Type), Content: string(tok.Evaluated),
		}}, nil
	case tok.Type == FLOW_SEQ_START_TOKEN:
		events, err := p.parseFlowSeq()
		if err != nil {
			return nil, err
		}
		events[0].Props = props
		return events, nil
	case tok.Type == FLOW_MAP_START_TOKEN:
		events, err := p.parseFlowMap()
		if err != nil {
			return nil, err
		}
		events[0].Props = props
		return events, nil
	}
	return nil, &ParserError{Mark: tok.StartMark, Message: "expected a node, found " + tok.Type.String()}
}

// parseBlockSeq parses a block sequence whose "-" indicators sit at
// column indent; props is attached to the resulting SeqStartEvent.
func (p *Parser) parseBlockSeq(props Properties, indent int) ([]Event, error) {
	out := []Event{{Kind: SeqStartEvent, Props: props, Style: BlockCollectionStyle}}
	for {
		tok, err := p.peekReal()
		if err != nil {
			return nil, err
		}
		if tok.StartMark.Column != indent || tok.Type != SEQ_ITEM_IND_TOKEN {
			break
		}
		p.tc.next()
		itemEvents, err := p.parseNode(indent+1, false)
		if err != nil {
			return nil, err
		}
		out = append(out, itemEvents...)
	}
	out = append(out, Event{Kind: SeqEndEvent})
	return out, nil
}

// wrapBlockMap builds the MapStartEvent/MapEndEvent pair around firstPair
// and any further pairs found at the same column, props attached to the
// MapStartEvent.
func (p *Parser) wrapBlockMap(props Properties, indent int, firstPair []Event) ([]Event, error) {
	out := []Event{{Kind: MapStartEvent, Props: props, Style: BlockCollectionStyle}}
	out = append(out, firstPair...)
	for {
		pair, ok, err := p.parseBlockMapPair(indent)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		out = append(out, pair...)
	}
	out = append(out, Event{Kind: MapEndEvent})
	return out, nil
}

// parseBlockMapPair parses one more key/value pair at column indent, or
// reports ok==false if the current position does not hold one (end of
// this mapping).
func (p *Parser) parseBlockMapPair(indent int) (events []Event, ok bool, err error) {
	tok, err := p.peekReal()
	if err != nil {
		return nil, false, err
	}
	if tok.StartMark.Column != indent {
		return nil, false, nil
	}

	switch tok.Type {
	case MAP_KEY_IND_TOKEN:
		p.tc.next()
		keyEvents, err := p.parseNode(indent+1, false)
		if err != nil {
			return nil, false, err
		}
		valEvents, err := p.parseOptionalBlockValue(indent)
		if err != nil {
			return nil, false, err
		}
		return append(keyEvents, valEvents...), true, nil

	case MAP_VALUE_IND_TOKEN:
		valEvents, err := p.parseOptionalBlockValue(indent)
		if err != nil {
			return nil, false, err
		}
		keyEvents := []Event{{Kind: ScalarEvent, ScalarStyle: PlainScalarStyle}}
		return append(keyEvents, valEvents...), true, nil

	case SEQ_ITEM_IND_TOKEN, STREAM_END_TOKEN, DOCUMENT_END_TOKEN, DIRECTIVES_END_TOKEN:
		return nil, false, nil

	default:
		props, err := p.scanProperties()
		if err != nil {
			return nil, false, err
		}
		keyTok, err := p.peekReal()
		if err != nil {
			return nil, false, err
		}
		keyMultiline := keyTok.Type.isScalar() && keyTok.Multiline
		keyEvents, err := p.parseSimpleNode(props, false)
		if err != nil {
			return nil, false, err
		}
		tok2, err := p.peekReal()
		if err != nil {
			return nil, false, err
		}
		if tok2.Type != MAP_VALUE_IND_TOKEN {
			return nil, false, &ParserError{Mark: tok2.StartMark, Message: "expected ':' in block mapping"}
		}
		if keyMultiline {
			return nil, false, &ParserError{Mark: keyTok.StartMark, Message: "implicit mapping key must be on a single line"}
		}
		valEvents, err := p.parseOptionalBlockValue(indent)
		if err != nil {
			return nil, false, err
		}
		return append(keyEvents, valEvents...), true, nil
	}
}

// parseOptionalBlockValue consumes a ':' and its value if present,
// otherwise reports an empty (null) value for a key with none. A block
// sequence value is allowed to start at the same column as its key (§4.4
// "Block sequence under a map": "a '-' indicator at the exact indentation
// of its enclosing map key is permitted as a compact sequence child"),
// so that case is special-cased to a minIndent of indent rather than the
// usual indent+1.
func (p *Parser) parseOptionalBlockValue(indent int) ([]Event, error) {
	tok, err := p.peekReal()
	if err != nil {
		return nil, err
	}
	if tok.Type == MAP_VALUE_IND_TOKEN {
		p.tc.next()
		valTok, err := p.peekReal()
		if err != nil {
			return nil, err
		}
		if valTok.Type == SEQ_ITEM_IND_TOKEN && valTok.StartMark.Column == indent {
			return p.parseNode(indent, false)
		}
		return p.parseNode(indent+1, false)
	}
	return []Event{{Kind: ScalarEvent, ScalarStyle: PlainScalarStyle}}, nil
}

// parseFlowSeq parses "[ ... ]"; the opening bracket is the current token.
func (p *Parser) parseFlowSeq() ([]Event, error) {
	p.tc.next()
	p.enterFlow()
	defer p.exitFlow()

	out := []Event{{Kind: SeqStartEvent, Style: FlowCollectionStyle}}
	tok, err := p.peekReal()
	if err != nil {
		return nil, err
	}
	if tok.Type == FLOW_SEQ_END_TOKEN {
		p.tc.next()
		out = append(out, Event{Kind: SeqEndEvent})
		return out, nil
	}
	for {
		entry, err := p.parseFlowSeqEntry()
		if err != nil {
			return nil, err
		}
		out = append(out, entry...)

		tok, err := p.peekReal()
		if err != nil {
			return nil, err
		}
		switch tok.Type {
		case FLOW_ENTRY_TOKEN:
			p.tc.next()
			if t2, err := p.peekReal(); err == nil && t2.Type == FLOW_SEQ_END_TOKEN {
				p.tc.next()
				out = append(out, Event{Kind: SeqEndEvent})
				return out, nil
			}
			continue
		case FLOW_SEQ_END_TOKEN:
			p.tc.next()
			out = append(out, Event{Kind: SeqEndEvent})
			return out, nil
		default:
			return nil, &ParserError{Mark: tok.StartMark, Message: "expected ',' or ']' in flow sequence"}
		}
	}
}

// parseFlowSeqEntry parses one member of a flow sequence, applying the
// "implicit pair" sugar: an entry of the form "key: value" inside a flow
// sequence becomes a single-pair mapping (§4.4 "flow implicit pairs").
func (p *Parser) parseFlowSeqEntry() ([]Event, error) {
	tok, err := p.peekReal()
	if err != nil {
		return nil, err
	}
	if tok.Type == MAP_KEY_IND_TOKEN {
		p.tc.next()
		keyEvents, err := p.parseNode(0, true)
		if err != nil {
			return nil, err
		}
		valEvents, err := p.parseOptionalFlowValue()
		if err != nil {
			return nil, err
		}
		return wrapPair(keyEvents, valEvents), nil
	}

	node, err := p.parseNode(0, true)
	if err != nil {
		return nil, err
	}
	tok2, err := p.peekReal()
	if err != nil {
		return nil, err
	}
	if tok2.Type == MAP_VALUE_IND_TOKEN {
		p.tc.next()
		valEvents, err := p.parseOptionalFlowValue()
		if err != nil {
			return nil, err
		}
		return wrapPair(node, valEvents), nil
	}
	return node, nil
}

func wrapPair(keyEvents, valEvents []Event) []Event {
	out := []Event{{Kind: MapStartEvent, Style: PairCollectionStyle}}
	out = append(out, keyEvents...)
	out = append(out, valEvents...)
	out = append(out, Event{Kind: MapEndEvent})
	return out
}

func (p *Parser) parseOptionalFlowValue() ([]Event, error) {
	tok, err := p.peekReal()
	if err != nil {
		return nil, err
	}
	switch tok.Type {
	case FLOW_ENTRY_TOKEN, FLOW_SEQ_END_TOKEN, FLOW_MAP_END_TOKEN:
		return []Event{{Kind: ScalarEvent, ScalarStyle: PlainScalarStyle}}, nil
	}
	return p.parseNode(0, true)
}

// parseFlowMap parses "{ ... }"; the opening brace is the current token.
func (p *Parser) parseFlowMap() ([]Event, error) {
	p.tc.next()
	p.enterFlow()
	defer p.exitFlow()

	out := []Event{{Kind: MapStartEvent, Style: FlowCollectionStyle}}
	tok, err := p.peekReal()
	if err != nil {
		return nil, err
	}
	if tok.Type == FLOW_MAP_END_TOKEN {
		p.tc.next()
		out = append(out, Event{Kind: MapEndEvent})
		return out, nil
	}
	for {
		entry, err := p.parseFlowMapEntry()
		if err != nil {
			return nil, err
		}
		out = append(out, entry...)

		tok, err := p.peekReal()
		if err != nil {
			return nil, err
		}
		switch tok.Type {
		case FLOW_ENTRY_TOKEN:
			p.tc.next()
			if t2, err := p.peekReal(); err == nil && t2.Type == FLOW_MAP_END_TOKEN {
				p.tc.next()
				out = append(out, Event{Kind: MapEndEvent})
				return out, nil
			}
			continue
		case FLOW_MAP_END_TOKEN:
			p.tc.next()
			out = append(out, Event{Kind: MapEndEvent})
			return out, nil
		default:
			return nil, &ParserError{Mark: tok.StartMark, Message: "expected ',' or '}' in flow mapping"}
		}
	}
}

func (p *Parser) parseFlowMapEntry() ([]Event, error) {
	tok, err := p.peekReal()
	if err != nil {
		return nil, err
	}
	if tok.Type == MAP_KEY_IND_TOKEN {
		p.tc.next()
		keyEvents, err := p.parseNode(0, true)
		if err != nil {
			return nil, err
		}
		valEvents, err := p.parseOptionalFlowValue()
		if err != nil {
			return nil, err
		}
		return append(keyEvents, valEvents...), nil
	}

	keyEvents, err := p.parseNode(0, true)
	if err != nil {
		return nil, err
	}
	tok2, err := p.peekReal()
	if err != nil {
		return nil, err
	}
	if tok2.Type == MAP_VALUE_IND_TOKEN {
		p.tc.next()
		valEvents, err := p.parseOptionalFlowValue()
		if err != nil {
			return nil, err
		}
		return append(keyEvents, valEvents...), nil
	}
	valEvents := []Event{{Kind: ScalarEvent, ScalarStyle: PlainScalarStyle}}
	return append(keyEvents, valEvents...), nil
}
