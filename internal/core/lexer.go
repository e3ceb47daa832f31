// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// The lexer: tokenizes a YAML character stream with context sensitivity
// (§4.1). It tracks indentation, block-scalar headers and the flow/block
// toggle, but — unlike the classic libyaml scanner — never itself decides
// where a block collection opens or closes; it only reports each line's
// leading-space count via an Indentation token and leaves indentation-stack
// bookkeeping to the parser (§4.4 "Indentation closure").

package core

import (
	"strings"
)

// Lexer produces a stream of tokens from a Source. It is single-threaded,
// cooperative and lazy: NextToken runs until exactly one token is ready.
type Lexer struct {
	src reader

	// flow is the flow-nesting depth; flow > 0 means the lexer is in flow
	// mode (§4.1 "Flow mode" is modeled here as a depth rather than a bare
	// boolean so nested flow collections restore the right mode on close,
	// but the parser only ever needs to know flow > 0).
	flow int

	// atLineStart is true exactly when the next call to NextToken must
	// first emit an INDENTATION_TOKEN before scanning content.
	atLineStart bool

	// afterStreamStart marks that the very first token has not yet been
	// produced.
	afterStreamStart bool
	streamEnded      bool

	lastIndent    int
	lastMultiline bool

	// A block scalar's header fields (chomping, indentation indicator) are
	// not stored here; scanBlockScalar keeps them as local state while it
	// scans the header and body in one call.
}

// NewLexer wraps src. The lexer takes exclusive ownership of src.
func NewLexer(src reader) *Lexer {
	return &Lexer{src: src, atLineStart: true, afterStreamStart: true}
}

// SetFlowMode toggles flow context. The parser calls this before reading
// the next token whenever it pushes or pops a flow collection (§4.1,
// design note: "a directed toggle, not two distinct lexer types").
func (lx *Lexer) SetFlowMode(depth int) { lx.flow = depth }

func (lx *Lexer) inFlow() bool { return lx.flow > 0 }

func (lx *Lexer) mark() Mark { return lx.src.pos() }

func (lx *Lexer) peek(n int) (rune, bool) { return lx.src.at(n) }

func (lx *Lexer) ch() (rune, bool) { return lx.src.at(0) }

func (lx *Lexer) advance() { lx.src.advance() }

func (lx *Lexer) advanceN(n int) {
	for i := 0; i < n; i++ {
		lx.src.advance()
	}
}

func isBlank(r rune, ok bool) bool { return ok && (r == ' ' || r == '\t') }
func isBreak(r rune, ok bool) bool { return ok && (r == '\n' || r == '\r') }
func isBlankOrBreakOrEOF(r rune, ok bool) bool { return !ok || isBlank(r, ok) || isBreak(r, ok) }

// lexError builds a *ParserError carrying the current line's text, per
// §4.1 "Failure".
func (lx *Lexer) lexError(m Mark, format string) error {
	return &ParserError{Mark: m, LineText: lx.currentLineText(), Message: format}
}

// currentLineText recovers the text of the line currently under the
// cursor, for error reporting; bounded to avoid runaway scans on
// pathological input.
func (lx *Lexer) currentLineText() string {
	var b strings.Builder
	for i := -lx.src.pos().Column; i < 4096; i++ {
		r, ok := lx.peek(i)
		if !ok || r == '\n' {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// skipBlanks consumes spaces and tabs (not line breaks).
func (lx *Lexer) skipBlanks() {
	for {
		r, ok := lx.ch()
		if !isBlank(r, ok) {
			return
		}
		lx.advance()
	}
}

// skipLineBreak consumes one line break (LF, CR or CRLF) as a single unit
// and reports whether one was consumed.
func (lx *Lexer) skipLineBreak() bool {
	r, ok := lx.ch()
	if !ok {
		return false
	}
	switch r {
	case '\n':
		lx.advance()
		return true
	case '\r':
		lx.advance()
		if r2, ok2 := lx.ch(); ok2 && r2 == '\n' {
			lx.advance()
		}
		return true
	}
	return false
}

// skipCommentIfAny consumes a '#' comment through end of line, if the
// cursor is at one (a comment starts at "<blank>#" or at the start of a
// line).
func (lx *Lexer) skipCommentIfAny(precededByBlankOrStart bool) {
	r, ok := lx.ch()
	if !ok || r != '#' || !precededByBlankOrStart {
		return
	}
	for {
		r, ok := lx.ch()
		if !ok || r == '\n' || r == '\r' {
			return
		}
		lx.advance()
	}
}

// skipToContent advances over blank/comment lines between
// tokens, honoring document indicators and EOF. It returns once positioned
// at either real content or a document/stream boundary. This is where
// INDENTATION tokens would be emitted one per line in block mode, but
// since only the final line's indentation matters to the parser, the
// caller (NextToken) emits just the one token for the line content begins
// on.
func (lx *Lexer) skipToContent() {
	for {
		atStart := lx.src.pos().Column == 0
		lx.skipBlanks()
		lx.skipCommentIfAny(true)
		if lx.skipLineBreak() {
			lx.atLineStart = !lx.inFlow()
			continue
		}
		_ = atStart
		return
	}
}

// NextToken scans and returns the next token.
func (lx *Lexer) NextToken() (Token, error) {
	if lx.afterStreamStart {
		lx.afterStreamStart = false
		m := lx.mark()
		return Token{Type: STREAM_START_TOKEN, StartMark: m, EndMark: m}, nil
	}

	lx.skipToContent()

	start := lx.mark()

	if lx.atLineStart && !lx.inFlow() {
		lx.atLineStart = false
		indent := lx.countIndent()
		lx.lastIndent = indent
		if indent < 0 {
			return Token{}, lx.lexError(start, "tab character found in indentation")
		}
		return Token{Type: INDENTATION_TOKEN, StartMark: start, EndMark: lx.mark(), Indent: indent}, nil
	}

	r, ok := lx.ch()
	if !ok {
		if err := lx.src.err(); err != nil {
			return Token{}, &ParserError{Mark: start, Message: "reading input: " + err.Error()}
		}
		lx.streamEnded = true
		return Token{Type: STREAM_END_TOKEN, StartMark: start, EndMark: start}, nil
	}

	// Document indicators are only recognized at column 0 in block mode.
	if !lx.inFlow() && lx.src.pos().Column == 0 {
		if r == '-' {
			if a, ok1 := lx.peek(1); ok1 && a == '-' {
				if b, ok2 := lx.peek(2); ok2 && b == '-' {
					if isBlankOrBreakOrEOF(lx.peekAt(3)) {
						lx.advanceN(3)
						return Token{Type: DIRECTIVES_END_TOKEN, StartMark: start, EndMark: lx.mark()}, nil
					}
				}
			}
		}
		if r == '.' {
			if a, ok1 := lx.peek(1); ok1 && a == '.' {
				if b, ok2 := lx.peek(2); ok2 && b == '.' {
					if isBlankOrBreakOrEOF(lx.peekAt(3)) {
						lx.advanceN(3)
						return Token{Type: DOCUMENT_END_TOKEN, StartMark: start, EndMark: lx.mark()}, nil
					}
				}
			}
		}
	}

	switch {
	case r == '%' && lx.src.pos().Column == 0:
		return lx.scanDirective(start)
	case r == '-' && lx.blockIndicatorFollowedByBlank():
		lx.advance()
		return Token{Type: SEQ_ITEM_IND_TOKEN, StartMark: start, EndMark: lx.mark()}, nil
	case r == '?' && (lx.inFlow() || lx.blockIndicatorFollowedByBlank()):
		lx.advance()
		return Token{Type: MAP_KEY_IND_TOKEN, StartMark: start, EndMark: lx.mark()}, nil
	case r == ':' && (lx.inFlow() || lx.blockIndicatorFollowedByBlank() || lx.afterFlowKeyColon()):
		lx.advance()
		return Token{Type: MAP_VALUE_IND_TOKEN, StartMark: start, EndMark: lx.mark()}, nil
	case r == '{':
		lx.advance()
		lx.flow++
		return Token{Type: FLOW_MAP_START_TOKEN, StartMark: start, EndMark: lx.mark()}, nil
	case r == '}':
		lx.advance()
		if lx.flow > 0 {
			lx.flow--
		}
		return Token{Type: FLOW_MAP_END_TOKEN, StartMark: start, EndMark: lx.mark()}, nil
	case r == '[':
		lx.advance()
		lx.flow++
		return Token{Type: FLOW_SEQ_START_TOKEN, StartMark: start, EndMark: lx.mark()}, nil
	case r == ']':
		lx.advance()
		if lx.flow > 0 {
			lx.flow--
		}
		return Token{Type: FLOW_SEQ_END_TOKEN, StartMark: start, EndMark: lx.mark()}, nil
	case r == ',' && lx.inFlow():
		lx.advance()
		return Token{Type: FLOW_ENTRY_TOKEN, StartMark: start, EndMark: lx.mark()}, nil
	case r == '&' || r == '*':
		return lx.scanAnchorOrAlias(start, r == '*')
	case r == '!':
		return lx.scanTag(start)
	case r == '\'':
		return lx.scanSingleQuoted(start)
	case r == '"':
		return lx.scanDoubleQuoted(start)
	case r == '|' || r == '>':
		return lx.scanBlockScalar(start, r == '>')
	default:
		return lx.scanPlainScalar(start)
	}
}

// peekAt wraps peek to discard the ok flag in boolean predicates cleanly.
func (lx *Lexer) peekAt(n int) (rune, bool) { return lx.peek(n) }

// blockIndicatorFollowedByBlank reports whether the character at the
// cursor (one of '-', '?', ':') forms a block-context structural indicator:
// it must be followed by a blank, a line break, or EOF.
func (lx *Lexer) blockIndicatorFollowedByBlank() bool {
	if lx.inFlow() {
		return false
	}
	r, ok := lx.peek(1)
	return !ok || r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// afterFlowKeyColon allows ':' to act as a map-value indicator in flow
// context even without trailing blank, mirroring YAML's allowance right
// before a flow closer or separator (e.g. "{a:1}" is non-conforming but
// "{a: 1}" / "{a:}" must work; common relaxations are handled by the
// caller's flow==true branch already, this covers ':' immediately
// followed by a flow terminator).
func (lx *Lexer) afterFlowKeyColon() bool {
	if !lx.inFlow() {
		return false
	}
	r, ok := lx.peek(1)
	return !ok || r == ',' || r == ']' || r == '}'
}

// countIndent consumes leading spaces on the current line and returns
// their count; tabs in indentation are a lexer error (§7, §9).
func (lx *Lexer) countIndent() int {
	n := 0
	for {
		r, ok := lx.ch()
		if ok && r == ' ' {
			lx.advance()
			n++
			continue
		}
		if ok && r == '\t' {
			return -1
		}
		return n
	}
}

// PeekMapValueFollows reports whether, from the current cursor (expected
// to sit right after a scalar/alias/flow-close token), a ':' immediately
// followed by whitespace/EOF/linebreak appears — the same-line implicit
// key trigger from §4.1's "implicit-key lookahead". It does not consume.
func (lx *Lexer) PeekMapValueFollows() bool {
	r, ok := lx.ch()
	if !ok || r != ':' {
		return false
	}
	n, ok2 := lx.peek(1)
	return !ok2 || n == ' ' || n == '\t' || n == '\n' || n == '\r' || (lx.inFlow() && (n == ',' || n == ']' || n == '}'))
}

// AtLineStart reports whether the lexer is positioned to emit an
// indentation token next.
func (lx *Lexer) AtLineStart() bool { return lx.atLineStart && !lx.inFlow() }
