// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Scalar, directive, anchor/alias and tag scanning (§4.1). Split from
// lexer.go to keep each file to one concern: dispatch there, lexeme
// grammar here.

package core

import (
	"strconv"
	"strings"
)

func isDigit(r rune) bool  { return r >= '0' && r <= '9' }
func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
func isAlphaNumDash(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_' || r == '-'
}

// isAnchorChar matches characters permitted in an anchor or alias name:
// any non-space, non-break character that is not a flow indicator (':'
// is allowed).
func isAnchorChar(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', ',', '[', ']', '{', '}':
		return false
	}
	return r > 0x20
}

func isTagURIChar(r rune) bool {
	if isAlphaNumDash(r) {
		return true
	}
	switch r {
	case ';', '/', '?', ':', '@', '&', '=', '+', '$', ',', '_', '.', '!', '~', '*', '\'', '(', ')', '[', ']', '%':
		return true
	}
	return false
}

// scanDirective scans a "%YAML ..." / "%TAG ..." / unknown directive line.
func (lx *Lexer) scanDirective(start Mark) (Token, error) {
	lx.advance() // '%'
	var name strings.Builder
	for {
		r, ok := lx.ch()
		if !ok || r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			break
		}
		name.WriteRune(r)
		lx.advance()
	}
	lx.skipBlanks()

	switch name.String() {
	case "YAML":
		major, minor, err := lx.scanVersionParam(start)
		if err != nil {
			return Token{}, err
		}
		lx.skipToEndOfDirectiveLine()
		return Token{Type: YAML_DIRECTIVE_TOKEN, StartMark: start, EndMark: lx.mark(), VersionMajor: major, VersionMinor: minor}, nil
	case "TAG":
		handle, err := lx.scanTagHandleToken(start)
		if err != nil {
			return Token{}, err
		}
		lx.skipBlanks()
		var prefix strings.Builder
		for {
			r, ok := lx.ch()
			if !ok || r == ' ' || r == '\t' || r == '\n' || r == '\r' {
				break
			}
			prefix.WriteRune(r)
			lx.advance()
		}
		if prefix.Len() == 0 {
			return Token{}, lx.lexError(start, "missing tag prefix in %TAG directive")
		}
		lx.skipToEndOfDirectiveLine()
		return Token{Type: TAG_DIRECTIVE_TOKEN, StartMark: start, EndMark: lx.mark(), Handle: []byte(handle), Suffix: []byte(prefix.String())}, nil
	default:
		lx.skipToEndOfDirectiveLine()
		return Token{Type: UNKNOWN_DIRECTIVE_TOKEN, StartMark: start, EndMark: lx.mark(), Value: []byte(name.String())}, nil
	}
}

func (lx *Lexer) scanVersionParam(start Mark) (int, int, error) {
	var num strings.Builder
	for {
		r, ok := lx.ch()
		if !ok || r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			break
		}
		num.WriteRune(r)
		lx.advance()
	}
	parts := strings.SplitN(num.String(), ".", 2)
	if len(parts) != 2 {
		return 0, 0, lx.lexError(start, "malformed %YAML version")
	}
	major, err1 := strconv.Atoi(parts[0])
	minor, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return 0, 0, lx.lexError(start, "malformed %YAML version")
	}
	return major, minor, nil
}

// scanTagHandleToken scans a handle of the form "!", "!!" or "!name!".
func (lx *Lexer) scanTagHandleToken(start Mark) (string, error) {
	r, ok := lx.ch()
	if !ok || r != '!' {
		return "", lx.lexError(start, "expected tag handle")
	}
	var b strings.Builder
	b.WriteByte('!')
	lx.advance()
	for {
		r, ok := lx.ch()
		if !ok || !isAlphaNumDash(r) {
			break
		}
		b.WriteRune(r)
		lx.advance()
	}
	if r, ok := lx.ch(); ok && r == '!' {
		b.WriteByte('!')
		lx.advance()
	}
	return b.String(), nil
}

func (lx *Lexer) skipToEndOfDirectiveLine() {
	lx.skipBlanks()
	lx.skipCommentIfAny(true)
}

// scanAnchorOrAlias scans "&name" or "*name".
func (lx *Lexer) scanAnchorOrAlias(start Mark, alias bool) (Token, error) {
	lx.advance()
	var b strings.Builder
	for {
		r, ok := lx.ch()
		if !ok || !isAnchorChar(r) {
			break
		}
		b.WriteRune(r)
		lx.advance()
	}
	if b.Len() == 0 {
		kind := "anchor"
		if alias {
			kind = "alias"
		}
		return Token{}, lx.lexError(start, "empty "+kind+" name")
	}
	tt := ANCHOR_TOKEN
	if alias {
		tt = ALIAS_TOKEN
	}
	return Token{Type: tt, StartMark: start, EndMark: lx.mark(), Value: []byte(b.String())}, nil
}

// scanTag scans a node tag: "!", "!!", "!handle!suffix", "!suffix" (primary
// handle), or "!<verbatim-uri>".
func (lx *Lexer) scanTag(start Mark) (Token, error) {
	lx.advance() // '!'

	if r, ok := lx.ch(); ok && r == '<' {
		lx.advance()
		var b strings.Builder
		for {
			r, ok := lx.ch()
			if !ok || r == '>' {
				break
			}
			if !isTagURIChar(r) {
				return Token{}, lx.lexError(start, "invalid character in verbatim tag")
			}
			b.WriteRune(r)
			lx.advance()
		}
		if r, ok := lx.ch(); !ok || r != '>' {
			return Token{}, lx.lexError(start, "unterminated verbatim tag")
		}
		lx.advance()
		return Token{Type: VERBATIM_TAG_TOKEN, StartMark: start, EndMark: lx.mark(), Value: b.Bytes()}, nil
	}

	// Try to scan "!name!" as a named handle; fall back to primary "!".
	handle := "!"
	var rest strings.Builder
	var nameRun strings.Builder
	sawSecondBang := false
	for {
		r, ok := lx.ch()
		if !ok || !isAlphaNumDash(r) {
			break
		}
		nameRun.WriteRune(r)
		lx.advance()
	}
	if r, ok := lx.ch(); ok && r == '!' {
		handle = "!" + nameRun.String() + "!"
		lx.advance()
		sawSecondBang = true
	} else {
		// Not a named handle: this was actually the start of the suffix
		// for the primary "!" handle (or "!!" secondary handle below).
		rest.WriteString(nameRun.String())
	}

	if !sawSecondBang && nameRun.Len() == 0 {
		if r, ok := lx.ch(); ok && r == '!' {
			handle = "!!"
			lx.advance()
		}
	}

	for {
		r, ok := lx.ch()
		if !ok || !isTagURIChar(r) {
			break
		}
		rest.WriteRune(r)
		lx.advance()
	}

	return Token{Type: TAG_SUFFIX_TOKEN, StartMark: start, EndMark: lx.mark(), Handle: []byte(handle), Suffix: []byte(rest.String())}, nil
}

// scanPlainScalar scans an unquoted scalar. It stops at: a line break
// followed by a line whose content starts left of the scalar's first
// character, ": " (map
// value indicator), " #" (comment), or (in flow context) any of
// ",[]{}" (§4.1, §9 "plain scalars").
func (lx *Lexer) scanPlainScalar(start Mark) (Token, error) {
	var b strings.Builder
	multiline := false
	firstLineIndent := lx.src.pos().Column

	for {
		r, ok := lx.ch()
		if !ok {
			break
		}
		if r == '\n' || r == '\r' {
			// Lookahead: does a continuation line follow with enough
			// indentation and non-empty content?
			nlCount := 0
			for lx.skipLineBreak() {
				nlCount++
				lx.skipBlanks()
				r2, ok2 := lx.ch()
				if ok2 && (r2 == '\n' || r2 == '\r') {
					continue
				}
				break
			}
			r2, ok2 := lx.ch()
			col := lx.src.pos().Column
			if !ok2 || col < firstLineIndent {
				break
			}
			if isPlainScalarStop(r2, lx.inFlow()) {
				break
			}
			multiline = true
			if nlCount > 1 {
				b.WriteByte('\n')
			} else {
				b.WriteByte(' ')
			}
			continue
		}
		if r == ' ' || r == '\t' {
			// Trailing blanks before a break or comment are not part of
			// the scalar; peek to decide.
			n := 1
			for {
				r2, ok2 := lx.peek(n)
				if ok2 && (r2 == ' ' || r2 == '\t') {
					n++
					continue
				}
				break
			}
			r2, ok2 := lx.peek(n)
			if r2 == '#' {
				lx.advanceN(n)
				break
			}
			if !ok2 || r2 == '\n' || r2 == '\r' {
				lx.advanceN(n)
				continue
			}
			if r2 == ':' && lx.peekColonFollowedByBlank(n) {
				lx.advanceN(n)
				break
			}
			if lx.inFlow() && (r2 == ',' || r2 == '[' || r2 == ']' || r2 == '{' || r2 == '}') {
				lx.advanceN(n)
				break
			}
			b.WriteByte(' ')
			lx.advanceN(n)
			continue
		}
		if r == ':' {
			n2, ok2 := lx.peek(1)
			if !ok2 || n2 == ' ' || n2 == '\t' || n2 == '\n' || n2 == '\r' {
				break
			}
			if lx.inFlow() && (n2 == ',' || n2 == ']' || n2 == '}') {
				break
			}
		}
		if lx.inFlow() && (r == ',' || r == '[' || r == ']' || r == '{' || r == '}') {
			break
		}
		b.WriteRune(r)
		lx.advance()
	}

	content := b.String()
	if content == "" {
		return Token{}, lx.lexError(start, "expected a scalar")
	}
	lx.lastMultiline = multiline
	return Token{Type: PLAIN_SCALAR_TOKEN, StartMark: start, EndMark: lx.mark(), Evaluated: []byte(content), Multiline: multiline}, nil
}

func isPlainScalarStop(r rune, flow bool) bool {
	if flow {
		switch r {
		case ',', '[', ']', '{', '}':
			return true
		}
	}
	return false
}

func (lx *Lexer) peekColonFollowedByBlank(afterBlanks int) bool {
	r, ok := lx.peek(afterBlanks + 1)
	return !ok || r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// scanSingleQuoted scans a '...' scalar; the only escape is '' for a
// literal single quote.
func (lx *Lexer) scanSingleQuoted(start Mark) (Token, error) {
	lx.advance() // opening quote
	var b strings.Builder
	multiline := false
	for {
		r, ok := lx.ch()
		if !ok {
			return Token{}, lx.lexError(start, "unterminated single-quoted scalar")
		}
		if r == '\'' {
			if n, ok2 := lx.peek(1); ok2 && n == '\'' {
				b.WriteByte('\'')
				lx.advanceN(2)
				continue
			}
			lx.advance()
			break
		}
		if r == '\n' || r == '\r' {
			nlCount := 0
			for lx.skipLineBreak() {
				nlCount++
				lx.skipBlanks()
				r2, ok2 := lx.ch()
				if ok2 && (r2 == '\n' || r2 == '\r') {
					continue
				}
				break
			}
			multiline = true
			if nlCount > 1 {
				b.WriteByte('\n')
			} else {
				b.WriteByte(' ')
			}
			continue
		}
		b.WriteRune(r)
		lx.advance()
	}
	lx.lastMultiline = multiline
	return Token{Type: SINGLE_QUOTED_TOKEN, StartMark: start, EndMark: lx.mark(), Evaluated: []byte(b.String()), Multiline: multiline}, nil
}

// scanDoubleQuoted scans a "..." scalar with full C-style escapes plus
// YAML's \x \u \U and line-continuation escape.
func (lx *Lexer) scanDoubleQuoted(start Mark) (Token, error) {
	lx.advance() // opening quote
	var b strings.Builder
	multiline := false
	for {
		r, ok := lx.ch()
		if !ok {
			return Token{}, lx.lexError(start, "unterminated double-quoted scalar")
		}
		if r == '"' {
			lx.advance()
			break
		}
		if r == '\\' {
			lx.advance()
			er, ok2 := lx.ch()
			if !ok2 {
				return Token{}, lx.lexError(start, "unterminated escape sequence")
			}
			if er == '\n' || er == '\r' {
				lx.skipLineBreak()
				lx.skipBlanks()
				multiline = true
				continue
			}
			decoded, err := lx.decodeEscape(start, er)
			if err != nil {
				return Token{}, err
			}
			b.WriteString(decoded)
			continue
		}
		if r == '\n' || r == '\r' {
			nlCount := 0
			for lx.skipLineBreak() {
				nlCount++
				lx.skipBlanks()
				r2, ok2 := lx.ch()
				if ok2 && (r2 == '\n' || r2 == '\r') {
					continue
				}
				break
			}
			multiline = true
			if nlCount > 1 {
				b.WriteByte('\n')
			} else {
				b.WriteByte(' ')
			}
			continue
		}
		b.WriteRune(r)
		lx.advance()
	}
	lx.lastMultiline = multiline
	return Token{Type: DOUBLE_QUOTED_TOKEN, StartMark: start, EndMark: lx.mark(), Evaluated: []byte(b.String()), Multiline: multiline}, nil
}

func (lx *Lexer) decodeEscape(start Mark, er rune) (string, error) {
	switch er {
	case '0':
		lx.advance()
		return "\x00", nil
	case 'a':
		lx.advance()
		return "\a", nil
	case 'b':
		lx.advance()
		return "\b", nil
	case 't', '\t':
		lx.advance()
		return "\t", nil
	case 'n':
		lx.advance()
		return "\n", nil
	case 'v':
		lx.advance()
		return "\v", nil
	case 'f':
		lx.advance()
		return "\f", nil
	case 'r':
		lx.advance()
		return "\r", nil
	case 'e':
		lx.advance()
		return "\x1b", nil
	case ' ':
		lx.advance()
		return " ", nil
	case '"':
		lx.advance()
		return "\"", nil
	case '/':
		lx.advance()
		return "/", nil
	case '\\':
		lx.advance()
		return "\\", nil
	case 'N':
		lx.advance()
		return "", nil
	case '_':
		lx.advance()
		return " ", nil
	case 'L':
		lx.advance()
		return " ", nil
	case 'P':
		lx.advance()
		return " ", nil
	case 'x':
		lx.advance()
		return lx.decodeHexEscape(start, 2)
	case 'u':
		lx.advance()
		return lx.decodeHexEscape(start, 4)
	case 'U':
		lx.advance()
		return lx.decodeHexEscape(start, 8)
	}
	return "", lx.lexError(start, "unknown escape character")
}

func (lx *Lexer) decodeHexEscape(start Mark, digits int) (string, error) {
	var b strings.Builder
	for i := 0; i < digits; i++ {
		r, ok := lx.ch()
		if !ok || !isHexDigit(r) {
			return "", lx.lexError(start, "invalid hex escape")
		}
		b.WriteRune(r)
		lx.advance()
	}
	v, err := strconv.ParseInt(b.String(), 16, 32)
	if err != nil {
		return "", lx.lexError(start, "invalid hex escape")
	}
	return string(rune(v)), nil
}

// scanBlockScalar scans a literal ('|') or folded ('>') block scalar,
// including its header (chomping and explicit indentation indicators) and
// body, per §4.1/§9.
func (lx *Lexer) scanBlockScalar(start Mark, folded bool) (Token, error) {
	lx.advance() // '|' or '>'

	var chomping byte
	explicitIndent := 0
	for i := 0; i < 2; i++ {
		r, ok := lx.ch()
		if !ok {
			break
		}
		switch {
		case r == '+' || r == '-':
			if chomping != 0 {
				return Token{}, lx.lexError(start, "repeated chomping indicator")
			}
			chomping = byte(r)
			lx.advance()
		case isDigit(r) && r != '0':
			if explicitIndent != 0 {
				return Token{}, lx.lexError(start, "repeated indentation indicator")
			}
			explicitIndent = int(r - '0')
			lx.advance()
		default:
			i = 2
		}
	}
	lx.skipBlanks()
	lx.skipCommentIfAny(true)
	r, ok := lx.ch()
	if ok && r != '\n' && r != '\r' {
		return Token{}, lx.lexError(start, "unexpected content after block scalar header")
	}
	lx.skipLineBreak()

	parentIndent := lx.lastIndent
	blockIndent := 0
	if explicitIndent != 0 {
		blockIndent = parentIndent + explicitIndent
	}
	var lines []string
	maxLeading := -1
	first := true

	for {
		lineStart := lx.src.pos()
		_ = lineStart
		leading := lx.countBlankOrIndentRun()
		r2, ok2 := lx.ch()
		if !ok2 {
			if leading > maxLeading {
				maxLeading = leading
			}
			break
		}
		if r2 == '\n' || r2 == '\r' {
			lines = append(lines, "")
			lx.skipLineBreak()
			continue
		}
		if blockIndent == 0 {
			if first {
				if leading <= parentIndent {
					// zero-width body
					break
				}
				blockIndent = leading
				first = false
			}
		}
		if leading < blockIndent {
			break
		}
		if leading > maxLeading {
			maxLeading = leading
		}
		extra := leading - blockIndent
		var lb strings.Builder
		for i := 0; i < extra; i++ {
			lb.WriteByte(' ')
		}
		for {
			c, okc := lx.ch()
			if !okc || c == '\n' || c == '\r' {
				break
			}
			lb.WriteRune(c)
			lx.advance()
		}
		lines = append(lines, lb.String())
		if !lx.skipLineBreak() {
			break
		}
	}

	content := assembleBlockScalar(lines, folded, chomping)
	tt := LITERAL_SCALAR_TOKEN
	if folded {
		tt = FOLDED_SCALAR_TOKEN
	}
	return Token{Type: tt, StartMark: start, EndMark: lx.mark(), Evaluated: []byte(content), Chomping: chomping, BlockIndent: blockIndent}, nil
}

// countBlankOrIndentRun consumes leading spaces on the current line
// (used inside a block scalar body, where tabs are permitted after the
// indentation column but not as indentation itself) and returns the
// count.
func (lx *Lexer) countBlankOrIndentRun() int {
	n := 0
	for {
		r, ok := lx.ch()
		if ok && r == ' ' {
			lx.advance()
			n++
			continue
		}
		return n
	}
}

// assembleBlockScalar joins a block scalar's per-line bodies according to
// its style (literal keeps line breaks; folded turns single breaks into
// spaces and preserves runs of blank lines, §9) and chomping indicator
// (strip removes the final break, clip keeps exactly one, keep preserves
// all trailing breaks).
func assembleBlockScalar(lines []string, folded bool, chomping byte) string {
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		if chomping == '+' {
			break
		}
		lines = lines[:len(lines)-1]
	}

	var b strings.Builder
	if folded {
		inBlankRun := false
		for i, ln := range lines {
			if ln == "" {
				b.WriteByte('\n')
				inBlankRun = true
				continue
			}
			if i > 0 && !inBlankRun {
				b.WriteByte(' ')
			}
			b.WriteString(ln)
			inBlankRun = false
		}
	} else {
		for i, ln := range lines {
			if i > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(ln)
		}
	}

	switch chomping {
	case '-':
		return strings.TrimRight(b.String(), "\n")
	case '+':
		s := b.String()
		if len(lines) > 0 {
			s += "\n"
		}
		return s
	default:
		s := strings.TrimRight(b.String(), "\n")
		if len(lines) > 0 {
			s += "\n"
		}
		return s
	}
}
