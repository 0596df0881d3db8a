// Copyright 2025 The ninjascan Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lexer

import (
	"fmt"
	"strings"

	"github.com/buildfmt/ninjascan/report"
)

// Lexer scans one ninja build file into tokens and evaluable strings.
//
// The lexer is a mutable cursor over an immutable input buffer; it never
// copies the input, and every string it hands out borrows from it. It is not
// safe for concurrent use.
type Lexer struct {
	file *report.File

	// cursor is the offset of the next unread byte.
	//
	// lastToken is the start offset of the most recently returned token or
	// scan failure, or -1 before the first read. It is what UnreadToken
	// rewinds to and what caller-built diagnostics point at.
	//
	// tokenEnd is the end offset of the most recent token, recorded before
	// trailing whitespace is eaten, so TokenSpan covers exactly the token.
	//
	// Invariant: 0 <= lastToken <= cursor <= len(input).
	cursor    int
	lastToken int
	tokenEnd  int
}

// New constructs a lexer over text. path is a display label used only in
// diagnostics.
//
// The lexer reads text for its whole lifetime; every token span and eval
// string fragment borrows from it.
func New(path, text string) *Lexer {
	return &Lexer{
		file:      report.NewFile(path, text),
		lastToken: -1,
	}
}

// File returns the underlying source file, for building spans and
// diagnostics.
func (l *Lexer) File() *report.File {
	return l.file
}

// Offset returns the cursor: the byte offset of the next unread byte.
func (l *Lexer) Offset() int {
	return l.cursor
}

// TokenSpan returns the span of the most recently returned token, excluding
// any trailing whitespace the lexer consumed after it. Before the first read
// it returns the zero span.
func (l *Lexer) TokenSpan() report.Span {
	if l.lastToken < 0 {
		return report.Span{}
	}
	return l.file.Span(l.lastToken, l.tokenEnd)
}

// TokenText returns the literal text of the most recently returned token.
// For an Ident token this is the identifier name.
func (l *Lexer) TokenText() string {
	span := l.TokenSpan()
	if span.IsZero() {
		return ""
	}
	return span.Text()
}

// Errorf builds a source-located error at the most recent token, for callers
// composing messages like "expected ':', got identifier".
func (l *Lexer) Errorf(format string, args ...any) *ScanError {
	return l.errorAt(max(l.lastToken, 0), nil, fmt.Sprintf(format, args...))
}

// at returns the byte at offset i, or 0 at and past end-of-input. The zero
// byte doubles as the sentinel terminator, so an embedded NUL ends the input
// early, exactly as ninja's null-terminated buffer does. The lexer never
// reads past it.
func (l *Lexer) at(i int) byte {
	if text := l.file.Text(); i < len(text) {
		return text[i]
	}
	return 0
}

// ReadToken scans and returns the next token.
//
// Comments are consumed silently. A run of spaces collapses into a single
// Indent token. After any token other than Newline and EOF, trailing spaces
// and $-newline continuations are eaten, so indentation is only visible at
// the start of a line. At end-of-input the lexer keeps returning EOF without
// advancing.
func (l *Lexer) ReadToken() Kind {
	text := l.file.Text()
	p := l.cursor
	var start int
	var kind Kind
	for {
		start = p
		c := l.at(p)
		p++

		if c == '#' {
			// A comment runs through its terminating newline and produces no
			// token. A comment cut off by end-of-input leaves the '#' itself
			// unrecognized.
			if nl := strings.IndexByte(text[p:], '\n'); nl >= 0 {
				p += nl + 1
				continue
			}
			p = start + 1
			kind = Error
			break
		}

		switch {
		case c == '\n':
			kind = Newline
		case c == ' ':
			for l.at(p) == ' ' {
				p++
			}
			kind = Indent
		case isVarnameByte(c):
			for isVarnameByte(l.at(p)) {
				p++
			}
			if k, ok := keywords[text[start:p]]; ok {
				kind = k
			} else {
				kind = Ident
			}
		case c == '=':
			kind = Equals
		case c == ':':
			kind = Colon
		case c == '|':
			if l.at(p) == '|' {
				p++
				kind = Pipe2
			} else {
				kind = Pipe
			}
		case c == 0:
			p = start
			kind = EOF
		default:
			kind = Error
		}
		break
	}

	l.lastToken = start
	l.tokenEnd = p
	l.cursor = p
	if kind != Newline && kind != EOF {
		l.eatWhitespace()
	}
	return kind
}

// UnreadToken rewinds the cursor to the start of the most recently returned
// token, so the next ReadToken re-scans it. Only one level of pushback is
// supported.
func (l *Lexer) UnreadToken() {
	if l.lastToken >= 0 {
		l.cursor = l.lastToken
	}
}

// PeekToken reads one token; if it is kind, it stays consumed and PeekToken
// returns true. Otherwise the token is pushed back and the lexer is exactly
// where it started, including which token TokenSpan reports.
func (l *Lexer) PeekToken(kind Kind) bool {
	lastToken, tokenEnd := l.lastToken, l.tokenEnd
	if l.ReadToken() == kind {
		return true
	}
	l.UnreadToken()
	l.lastToken, l.tokenEnd = lastToken, tokenEnd
	return false
}

// ReadIdent scans an identifier (letters, digits, underscore, dot) at the
// cursor. On a match it consumes trailing whitespace like ReadToken and
// returns the name; on zero matching bytes it returns ok == false and leaves
// the cursor unchanged.
func (l *Lexer) ReadIdent() (ident string, ok bool) {
	p := l.cursor
	for isVarnameByte(l.at(p)) {
		p++
	}
	if p == l.cursor {
		return "", false
	}
	ident = l.file.Text()[l.cursor:p]
	l.cursor = p
	l.eatWhitespace()
	return ident, true
}

// ReadEvalString scans value text into eval until a terminator, decoding the
// $-escape grammar:
//
//	$$      a literal dollar sign
//	$ \x20  a literal space
//	$\n     a line continuation; the newline and the next line's leading
//	        spaces vanish
//	${name} a variable reference; name may contain letters, digits,
//	        underscore, and dot
//	$name   a variable reference; name may contain letters, digits, and
//	        underscore only
//
// In path mode a space, colon, pipe, or newline terminates the scan and is
// left unconsumed for the caller to read as a token; trailing whitespace
// after the value is eaten. Outside path mode only a newline terminates
// (also unconsumed) and those bytes are ordinary literals.
//
// Reaching end-of-input mid-scan fails with [ErrUnexpectedEOF]; any other
// unrecognized sequence fails with [ErrLex]. On failure the cursor is left
// where it was and the failure position is recorded for diagnostics.
func (l *Lexer) ReadEvalString(eval *EvalString, path bool) error {
	text := l.file.Text()
	p := l.cursor
	var start int
loop:
	for {
		start = p
		c := l.at(p)
		p++

		switch {
		case c == 0:
			l.lastToken = start
			l.tokenEnd = start
			return l.errorAt(start, ErrUnexpectedEOF, "unexpected EOF")

		case c == '$':
			d := l.at(p)
			switch {
			case d == '$':
				p++
				eval.Add(Raw, "$")
			case d == ' ':
				p++
				eval.Add(Raw, " ")
			case d == '\n':
				// Line continuation: swallow the newline and the next line's
				// indentation.
				p++
				for l.at(p) == ' ' {
					p++
				}
			case d == '{':
				p++
				nameStart := p
				for isVarnameByte(l.at(p)) {
					p++
				}
				if l.at(p) == 0 {
					l.lastToken = p
					l.tokenEnd = p
					return l.errorAt(p, ErrUnexpectedEOF, "unexpected EOF")
				}
				if p == nameStart || l.at(p) != '}' {
					l.lastToken = start
					l.tokenEnd = start
					return l.errorAt(start, ErrLex, "lexing error")
				}
				eval.Add(Special, text[nameStart:p])
				p++
			case isSimpleVarnameByte(d):
				nameStart := p
				for isSimpleVarnameByte(l.at(p)) {
					p++
				}
				eval.Add(Special, text[nameStart:p])
			default:
				// "$" followed by anything else, including end-of-input.
				l.lastToken = start
				l.tokenEnd = start
				return l.errorAt(start, ErrLex, "lexing error")
			}

		case c == ' ' || c == ':' || c == '|' || c == '\n':
			if path || c == '\n' {
				// Terminator. Leave it for the caller to re-scan.
				p = start
				break loop
			}
			eval.Add(Raw, text[start:p])

		default:
			// A maximal run of plain bytes becomes one literal fragment.
			for {
				b := l.at(p)
				if b == '$' || b == ' ' || b == ':' || b == '|' || b == '\n' || b == 0 {
					break
				}
				p++
			}
			eval.Add(Raw, text[start:p])
		}
	}

	l.lastToken = start
	l.tokenEnd = p
	l.cursor = p
	if path {
		// Path values are whitespace-delimited by the surrounding grammar;
		// eat the delimiters so the next path scan starts on the next value.
		// Non-path values end at a real newline, which the caller reads as
		// its own token.
		l.eatWhitespace()
	}
	return nil
}

// eatWhitespace consumes spaces and $-newline continuations after a token.
func (l *Lexer) eatWhitespace() {
	for {
		switch {
		case l.at(l.cursor) == ' ':
			l.cursor++
		case l.at(l.cursor) == '$' && l.at(l.cursor+1) == '\n':
			l.cursor += 2
		default:
			return
		}
	}
}

// isVarnameByte reports bytes allowed in identifiers and ${braced} variable
// names.
func isVarnameByte(c byte) bool {
	return c == '_' || c == '.' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// isSimpleVarnameByte reports bytes allowed in unbraced $name references.
// Unlike full identifiers, these exclude the dot, so "$x.rsp" references $x.
func isSimpleVarnameByte(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
