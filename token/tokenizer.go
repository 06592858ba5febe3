// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package token

import (
	"errors"
	"strings"
)

// Errors returned by Tokenizer.Next.
var (
	// ErrUnterminatedComment is returned when a /* comment reaches
	// end of input without a matching */.
	ErrUnterminatedComment = errors.New("token: unterminated block comment")
	// ErrUnterminatedString is returned when a quoted string reaches
	// end of input without a closing quote.
	ErrUnterminatedString = errors.New("token: unterminated string literal")
	// ErrInvalidToken is returned for input that matches no token class
	// (e.g. an unprintable control character outside a string).
	ErrInvalidToken = errors.New("token: invalid token")
)

// Tokenizer scans one Input for Tokens. It is not safe for concurrent use;
// confine each Tokenizer to a single goroutine.
type Tokenizer struct {
	in      Input
	intr    *Interner
	pos     int
	lastErr error
}

// New returns a Tokenizer reading from in. Token spellings are interned
// through intr; pass a shared *Interner to dedupe spellings across several
// Tokenizers, or a fresh one if that isn't needed.
func New(in Input, intr *Interner) *Tokenizer {
	return &Tokenizer{in: in, intr: intr}
}

// Next scans and returns the next Token, or an error if the input does not
// match the token grammar. Once EOF is returned, subsequent calls keep
// returning EOF (with a nil error).
func (t *Tokenizer) Next() (Token, error) {
	t.skipSpaceAndComments()
	if err := t.lastErr; err != nil {
		t.lastErr = nil
		return Token{}, err
	}
	startPos := t.pos
	if t.in.EndOfStream() {
		return Token{Kind: EOF, Pos: startPos}, nil
	}
	r := t.in.Peek()
	switch {
	case r == '"':
		return t.scanString(startPos)
	case isDigit(r):
		return t.scanNumber(startPos)
	case r == '.':
		// Could be a lone '.' or a dot-run operator, or the start of a
		// number like ".5"; maximal-munch dot-runs are treated as an
		// operator unless followed immediately by a digit.
		return t.scanDotOrNumber(startPos)
	case isAlpha(r):
		return t.scanAtom(startPos)
	case r == '_':
		return t.scanSubscript(startPos)
	case isOpen(r):
		t.advance()
		return Token{Kind: Open, Text: t.intern(string(r)), Pos: startPos}, nil
	case isClose(r):
		t.advance()
		return Token{Kind: Close, Text: t.intern(string(r)), Pos: startPos}, nil
	case isSep(r):
		t.advance()
		return Token{Kind: Separator, Text: t.intern(string(r)), Pos: startPos}, nil
	case isSymbolic(r):
		return t.scanOperator(startPos)
	default:
		t.advance()
		return Token{}, ErrInvalidToken
	}
}

func (t *Tokenizer) advance() rune {
	r := t.in.Next()
	t.pos++
	return r
}

func (t *Tokenizer) intern(s string) string {
	if t.intr == nil {
		return s
	}
	return t.intr.Intern(s)
}

func (t *Tokenizer) skipSpaceAndComments() {
	for !t.in.EndOfStream() {
		r := t.in.Peek()
		switch {
		case isSpace(r):
			t.advance()
		case r == '/' && t.peekAhead() == '/':
			t.advance()
			t.advance()
			for !t.in.EndOfStream() && t.in.Peek() != '\n' {
				t.advance()
			}
		case r == '/' && t.peekAhead() == '*':
			t.advance()
			t.advance()
			closed := false
			for !t.in.EndOfStream() {
				if t.in.Peek() == '*' {
					t.advance()
					if !t.in.EndOfStream() && t.in.Peek() == '/' {
						t.advance()
						closed = true
						break
					}
					continue
				}
				t.advance()
			}
			if !closed {
				t.lastErr = ErrUnterminatedComment
				return
			}
		default:
			return
		}
	}
}

// peekAhead peeks one rune past the current one. Input only guarantees
// one-rune lookahead, so this uses the input's PeekAt method when it has one
// and otherwise reports 0 (no second rune).
func (t *Tokenizer) peekAhead() rune {
	if bi, ok := t.in.(interface{ PeekAt(int) rune }); ok {
		return bi.PeekAt(1)
	}
	// Fallback for inputs without PeekAt (StringInput has it): comment
	// openers are then never recognized, so such inputs are only expected
	// to feed comment-free streams.
	return 0
}

func (t *Tokenizer) scanString(startPos int) (Token, error) {
	var sb strings.Builder
	sb.WriteRune(t.advance()) // opening quote
	closed := false
	for !t.in.EndOfStream() {
		r := t.advance()
		sb.WriteRune(r)
		if r == '\\' && !t.in.EndOfStream() {
			sb.WriteRune(t.advance())
			continue
		}
		if r == '"' {
			closed = true
			break
		}
	}
	if !closed {
		return Token{}, ErrUnterminatedString
	}
	return Token{Kind: String, Text: t.intern(sb.String()), Pos: startPos}, nil
}

func (t *Tokenizer) scanNumber(startPos int) (Token, error) {
	var sb strings.Builder
	for !t.in.EndOfStream() && isDigit(t.in.Peek()) {
		sb.WriteRune(t.advance())
	}
	if !t.in.EndOfStream() && t.in.Peek() == '.' {
		// only consume the dot as part of the number if at least one
		// digit follows; "1." followed by a non-digit leaves the dot
		// for a subsequent operator token (a bare dot-run).
		if bi, ok := t.in.(interface{ PeekAt(int) rune }); ok && isDigit(bi.PeekAt(1)) {
			sb.WriteRune(t.advance())
			for !t.in.EndOfStream() && isDigit(t.in.Peek()) {
				sb.WriteRune(t.advance())
			}
		}
	}
	if !t.in.EndOfStream() && (t.in.Peek() == 'e' || t.in.Peek() == 'E') {
		if bi, ok := t.in.(interface{ PeekAt(int) rune }); ok {
			la := 1
			c := bi.PeekAt(la)
			if c == '+' || c == '-' {
				la++
				c = bi.PeekAt(la)
			}
			if isDigit(c) {
				sb.WriteRune(t.advance()) // e/E
				if t.in.Peek() == '+' || t.in.Peek() == '-' {
					sb.WriteRune(t.advance())
				}
				for !t.in.EndOfStream() && isDigit(t.in.Peek()) {
					sb.WriteRune(t.advance())
				}
			}
		}
	}
	return Token{Kind: Number, Text: t.intern(sb.String()), Pos: startPos}, nil
}

func (t *Tokenizer) scanDotOrNumber(startPos int) (Token, error) {
	if bi, ok := t.in.(interface{ PeekAt(int) rune }); ok && isDigit(bi.PeekAt(1)) {
		return t.scanNumber(startPos)
	}
	return t.scanOperator(startPos)
}

func (t *Tokenizer) scanAtom(startPos int) (Token, error) {
	var sb strings.Builder
	sb.WriteRune(t.advance())
	for !t.in.EndOfStream() && isAlNum(t.in.Peek()) {
		sb.WriteRune(t.advance())
	}
	return Token{Kind: Atom, Text: t.intern(sb.String()), Pos: startPos}, nil
}

func (t *Tokenizer) scanSubscript(startPos int) (Token, error) {
	var sb strings.Builder
	for !t.in.EndOfStream() && t.in.Peek() == '_' {
		sb.WriteRune(t.advance())
	}
	return Token{Kind: Subscript, Text: t.intern(sb.String()), Pos: startPos}, nil
}

func (t *Tokenizer) scanOperator(startPos int) (Token, error) {
	var sb strings.Builder
	for !t.in.EndOfStream() && isSymbolic(t.in.Peek()) {
		sb.WriteRune(t.advance())
	}
	if sb.Len() == 0 {
		t.advance()
		return Token{}, ErrInvalidToken
	}
	return Token{Kind: Operator, Text: t.intern(sb.String()), Pos: startPos}, nil
}
