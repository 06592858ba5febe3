// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package token

// Input is the one-character-lookahead capability the tokenizer needs from
// its source: the rune under the cursor (Peek), advancing past it (Next),
// and end-of-stream detection. Keeping this as an interface rather than
// hard-coding a string or io.Reader lets a caller feed the tokenizer
// directly from a REPL's line buffer, a file, or a string without a
// conversion step.
type Input interface {
	// Next consumes and returns the current rune, advancing the cursor.
	// Next must not be called once EndOfStream reports true.
	Next() rune
	// Peek returns the current rune without consuming it. Peek may be
	// called any number of times before the next Next.
	Peek() rune
	// EndOfStream reports whether the cursor is past the last rune.
	EndOfStream() bool
}

// StringInput adapts a string to the Input interface.
type StringInput struct {
	runes []rune
	pos   int
}

// NewStringInput returns an Input over s.
func NewStringInput(s string) *StringInput {
	return &StringInput{runes: []rune(s)}
}

// Next implements Input.
func (in *StringInput) Next() rune {
	r := in.runes[in.pos]
	in.pos++
	return r
}

// Peek implements Input.
func (in *StringInput) Peek() rune {
	if in.pos >= len(in.runes) {
		return 0
	}
	return in.runes[in.pos]
}

// EndOfStream implements Input.
func (in *StringInput) EndOfStream() bool {
	return in.pos >= len(in.runes)
}

// Pos returns the current rune offset, for error reporting.
func (in *StringInput) Pos() int { return in.pos }

// PeekAt returns the rune n positions ahead of the cursor (PeekAt(0) is
// equivalent to Peek), or 0 if that position is past the end of input.
// Tokenizer uses this for the handful of two-character lookaheads the
// grammar needs (comment openers, numeric exponent signs); Input
// implementations that don't support it simply won't get those lookaheads
// (see Tokenizer.peekAhead).
func (in *StringInput) PeekAt(n int) rune {
	if in.pos+n >= len(in.runes) || in.pos+n < 0 {
		return 0
	}
	return in.runes[in.pos+n]
}
