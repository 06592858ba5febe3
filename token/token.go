// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package token implements the Unicode-aware tokenizer that turns a stream
// of runes into the lexical tokens consumed by a computer-algebra parser:
// atoms, operators, numbers, quoted strings, brackets, separators, and
// subscripts. The tokenizer is a thin, allocation-conscious wrapper around
// an Input source; it does maximal-munch scanning only and leaves grammar
// decisions (operator precedence, bracket matching) to its caller.
package token

// Kind classifies a Token's lexical category.
type Kind int

//go:generate stringer -type=Kind

const (
	// Invalid marks a zero Token; Next returns it only together with a
	// non-nil error.
	Invalid Kind = iota
	// Atom is an identifier: a letter or apostrophe followed by letters,
	// digits, and apostrophes.
	Atom
	// Number is a numeric literal: digits, optionally a '.' and more
	// digits, optionally an exponent suffix.
	Number
	// String is a double-quoted string literal, including its quotes.
	String
	// Operator is a maximal run of symbolic (non-alphanumeric,
	// non-bracket, non-separator) characters.
	Operator
	// Open is one of ( [ {.
	Open
	// Close is one of ) ] }.
	Close
	// Separator is one of , ; % (token boundary punctuation).
	Separator
	// Subscript is a run of underscores, used for indexed names.
	Subscript
	// EOF marks the end of input; Next returns it repeatedly once
	// reached.
	EOF
)

// Token is a single lexical token: its Kind, and Text identifying its
// spelling. Text is interned (see Interner) so that two tokens with
// identical spelling compare equal by Text without a string comparison.
type Token struct {
	Kind Kind
	Text string
	// Pos is the rune offset of the token's first character within the
	// input stream, counting from 0.
	Pos int
}
