// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package token

import "unicode"

// isAlpha reports whether r can start or continue an Atom: a Unicode letter
// (Ll or Lu, per unicode.IsLower/unicode.IsUpper) or an apostrophe, which
// this grammar allows mid-identifier (e.g. derivative notation like f').
// The original C++ tokenizer this package's algorithm is modeled on baked in
// a fixed table of accepted letters; this implementation instead consults
// Go's Unicode tables directly, which is a superset of any such fixed table
// and needs no maintenance as Unicode adds letters.
func isAlpha(r rune) bool {
	return unicode.IsLower(r) || unicode.IsUpper(r) || r == '\''
}

// isAlNum reports whether r can continue an Atom after its first character:
// a letter, apostrophe, or digit.
func isAlNum(r rune) bool {
	return isAlpha(r) || unicode.IsDigit(r)
}

// isDigit reports whether r is an ASCII decimal digit. Numeric literals are
// restricted to ASCII digits even though identifiers accept the full
// Unicode letter set.
func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isSpace reports whether r is whitespace to be skipped between tokens.
func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n' || r == '\v' || r == '\f'
}

const (
	openBrackets  = "([{"
	closeBrackets = ")]}"
	separators    = ",;%"
)

func isOpen(r rune) bool  { return containsRune(openBrackets, r) }
func isClose(r rune) bool { return containsRune(closeBrackets, r) }
func isSep(r rune) bool   { return containsRune(separators, r) }

func containsRune(s string, r rune) bool {
	for _, c := range s {
		if c == r {
			return true
		}
	}
	return false
}

// isSymbolic reports whether r is an operator character: printable, not
// whitespace, not a letter/digit/apostrophe/underscore, and not one of the
// bracket or separator characters (which form their own token classes).
func isSymbolic(r rune) bool {
	if isSpace(r) || isAlNum(r) || isOpen(r) || isClose(r) || isSep(r) || r == '_' || r == '"' {
		return false
	}
	return unicode.IsPrint(r)
}
