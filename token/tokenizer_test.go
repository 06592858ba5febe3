// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package token

import "testing"

func scanAll(t *testing.T, src string) []Token {
	t.Helper()
	tok := New(NewStringInput(src), &Interner{})
	var toks []Token
	for {
		tk, err := tok.Next()
		if err != nil {
			t.Fatalf("Next(%q): %v", src, err)
		}
		if tk.Kind == EOF {
			return toks
		}
		toks = append(toks, tk)
	}
}

func TestNextToken(t *testing.T) {
	tests := []struct {
		src  string
		want []Token
	}{
		{"abc", []Token{{Kind: Atom, Text: "abc"}}},
		{"x1 + y2", []Token{
			{Kind: Atom, Text: "x1"},
			{Kind: Operator, Text: "+"},
			{Kind: Atom, Text: "y2"},
		}},
		{"123", []Token{{Kind: Number, Text: "123"}}},
		{"1.25", []Token{{Kind: Number, Text: "1.25"}}},
		{"1.25e-10", []Token{{Kind: Number, Text: "1.25e-10"}}},
		{"f'", []Token{{Kind: Atom, Text: "f'"}}},
		{`"hi \"there\""`, []Token{{Kind: String, Text: `"hi \"there\""`}}},
		{"x_1", []Token{{Kind: Atom, Text: "x"}, {Kind: Subscript, Text: "_"}, {Kind: Number, Text: "1"}}},
		{"(a, b)", []Token{
			{Kind: Open, Text: "("},
			{Kind: Atom, Text: "a"},
			{Kind: Separator, Text: ","},
			{Kind: Atom, Text: "b"},
			{Kind: Close, Text: ")"},
		}},
		{"a /* skip */ b", []Token{{Kind: Atom, Text: "a"}, {Kind: Atom, Text: "b"}}},
		{"a // skip\nb", []Token{{Kind: Atom, Text: "a"}, {Kind: Atom, Text: "b"}}},
		{"<<=", []Token{{Kind: Operator, Text: "<<="}}},
		{"a%b", []Token{
			{Kind: Atom, Text: "a"},
			{Kind: Separator, Text: "%"},
			{Kind: Atom, Text: "b"},
		}},
	}
	for _, tc := range tests {
		got := scanAll(t, tc.src)
		if len(got) != len(tc.want) {
			t.Errorf("scan(%q) = %d tokens, want %d: %v", tc.src, len(got), len(tc.want), got)
			continue
		}
		for i, g := range got {
			w := tc.want[i]
			if g.Kind != w.Kind || g.Text != w.Text {
				t.Errorf("scan(%q)[%d] = %+v, want %+v", tc.src, i, g, w)
			}
		}
	}
}

func TestUnterminatedString(t *testing.T) {
	tok := New(NewStringInput(`"abc`), &Interner{})
	if _, err := tok.Next(); err != ErrUnterminatedString {
		t.Errorf("got %v, want ErrUnterminatedString", err)
	}
}

func TestUnterminatedComment(t *testing.T) {
	tok := New(NewStringInput(`/* abc`), &Interner{})
	if _, err := tok.Next(); err != ErrUnterminatedComment {
		t.Errorf("got %v, want ErrUnterminatedComment", err)
	}
}

func TestInterner(t *testing.T) {
	var in Interner
	a := in.Intern("foo")
	b := in.Intern("foo")
	if a != b {
		t.Errorf("Intern returned different values for the same string")
	}
}
