// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package token

import "sync"

// Interner deduplicates token spellings so that identical atoms, operators,
// and numbers across a whole parse share one string value, and so that a
// parser can compare tokens by identity-equivalent string equality instead
// of repeated byte comparisons. The zero value is ready to use.
//
// An Interner is safe for concurrent use by multiple goroutines; the
// tokenizer itself is not, and is expected to be confined to a single
// goroutine per input stream, but a single Interner is commonly shared
// across several concurrently running tokenizers (e.g. when parsing
// multiple files of a module at once).
type Interner struct {
	mu sync.Mutex
	m  map[string]string
}

// Intern returns the canonical, shared copy of s.
func (in *Interner) Intern(s string) string {
	in.mu.Lock()
	defer in.mu.Unlock()
	if in.m == nil {
		in.m = make(map[string]string)
	}
	if c, ok := in.m[s]; ok {
		return c
	}
	in.m[s] = s
	return s
}
