// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anumber

import "math/bits"

// Word is a single element of a vec. The native int size is used so that
// math/bits carry/borrow primitives operate at full machine width; there is
// no fixed 32/64 split the way decimal Words are pinned to a power of ten.
type Word uint

const (
	_W = bits.UintSize // word width in bits
	_S = _W / 8         // word width in bytes
)

// WordBits is the number of bits in a Word.
const WordBits = _W

// WordMask is the all-ones mask for a Word, i.e. 2**WordBits - 1. WordBase
// itself (2**WordBits) overflows a Word, so it never appears as a value;
// widened (two-Word) computations use math/bits.Mul/Add/Div instead.
const WordMask Word = 1<<_W - 1

// vec is a little-endian vector of Words: vec[0] is the least significant
// Word. A vec has no sign; ANumber pairs it with a separate sign bit.
//
// The zero value of vec is an empty vector representing 0. Following the
// convention used throughout math/big-style packages, a normalized vec never
// carries leading (high-order) zero Words, except that it may be empty.
type vec []Word

// smallVec is the number of Words held inline in an ANumber before it must
// allocate. Most literals and intermediate results in a computer-algebra
// session are one or two machine words wide, so this avoids an allocation
// for the common case.
const smallVec = 2

// norm strips leading zero Words from z and returns the result. It never
// reallocates.
func (z vec) norm() vec {
	i := len(z)
	for i > 0 && z[i-1] == 0 {
		i--
	}
	return z[:i]
}

// make returns a vec of length n, reusing z's storage if it has enough
// capacity. Like append, the returned vec may share storage with z.
func (z vec) make(n int) vec {
	if n <= cap(z) {
		return z[:n]
	}
	const e = 4 // extra capacity, like math/big's nat.make
	return make(vec, n, n+e)
}

// set sets z to x, reusing z's storage.
func (z vec) set(x vec) vec {
	z = z.make(len(x))
	copy(z, x)
	return z
}

// isZero reports whether z represents zero, i.e. is empty after norm.
func (z vec) isZero() bool {
	return len(z.norm()) == 0
}

// bitLen returns the length of z in bits. The bit length of 0 is 0.
func (z vec) bitLen() int {
	z = z.norm()
	if len(z) == 0 {
		return 0
	}
	return (len(z)-1)*_W + bits.Len(uint(z[len(z)-1]))
}

// wordsNeeded returns the number of Words needed to hold n bits.
func wordsNeeded(n uint) int {
	return int((n + _W - 1) / _W)
}
