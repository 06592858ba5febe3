// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anumber

import "math"

// DigitsToBits converts a count of base-`base` digits to the number of bits
// needed to losslessly represent them, using a floating-point log2(base)
// lookup. This is the "float-based" implementation of the digits/bits
// conversion; RatDigitsToBits below is an integer-only alternative kept for
// callers that would rather avoid float64 in the hot path. base must be in
// [2,32]; DigitsToBits returns ErrDomainOverflow otherwise.
func DigitsToBits(digits, base uint) (uint, error) {
	if base < 2 || base > 32 {
		return 0, ErrDomainOverflow
	}
	if digits == 0 {
		return 0, nil
	}
	return uint(math.Ceil(float64(digits) * math.Log2(float64(base)))), nil
}

// BitsToDigits converts a bit count to the number of base-`base` digits
// needed to represent a value of that many bits without loss. base must be
// in [2,32]; BitsToDigits returns ErrDomainOverflow otherwise.
func BitsToDigits(bits, base uint) (uint, error) {
	if base < 2 || base > 32 {
		return 0, ErrDomainOverflow
	}
	if bits == 0 {
		return 0, nil
	}
	return uint(math.Ceil(float64(bits) / math.Log2(float64(base)))), nil
}

// RatDigitsToBits converts a count of base-`base` digits to bits using only
// integer arithmetic, as an alternative to DigitsToBits that avoids floating
// point entirely. It relies on the identity
//
//	ceil(digits*log2(base)) == bitLen(base**digits)
//
// (adjusted down by one Word bit when base**digits happens to be an exact
// power of two), computed by repeated squaring-free multiplication rather
// than any rational approximation of log2(base), so it is exact for every
// base in [2,32] rather than only the one a hand-picked ratio was tuned
// for. base must be in [2,32]; it returns ErrDomainOverflow otherwise.
func RatDigitsToBits(digits, base uint) (uint, error) {
	if base < 2 || base > 32 {
		return 0, ErrDomainOverflow
	}
	if digits == 0 {
		return 0, nil
	}
	n := vec{1}
	b := vec{Word(base)}
	for i := uint(0); i < digits; i++ {
		n = vec(nil).mul(n, b)
	}
	bl := n.bitLen()
	if isPowerOfTwo(n) {
		return uint(bl - 1), nil
	}
	return uint(bl), nil
}

// RatBitsToDigits is the integer-only counterpart of BitsToDigits: the
// smallest digit count d with base**d >= 2**bits, found by repeated
// multiplication rather than a floating-point division. base must be in
// [2,32]; it returns ErrDomainOverflow otherwise.
func RatBitsToDigits(bits, base uint) (uint, error) {
	if base < 2 || base > 32 {
		return 0, ErrDomainOverflow
	}
	if bits == 0 {
		return 0, nil
	}
	target := vec(nil).shl(vec{1}, bits)
	n := vec{1}
	b := vec{Word(base)}
	d := uint(0)
	for n.cmp(target) < 0 {
		n = vec(nil).mul(n, b)
		d++
	}
	return d, nil
}

// isPowerOfTwo reports whether the normalized vec n is an exact power of
// two (n != 0 and n&(n-1) == 0, computed Word-wise).
func isPowerOfTwo(n vec) bool {
	n = n.norm()
	if len(n) == 0 {
		return false
	}
	for i := 0; i < len(n)-1; i++ {
		if n[i] != 0 {
			return false
		}
	}
	top := n[len(n)-1]
	return top&(top-1) == 0
}
