// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anumber

import "math/bits"

// cmp compares the magnitudes of x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
func (x vec) cmp(y vec) int {
	x, y = x.norm(), y.norm()
	switch {
	case len(x) != len(y):
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// addVV sets z = x + y for same-length x, y and returns the carry out.
func addVV(z, x, y vec) (c Word) {
	for i := range z {
		zi, cc := bits.Add(uint(x[i]), uint(y[i]), uint(c))
		z[i] = Word(zi)
		c = Word(cc)
	}
	return
}

// subVV sets z = x - y for same-length x, y and returns the borrow out.
func subVV(z, x, y vec) (c Word) {
	for i := range z {
		zi, cc := bits.Sub(uint(x[i]), uint(y[i]), uint(c))
		z[i] = Word(zi)
		c = Word(cc)
	}
	return
}

// addVW sets z = x + y (y a single Word) and returns the carry out.
func addVW(z, x vec, y Word) (c Word) {
	c = y
	for i := range z {
		zi, cc := bits.Add(uint(x[i]), uint(c), 0)
		z[i] = Word(zi)
		c = Word(cc)
	}
	return
}

// subVW sets z = x - y (y a single Word) and returns the borrow out.
func subVW(z, x vec, y Word) (c Word) {
	c = y
	for i := range z {
		zi, cc := bits.Sub(uint(x[i]), uint(c), 0)
		z[i] = Word(zi)
		c = Word(cc)
	}
	return
}

// add sets z = x + y and returns z, normalized. The result is correctly
// sized to hold a possible carry.
func (z vec) add(x, y vec) vec {
	if len(x) < len(y) {
		x, y = y, x
	}
	if len(y) == 0 {
		return z.set(x)
	}
	z = z.make(len(x) + 1)
	c := addVV(z[:len(y)], x[:len(y)], y)
	if len(x) > len(y) {
		c = addVW(z[len(y):len(x)], x[len(y):], c)
	}
	z[len(x)] = c
	return z.norm()
}

// sub sets z = x - y (x >= y required) and returns z, normalized.
func (z vec) sub(x, y vec) vec {
	if len(y) == 0 {
		return z.set(x)
	}
	z = z.make(len(x))
	c := subVV(z[:len(y)], x[:len(y)], y)
	if len(x) > len(y) {
		c = subVW(z[len(y):], x[len(y):], c)
	}
	if c != 0 {
		panic("anumber: underflow in vec.sub")
	}
	return z.norm()
}

// mulAddVWW sets z = x*y + r (y, r single Words) and returns the carry out.
func mulAddVWW(z, x vec, y, r Word) (c Word) {
	c = r
	for i := range z {
		hi, lo := bits.Mul(uint(x[i]), uint(y))
		lo2, cc := bits.Add(lo, uint(c), 0)
		c = Word(hi + cc)
		z[i] = Word(lo2)
	}
	return
}

// mul sets z = x*y for magnitudes x, y using schoolbook multiplication with
// double-Word (bits.Mul) accumulation, and returns z normalized.
func (z vec) mul(x, y vec) vec {
	x, y = x.norm(), y.norm()
	m, n := len(x), len(y)
	if m == 0 || n == 0 {
		return z.make(0)
	}
	if m < n {
		x, y = y, x
		m, n = n, m
	}
	zz := make(vec, m+n)
	var buf vec
	for j := 0; j < n; j++ {
		if y[j] == 0 {
			continue
		}
		buf = buf.make(m)
		c := mulAddVWW(buf, x, y[j], 0)
		cc := addVV(zz[j:j+m], zz[j:j+m], buf)
		zz[j+m] += c + cc
	}
	z = z.set(zz)
	return z.norm()
}

// shl sets z = x << s and returns z, normalized.
func (z vec) shl(x vec, s uint) vec {
	x = x.norm()
	if len(x) == 0 {
		return z.make(0)
	}
	wordShift := int(s / _W)
	bitShift := s % _W
	n := len(x) + wordShift + 1
	z = z.make(n)
	for i := range z[:wordShift] {
		z[i] = 0
	}
	if bitShift == 0 {
		copy(z[wordShift:], x)
		z[len(x)+wordShift] = 0
	} else {
		var c Word
		for i, xi := range x {
			z[i+wordShift] = xi<<bitShift | c
			c = xi >> (_W - bitShift)
		}
		z[len(x)+wordShift] = c
	}
	return z.norm()
}

// shr sets z = x >> s and returns z, normalized.
func (z vec) shr(x vec, s uint) vec {
	x = x.norm()
	wordShift := int(s / _W)
	if wordShift >= len(x) {
		return z.make(0)
	}
	bitShift := s % _W
	x = x[wordShift:]
	n := len(x)
	z = z.make(n)
	if bitShift == 0 {
		copy(z, x)
		return z.norm()
	}
	for i := 0; i < n-1; i++ {
		z[i] = x[i]>>bitShift | x[i+1]<<(_W-bitShift)
	}
	z[n-1] = x[n-1] >> bitShift
	return z.norm()
}

// div sets q = x / y, r = x % y (magnitudes, y != 0) and returns q, r
// normalized. Single-Word divisors take a fast path; multi-Word divisors use
// Knuth's Algorithm D (TAOCP vol. 2, 4.3.1), normalizing the divisor's top
// Word so the quotient-digit estimate needs at most one correction.
func (z vec) div(r vec, x, y vec) (q, rr vec) {
	y = y.norm()
	if len(y) == 0 {
		panic(ErrDivByZero)
	}
	x = x.norm()
	if x.cmp(y) < 0 {
		q = z.make(0)
		rr = r.set(x)
		return q, rr
	}
	if len(y) == 1 {
		return z.divW(r, x, y[0])
	}
	return z.divLarge(r, x, y)
}

// divW divides x by the single Word y.
func (z vec) divW(r vec, x vec, y Word) (q, rr vec) {
	q = z.make(len(x))
	var c Word
	for i := len(x) - 1; i >= 0; i-- {
		hi, lo := uint(c), uint(x[i])
		qq, rem := bits.Div(hi, lo, uint(y))
		q[i] = Word(qq)
		c = Word(rem)
	}
	rr = r.make(1)
	rr[0] = c
	return q.norm(), rr.norm()
}

// divLarge implements Knuth's Algorithm D for a multi-Word divisor.
func (z vec) divLarge(r vec, x, y vec) (q, rr vec) {
	n := len(y)
	m := len(x) - n

	s := uint(_W) - uint(bits.Len(uint(y[n-1])))
	yn := make(vec, n)
	shlVU(yn, y, s)

	xn := make(vec, len(x)+1)
	c := shlVU(xn[:len(x)], x, s)
	xn[len(x)] = c

	q = z.make(m + 1)
	var buf vec
	for j := m; j >= 0; j-- {
		var qhat, rhat uint
		var rhatOverflow uint
		if xn[j+n] == yn[n-1] {
			qhat = uint(WordMask)
			rhat, rhatOverflow = bits.Add(uint(xn[j+n-1]), uint(yn[n-1]), 0)
		} else {
			qhat, rhat = bits.Div(uint(xn[j+n]), uint(xn[j+n-1]), uint(yn[n-1]))
		}
		for rhatOverflow == 0 && qhat != 0 {
			hi, lo := bits.Mul(qhat, uint(yn[n-2]))
			if hi < rhat || (hi == rhat && lo <= uint(xn[j+n-2])) {
				break
			}
			qhat--
			rhat, rhatOverflow = bits.Add(rhat, uint(yn[n-1]), 0)
		}
		buf = buf.make(n + 1)
		buf[n] = mulAddVWW(buf[:n], yn, Word(qhat), 0)
		borrow := subVV(xn[j:j+n+1], xn[j:j+n+1], buf)
		if borrow != 0 {
			// qhat was one too large; add back. The add's carry cancels
			// the borrow above exactly, mod 2**_W, per Knuth 4.3.1.
			qhat--
			c := addVV(xn[j:j+n], xn[j:j+n], yn)
			xn[j+n] += c
		}
		q[j] = Word(qhat)
	}
	rr = r.make(n)
	shrVU(rr, xn[:n], s)
	return q.norm(), rr.norm()
}

func shlVU(z, x vec, s uint) (c Word) {
	if s == 0 {
		copy(z, x)
		return 0
	}
	var prev Word
	for i, xi := range x {
		z[i] = xi<<s | prev
		prev = xi >> (_W - s)
	}
	return prev
}

func shrVU(z, x vec, s uint) (c Word) {
	if s == 0 {
		copy(z, x)
		return 0
	}
	n := len(x)
	var prev Word
	for i := n - 1; i >= 0; i-- {
		z[i] = x[i]>>s | prev
		prev = x[i] << (_W - s)
	}
	return prev
}

// gcd sets z to the greatest common divisor of x and y using the binary
// (Stein's) algorithm, which avoids division entirely. If one of x and y is
// zero, the result is the other.
func (z vec) gcd(x, y vec) vec {
	x, y = x.norm(), y.norm()
	if x.isZero() {
		return z.set(y)
	}
	if y.isZero() {
		return z.set(x)
	}
	a := vec(nil).set(x)
	b := vec(nil).set(y)
	shift := uint(0)
	for a.isEven() && b.isEven() {
		a = a.shr(a, 1)
		b = b.shr(b, 1)
		shift++
	}
	for a.isEven() {
		a = a.shr(a, 1)
	}
	for !b.isZero() {
		for b.isEven() {
			b = b.shr(b, 1)
		}
		if a.cmp(b) > 0 {
			a, b = b, a
		}
		b = b.sub(b, a)
	}
	return z.shl(a, shift)
}

func (x vec) isEven() bool {
	x = x.norm()
	return len(x) == 0 || x[0]&1 == 0
}
