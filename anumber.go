// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anumber

// ANumber is a signed, arbitrary-precision rational/fixed-point number with
// a decimal display scale layered on top of a binary magnitude. A nonzero
// ANumber represents
//
//	sign * mant * 2**(-exp*WordBits) * 10**tensExp
//
// where mant is an unsigned little-endian Word vector (its low exp Words are
// the fractional part), exp >= 0 counts fractional Words, and tensExp is an
// independent decimal exponent: it exists purely to let decimal literals
// such as "1.1" round-trip through String without being forced through a
// binary approximation and back.
//
// The zero value is ready to use and represents 0 at precision 0.
type ANumber struct {
	small    [smallVec]Word // inline storage for small magnitudes
	mant     vec            // magnitude, normalized (no high zero Words)
	exp      int            // fractional Word count, exp >= 0
	neg      bool           // sign; always false when mant is zero
	precBits uint           // requested precision, in bits (0 means unset/exact)
	tensExp  int            // decimal exponent
}

// NewInt returns a new ANumber set to the int64 value x.
func NewInt(x int64) *ANumber {
	z := new(ANumber)
	return z.SetInt64(x)
}

// SetInt64 sets z to x and returns z.
func (z *ANumber) SetInt64(x int64) *ANumber {
	neg := x < 0
	ux := uint64(x)
	if neg {
		ux = uint64(-x)
	}
	return z.setUint64Signed(ux, neg)
}

// SetUint64 sets z to x and returns z.
func (z *ANumber) SetUint64(x uint64) *ANumber {
	return z.setUint64Signed(x, false)
}

func (z *ANumber) setUint64Signed(x uint64, neg bool) *ANumber {
	switch {
	case x == 0:
		z.setMant(nil)
	case _W >= 64:
		z.setMant(vec{Word(x)})
	default: // _W == 32
		z.setMant(vec{Word(x), Word(x >> 32)})
	}
	z.mant = z.mant.norm()
	z.exp = 0
	z.tensExp = 0
	z.neg = neg && len(z.mant) != 0
	return z
}

// setMant copies v into z's storage, using the inline array when it fits.
func (z *ANumber) setMant(v vec) {
	if len(v) <= smallVec {
		copy(z.small[:], v)
		for i := len(v); i < smallVec; i++ {
			z.small[i] = 0
		}
		z.mant = z.small[:len(v)]
		return
	}
	z.mant = append(vec(nil), v...)
}

// Copy sets z to a copy of x and returns z.
func (z *ANumber) Copy(x *ANumber) *ANumber {
	if z == x {
		return z
	}
	z.setMant(x.mant)
	z.exp = x.exp
	z.neg = x.neg
	z.precBits = x.precBits
	z.tensExp = x.tensExp
	return z
}

// Prec returns z's precision in bits. A precision of 0 means the value is
// exact (e.g. an integer literal) rather than rounded to a bit budget.
//
// The original C++ implementation this type is modeled on defined its
// Precision accessor as `return !iPrecision;`, which negates the stored
// precision into a boolean-ish value and is almost certainly a copy/paste
// bug (the surrounding code otherwise treats precision as a bit count, not
// a flag). Prec returns the stored value directly.
func (z *ANumber) Prec() uint { return z.precBits }

// SetPrec sets z's precision to prec bits and returns z. It does not itself
// round z's magnitude; call RoundBits to do that.
func (z *ANumber) SetPrec(prec uint) *ANumber {
	z.precBits = prec
	return z
}

// TensExp returns the decimal exponent layered on top of z's binary
// magnitude.
func (z *ANumber) TensExp() int { return z.tensExp }

// SetTensExp sets z's decimal exponent and returns z.
func (z *ANumber) SetTensExp(e int) *ANumber {
	z.tensExp = e
	return z
}

// Sign returns -1, 0, or +1 depending on the sign of z.
func (z *ANumber) Sign() int {
	if len(z.mant) == 0 {
		return 0
	}
	if z.neg {
		return -1
	}
	return 1
}

// IsZero reports whether z == 0.
func (z *ANumber) IsZero() bool { return len(z.mant) == 0 }

// Negate sets z to -x and returns z.
func (z *ANumber) Negate(x *ANumber) *ANumber {
	z.Copy(x)
	z.neg = !x.neg && !x.IsZero()
	return z
}

// Abs sets z to |x| and returns z.
func (z *ANumber) Abs(x *ANumber) *ANumber {
	z.Copy(x)
	z.neg = false
	return z
}

// cmpMant compares the magnitudes of x and y, returning -1, 0, or 1 as for
// vec.cmp. Both magnitudes are first brought to a common exp and tensExp
// (see align) so that they are compared as pure integers; the alignment is
// applied to scratch copies, never to x or y.
func cmpMant(x, y *ANumber) int {
	xm, ym, _ := align(x, y)
	return xm.cmp(ym)
}

// Cmp compares z and x and returns -1, 0, or +1 as z <, ==, > x.
func (z *ANumber) Cmp(x *ANumber) int {
	zs, xs := z.Sign(), x.Sign()
	switch {
	case zs != xs:
		if zs < xs {
			return -1
		}
		return 1
	case zs == 0:
		return 0
	}
	c := cmpMant(z, x)
	if zs < 0 {
		c = -c
	}
	return c
}

// GreaterThan reports whether z > x.
func (z *ANumber) GreaterThan(x *ANumber) bool { return z.Cmp(x) > 0 }

// LessThan reports whether z < x.
func (z *ANumber) LessThan(x *ANumber) bool { return z.Cmp(x) < 0 }

// bitLen returns the number of significant bits in z's magnitude, ignoring
// exp (i.e. as if z were an integer).
func (z *ANumber) bitLen() int { return z.mant.bitLen() }

// DropTrailZeroes removes any all-zero low-order Words from z's mantissa,
// decrementing exp accordingly, and returns z. It is the word-granularity
// analogue of vec.norm applied to the fractional part: an ANumber carries
// exp extra low Words purely to represent a fraction, and those that happen
// to be zero waste no storage once dropped.
func (z *ANumber) DropTrailZeroes() *ANumber {
	m := z.mant
	i := 0
	for i < len(m) && i < z.exp && m[i] == 0 {
		i++
	}
	if i == 0 {
		return z
	}
	z.setMant(m[i:])
	z.exp -= i
	return z
}

// RoundBits rounds z's magnitude to at most n significant bits, using
// round-half-up (ties away from zero), and returns z. RoundBits is a no-op
// if z already fits in n bits.
//
// exp only ever counts whole dropped Words (see the ANumber doc comment),
// so a rounding step cannot shift the mantissa down by an arbitrary bit
// count the way a plain shr would: doing so would change the value's scale
// by up to a full Word whenever n isn't a multiple of WordBits. Instead the
// low `drop` bits are cleared in place (rounding first, then masking), and
// any whole zero Words this produces at the low end are trimmed by
// DropTrailZeroes exactly as for an exact result, which keeps mant*2**(-exp
// *WordBits) equal to the rounded value at every step.
func (z *ANumber) RoundBits(n uint) *ANumber {
	bl := uint(z.bitLen())
	if bl <= n {
		return z
	}
	drop := bl - n
	half := vec(nil).shl(vec{1}, drop-1)
	rounded := vec(nil).add(z.mant, half)
	z.setMant(clearLowBits(rounded, drop))
	z.DropTrailZeroes()
	z.neg = z.neg && !z.IsZero()
	return z
}

// clearLowBits zeroes the low `drop` bits of z in place and returns
// z.norm(). If drop covers the whole of z, the result is zero.
func clearLowBits(z vec, drop uint) vec {
	if drop == 0 || len(z) == 0 {
		return z.norm()
	}
	wordShift := int(drop / _W)
	if wordShift >= len(z) {
		for i := range z {
			z[i] = 0
		}
		return z.norm()
	}
	for i := 0; i < wordShift; i++ {
		z[i] = 0
	}
	bitShift := drop % _W
	z[wordShift] = (z[wordShift] >> bitShift) << bitShift
	return z.norm()
}

// ChangePrecision rounds z to prec bits (see RoundBits) and records prec as
// z's precision, returning z.
func (z *ANumber) ChangePrecision(prec uint) *ANumber {
	z.RoundBits(prec)
	z.precBits = prec
	return z
}
