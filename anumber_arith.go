// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anumber

// align returns the binary-point-aligned magnitudes of x and y as plain
// integers (i.e. both shifted so that their exp count becomes the larger of
// the two), along with that common exp. The magnitude of the operand with
// the larger tensExp is also multiplied by the power of ten between the
// two, so both magnitudes count units of 10**min(x.tensExp, y.tensExp).
// Neither x nor y is modified.
func align(x, y *ANumber) (xm, ym vec, exp int) {
	exp = x.exp
	if y.exp > exp {
		exp = y.exp
	}
	xm = vec(nil).shl(x.mant, uint(exp-x.exp)*_W)
	ym = vec(nil).shl(y.mant, uint(exp-y.exp)*_W)
	for i := y.tensExp; i < x.tensExp; i++ {
		xm = vec(nil).mul(xm, vec{10})
	}
	for i := x.tensExp; i < y.tensExp; i++ {
		ym = vec(nil).mul(ym, vec{10})
	}
	return
}

// Add sets z = x + y and returns z. Add aligns binary points and decimal
// exponents, then performs
// a signed add by comparing signs: same-sign operands are summed by
// magnitude; opposite-sign operands are subtracted (the larger magnitude
// minus the smaller), with the result's sign taken from the larger operand.
// This mirrors the "align, then switch to subtract on sign mismatch" pattern
// used throughout this package's arithmetic.
func (z *ANumber) Add(x, y *ANumber) *ANumber {
	xm, ym, exp := align(x, y)
	var rm vec
	var neg bool
	if x.neg == y.neg {
		rm = vec(nil).add(xm, ym)
		neg = x.neg
	} else {
		switch xm.cmp(ym) {
		case 0:
			return z.setResult(nil, 0, false, x, y)
		case 1:
			rm = vec(nil).sub(xm, ym)
			neg = x.neg
		default:
			rm = vec(nil).sub(ym, xm)
			neg = y.neg
		}
	}
	return z.setResult(rm, exp, neg, x, y)
}

// Subtract sets z = x - y and returns z.
func (z *ANumber) Subtract(x, y *ANumber) *ANumber {
	negY := new(ANumber).Negate(y)
	return z.Add(x, negY)
}

// setResult installs a raw (exp, neg, mant) result into z, trims trailing
// zero fractional Words, and gives z the smaller of x and y's tensExp (the
// one align scales both magnitudes to) and the larger of their precisions.
func (z *ANumber) setResult(mant vec, exp int, neg bool, x, y *ANumber) *ANumber {
	z.setMant(mant)
	z.exp = exp
	z.neg = neg && !z.IsZero()
	z.tensExp = x.tensExp
	if y.tensExp < z.tensExp {
		z.tensExp = y.tensExp
	}
	prec := x.precBits
	if y.precBits > prec {
		prec = y.precBits
	}
	z.precBits = prec
	z.DropTrailZeroes()
	return z
}

// Multiply sets z = x * y and returns z. Unlike Add/Subtract, multiplication
// needs no sign switching: magnitudes multiply unconditionally and the sign
// is the XOR of the operands' signs. A multiply of two precBits-bounded
// operands can double the Word count of the result, so once the raw product
// is installed, z is rounded back down to the wider of the two operands'
// precision the same way Divide and Sqrt cap their results.
func (z *ANumber) Multiply(x, y *ANumber) *ANumber {
	rm := vec(nil).mul(x.mant, y.mant)
	neg := x.neg != y.neg
	exp := x.exp + y.exp
	tensExp := x.tensExp + y.tensExp
	prec := x.precBits
	if y.precBits > prec {
		prec = y.precBits
	}
	z.setMant(rm)
	z.exp = exp
	z.neg = neg && !z.IsZero()
	z.tensExp = tensExp
	z.precBits = prec
	if prec > 0 {
		z.RoundBits(prec)
	}
	z.DropTrailZeroes()
	return z
}

// Divide sets z = x / y, rounded to z's requested precision (or x's, if z's
// is unset), and returns z. It returns ErrDivByZero if y is zero.
//
// Divide is the floating counterpart of Quo: it pre-shifts the dividend left
// by the target precision (in bits) before dividing, so that the integer
// quotient already carries that many significant bits, whereas Quo performs
// a plain truncating integer division. The two are intentionally separate
// code paths (see Quo) even though they share the same underlying vec.div:
// merging them would make the common case of exact integer division pay for
// a precision-driven pre-shift it does not need.
func (z *ANumber) Divide(x, y *ANumber) (*ANumber, error) {
	if y.IsZero() {
		return z, ErrDivByZero
	}
	prec := z.precBits
	if prec == 0 {
		prec = x.precBits
	}
	if prec == 0 {
		prec = uint(x.bitLen()) + DefaultGuardBits
	}
	// exp only ever counts whole Words (see ANumber's doc comment), so the
	// pre-shift must itself be a whole number of Words: rounding it up to
	// the next Word boundary (rather than using the raw bit count) keeps
	// exp += extraWords exact instead of silently rescaling the quotient
	// by the leftover bits.
	rawShift := prec + uint(y.bitLen())
	extraWords := wordsNeeded(rawShift)
	shift := uint(extraWords) * _W
	xm := vec(nil).shl(x.mant, shift)
	q, _ := vec(nil).div(nil, xm, y.mant)
	exp := x.exp - y.exp + extraWords
	neg := x.neg != y.neg
	z.setMant(q)
	z.exp = exp
	z.neg = neg && !z.IsZero()
	z.tensExp = x.tensExp - y.tensExp
	z.precBits = prec
	z.RoundBits(prec)
	z.DropTrailZeroes()
	return z, nil
}

// QuoRem sets z to the truncated integer quotient and rem to the remainder
// of x / y, and returns z, along with ErrDivByZero if y is zero. This is the
// two-output integer division contract (quotient and remainder both
// produced from one call); Quo is a convenience wrapper around it for
// callers that only need the quotient. Per convention, rem takes the sign
// of x (or zero), while z takes the XOR of the operands' signs. rem may be
// nil to discard the remainder without computing it twice.
func (z *ANumber) QuoRem(rem, x, y *ANumber) (*ANumber, error) {
	if y.IsZero() {
		return z, ErrDivByZero
	}
	tensExp := x.tensExp
	if y.tensExp < tensExp {
		tensExp = y.tensExp
	}
	xm, ym, exp := align(x, y)
	q, r := vec(nil).div(nil, xm, ym)
	neg := x.neg != y.neg
	z.setMant(q)
	z.exp = 0
	z.neg = neg && !z.IsZero()
	z.tensExp = 0
	z.DropTrailZeroes()
	if rem != nil {
		rem.setMant(r)
		rem.exp = exp
		rem.tensExp = tensExp
		rem.neg = x.neg && !rem.IsZero()
		rem.DropTrailZeroes()
	}
	return z, nil
}

// Quo sets z to the truncated integer quotient x / y and returns z, along
// with ErrDivByZero if y is zero. Unlike Divide, Quo performs no
// precision-driven pre-shift: it is plain integer division on the aligned
// magnitudes. It discards the remainder; call QuoRem to get both.
func (z *ANumber) Quo(x, y *ANumber) (*ANumber, error) {
	return z.QuoRem(nil, x, y)
}

// DefaultGuardBits is the number of extra bits of working precision Divide
// uses when neither the receiver nor the dividend x specifies a target
// precision, to absorb rounding in the final RoundBits step.
const DefaultGuardBits = 8

// BaseGcd sets z to the greatest common divisor of the integer parts of x
// and y (both must have exp == 0) and returns z. Signs are ignored: the
// result is always non-negative.
func (z *ANumber) BaseGcd(x, y *ANumber) *ANumber {
	g := vec(nil).gcd(x.mant, y.mant)
	z.setMant(g)
	z.exp = 0
	z.neg = false
	z.tensExp = 0
	return z
}

// NormalizeFloat rescales z so that its decimal exponent tensExp is folded
// back into the binary magnitude as closely as the word-vector
// representation allows, leaving tensExp at 0. This is the operation that
// makes a literal like "12.5e3" converge to a single magnitude/exp pair
// instead of carrying an unresolved decimal scale forever; repeated
// arithmetic on un-normalized floats would otherwise accumulate a growing
// tensExp with no way to compare magnitudes cheaply.
func (z *ANumber) NormalizeFloat(x *ANumber) *ANumber {
	z.Copy(x)
	if z.tensExp == 0 || z.IsZero() {
		return z
	}
	ten := vec{10}
	if z.tensExp > 0 {
		scale := vec(nil)
		pow := vec{1}
		for i := 0; i < z.tensExp; i++ {
			pow = pow.mul(pow, ten)
		}
		scale = pow
		z.setMant(vec(nil).mul(z.mant, scale))
	} else {
		prec := z.precBits
		if prec == 0 {
			prec = uint(z.bitLen()) + DefaultGuardBits
		}
		pow := vec{1}
		for i := 0; i < -z.tensExp; i++ {
			pow = pow.mul(pow, ten)
		}
		// As in Divide, the pre-shift must land on a whole Word boundary
		// for z.exp += extraWords to stay exact.
		rawShift := prec + uint(pow.bitLen())
		extraWords := wordsNeeded(rawShift)
		shift := uint(extraWords) * _W
		xm := vec(nil).shl(z.mant, shift)
		q, _ := vec(nil).div(nil, xm, pow)
		z.setMant(q)
		z.exp += extraWords
		z.RoundBits(prec)
	}
	z.tensExp = 0
	z.DropTrailZeroes()
	return z
}
