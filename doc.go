// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package anumber implements the arbitrary-precision numeric core of a small
computer-algebra system: a signed rational/fixed-point number representation
with a decimal scale (ANumber), together with the unsigned word-vector
arithmetic it is built on.

A nonzero ANumber represents

	sign * (mant[0]*WordBase**0 + mant[1]*WordBase**1 + ...) * WordBase**(-exp) * 10**tensExp

where mant is a little-endian Word slice, exp is the number of least
significant Words that are fractional (exp >= 0), and tensExp is a decimal
exponent carried on top of the binary magnitude so that decimal literals
round-trip through String without spurious binary rounding.

The zero value of ANumber is ready to use and represents the number 0 with
precision 0:

	var z ANumber // z is 0

Setters, operations, and predicates follow the same receiver convention as
math/big: operations that produce a result take the result as the receiver
(named z), and their remaining arguments (x, y, ...) are never modified. z may
alias x or y; its storage is reused when possible.

	z.Add(x, y) // z = x + y
	z.Multiply(x, y) // z = x * y

Precision is tracked in bits (ANumber.Prec) rather than digits, following the
binary word-vector representation described in the package's design notes;
ChangePrecision, RoundBits, and NormalizeFloat implement the rounding and
trimming contract that keeps the word vector's invariants (no high zero Words,
zero has a clear sign, and the retained fractional Words obey the bit budget).

Subpackage token implements the Unicode-aware tokenizer that feeds numeric and
symbolic literals to an external parser; subpackage fallback implements the
double-precision transcendental fallback (sin, cos, exp, ...) that the
original system used when arbitrary precision was not required.
*/
package anumber
