// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anumber

import "errors"

// Sentinel errors returned by ANumber operations. Unlike math/big-style
// decimal packages, which signal domain errors by panicking with ErrNaN and
// expect a recover() at a Context boundary, ANumber operations return these
// errors directly: there is no implicit panic/recover layer here, and a
// failed operation never mutates its receiver.
var (
	// ErrDivByZero is returned by Divide and Quo when the divisor is zero.
	ErrDivByZero = errors.New("anumber: division by zero")

	// ErrNegativeRoot is returned by Sqrt when the radicand is negative.
	ErrNegativeRoot = errors.New("anumber: square root of negative number")

	// ErrDomainOverflow is returned when an argument is outside the domain
	// an operation accepts: a base outside [2,36] for FromString or [2,32]
	// for the digits/bits conversions, and out-of-domain or overflowing
	// inputs to package fallback.
	ErrDomainOverflow = errors.New("anumber: domain overflow")

	// ErrBadLiteral is returned by FromString when the input does
	// not match the number-literal grammar.
	ErrBadLiteral = errors.New("anumber: malformed numeric literal")
)
