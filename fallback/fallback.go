// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fallback implements the double-precision (float64) transcendental
// functions the original computer-algebra system fell back to whenever a
// caller did not need arbitrary-precision results: sin, cos, tan, the
// inverse trig functions, exp, ln, power, sqrt, pi, floor, ceiling, and mod.
// Arbitrary-precision transcendentals are out of scope for this module (see
// the anumber package's design notes); this package is the explicitly
// permitted float64-backed substitute, bridging through ANumber.Float64 and
// ANumber.SetFloat64.
package fallback

import (
	"math"

	"github.com/go-anumber/anumber"
)

// toFloat converts x to float64, returning an error if it overflows.
func toFloat(x *anumber.ANumber) (float64, error) {
	f, ok := x.Float64()
	if !ok {
		return 0, anumber.ErrDomainOverflow
	}
	return f, nil
}

// Sin sets z to sin(x) (x in radians) and returns z.
func Sin(z, x *anumber.ANumber) (*anumber.ANumber, error) {
	f, err := toFloat(x)
	if err != nil {
		return z, err
	}
	return z.SetFloat64(math.Sin(f)), nil
}

// Cos sets z to cos(x) and returns z.
func Cos(z, x *anumber.ANumber) (*anumber.ANumber, error) {
	f, err := toFloat(x)
	if err != nil {
		return z, err
	}
	return z.SetFloat64(math.Cos(f)), nil
}

// Tan sets z to tan(x) and returns z.
func Tan(z, x *anumber.ANumber) (*anumber.ANumber, error) {
	f, err := toFloat(x)
	if err != nil {
		return z, err
	}
	return z.SetFloat64(math.Tan(f)), nil
}

// ArcSin sets z to asin(x) and returns z. It returns ErrDomainOverflow if x
// is outside [-1, 1].
func ArcSin(z, x *anumber.ANumber) (*anumber.ANumber, error) {
	f, err := toFloat(x)
	if err != nil {
		return z, err
	}
	if f < -1 || f > 1 {
		return z, anumber.ErrDomainOverflow
	}
	return z.SetFloat64(math.Asin(f)), nil
}

// ArcCos sets z to acos(x) and returns z. It returns ErrDomainOverflow if x
// is outside [-1, 1].
func ArcCos(z, x *anumber.ANumber) (*anumber.ANumber, error) {
	f, err := toFloat(x)
	if err != nil {
		return z, err
	}
	if f < -1 || f > 1 {
		return z, anumber.ErrDomainOverflow
	}
	return z.SetFloat64(math.Acos(f)), nil
}

// ArcTan sets z to atan(x) and returns z.
func ArcTan(z, x *anumber.ANumber) (*anumber.ANumber, error) {
	f, err := toFloat(x)
	if err != nil {
		return z, err
	}
	return z.SetFloat64(math.Atan(f)), nil
}

// Exp sets z to e**x and returns z.
func Exp(z, x *anumber.ANumber) (*anumber.ANumber, error) {
	f, err := toFloat(x)
	if err != nil {
		return z, err
	}
	return z.SetFloat64(math.Exp(f)), nil
}

// Ln sets z to the natural log of x and returns z. It returns
// ErrDomainOverflow if x <= 0.
func Ln(z, x *anumber.ANumber) (*anumber.ANumber, error) {
	f, err := toFloat(x)
	if err != nil {
		return z, err
	}
	if f <= 0 {
		return z, anumber.ErrDomainOverflow
	}
	return z.SetFloat64(math.Log(f)), nil
}

// Power sets z to x**y and returns z.
func Power(z, x, y *anumber.ANumber) (*anumber.ANumber, error) {
	fx, err := toFloat(x)
	if err != nil {
		return z, err
	}
	fy, err := toFloat(y)
	if err != nil {
		return z, err
	}
	return z.SetFloat64(math.Pow(fx, fy)), nil
}

// Sqrt sets z to the double-precision square root of x. Prefer
// (*anumber.ANumber).Sqrt for an arbitrary-precision result; this exists so
// callers that have already dropped into the float64 fallback path (e.g.
// while evaluating sqrt as part of a larger expression containing sin/cos)
// don't need to switch back to the exact algorithm mid-expression.
func Sqrt(z, x *anumber.ANumber) (*anumber.ANumber, error) {
	f, err := toFloat(x)
	if err != nil {
		return z, err
	}
	if f < 0 {
		return z, anumber.ErrNegativeRoot
	}
	return z.SetFloat64(math.Sqrt(f)), nil
}

// Pi returns a float64-precision approximation of pi as an ANumber.
func Pi(z *anumber.ANumber) *anumber.ANumber {
	return z.SetFloat64(math.Pi)
}

// Floor sets z to the largest integer <= x and returns z.
func Floor(z, x *anumber.ANumber) (*anumber.ANumber, error) {
	f, err := toFloat(x)
	if err != nil {
		return z, err
	}
	return z.SetFloat64(math.Floor(f)), nil
}

// Ceil sets z to the smallest integer >= x and returns z.
func Ceil(z, x *anumber.ANumber) (*anumber.ANumber, error) {
	f, err := toFloat(x)
	if err != nil {
		return z, err
	}
	return z.SetFloat64(math.Ceil(f)), nil
}

// Mod sets z to the floating-point remainder of x/y (same sign as x, per
// math.Mod) and returns z.
func Mod(z, x, y *anumber.ANumber) (*anumber.ANumber, error) {
	fx, err := toFloat(x)
	if err != nil {
		return z, err
	}
	fy, err := toFloat(y)
	if err != nil {
		return z, err
	}
	if fy == 0 {
		return z, anumber.ErrDivByZero
	}
	return z.SetFloat64(math.Mod(fx, fy)), nil
}
