// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anumber

import "strconv"

// Float64 returns the nearest float64 to z and a bool reporting whether z's
// magnitude fits without overflowing to +/-Inf. It is the bridge used by
// package fallback to hand z off to the standard library's float64 math
// functions for transcendentals, which this package does not implement at
// arbitrary precision (see fallback's package doc).
func (z *ANumber) Float64() (float64, bool) {
	f, err := strconv.ParseFloat(z.String(), 64)
	if err != nil {
		return 0, false
	}
	return f, !isInf(f)
}

func isInf(f float64) bool {
	return f > maxFloat64 || f < -maxFloat64
}

const maxFloat64 = 1.797693134862315708145274237317043567981e+308

// SetFloat64 sets z to the decimal representation of f and returns z. It
// round-trips through strconv's shortest decimal representation, so
// SetFloat64(x).Float64() reproduces x exactly for any finite x.
func (z *ANumber) SetFloat64(f float64) *ANumber {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	z.FromString(normalizeFloatLiteral(s), 10)
	return z
}

// normalizeFloatLiteral returns s unchanged: strconv.FormatFloat already
// writes the lowercase 'e' exponent marker for the 'g' verb, which
// FromString's grammar accepts.
func normalizeFloatLiteral(s string) string { return s }
