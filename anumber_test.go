// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anumber

import "testing"

func TestSetIntSign(t *testing.T) {
	tests := []struct {
		x        int64
		wantSign int
	}{
		{0, 0}, {5, 1}, {-5, -1}, {1 << 40, 1}, {-(1 << 40), -1},
	}
	for _, tc := range tests {
		z := NewInt(tc.x)
		if got := z.Sign(); got != tc.wantSign {
			t.Errorf("NewInt(%d).Sign() = %d, want %d", tc.x, got, tc.wantSign)
		}
	}
}

func TestCmp(t *testing.T) {
	tests := []struct {
		a, b int64
		want int
	}{
		{1, 2, -1}, {2, 1, 1}, {5, 5, 0}, {-5, 5, -1}, {-5, -5, 0}, {0, -1, 1},
	}
	for _, tc := range tests {
		a, b := NewInt(tc.a), NewInt(tc.b)
		if got := a.Cmp(b); got != tc.want {
			t.Errorf("Cmp(%d,%d) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestCopyIndependence(t *testing.T) {
	a := NewInt(42)
	b := new(ANumber).Copy(a)
	b.Negate(b)
	if a.Sign() != 1 {
		t.Errorf("Copy aliased storage: a.Sign() = %d after mutating b", a.Sign())
	}
}

func TestNegateAbs(t *testing.T) {
	a := NewInt(-7)
	n := new(ANumber).Negate(a)
	if n.Sign() != 1 {
		t.Errorf("Negate(-7).Sign() = %d, want 1", n.Sign())
	}
	abs := new(ANumber).Abs(a)
	if abs.Sign() != 1 {
		t.Errorf("Abs(-7).Sign() = %d, want 1", abs.Sign())
	}
	z := new(ANumber).Negate(NewInt(0))
	if z.Sign() != 0 {
		t.Errorf("Negate(0).Sign() = %d, want 0", z.Sign())
	}
}

func TestRoundBits(t *testing.T) {
	x := NewInt(0xFF) // 255, 8 bits
	before := x.bitLen()
	x.RoundBits(4)
	// RoundBits only clears low-order bits (rounding half-up first); it
	// never rescales the value, so bitLen can grow at most one bit from
	// the rounding carry, and the low 4 bits must now read zero.
	if x.bitLen() > before+1 {
		t.Errorf("RoundBits(4) grew bitLen() from %d to %d", before, x.bitLen())
	}
	if len(x.mant) == 0 || x.mant[0]&0xF != 0 {
		t.Errorf("RoundBits(4) left low 4 bits nonzero: mant=%v", x.mant)
	}
}
