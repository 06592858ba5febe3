// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anumber

import "testing"

func vecFromUint64(x uint64) vec {
	if _W >= 64 {
		return vec{Word(x)}.norm()
	}
	return vec{Word(x), Word(x >> 32)}.norm()
}

func TestVecAddSub(t *testing.T) {
	tests := []struct{ x, y uint64 }{
		{0, 0}, {1, 1}, {1, 0}, {0xffffffff, 1}, {123456789, 987654321},
	}
	for _, tc := range tests {
		x, y := vecFromUint64(tc.x), vecFromUint64(tc.y)
		sum := vec(nil).add(x, y)
		if got := vecFromUint64(tc.x + tc.y); sum.cmp(got) != 0 {
			t.Errorf("%d+%d: got %v want %v", tc.x, tc.y, sum, got)
		}
		if tc.x >= tc.y {
			diff := vec(nil).sub(x, y)
			if got := vecFromUint64(tc.x - tc.y); diff.cmp(got) != 0 {
				t.Errorf("%d-%d: got %v want %v", tc.x, tc.y, diff, got)
			}
		}
	}
}

func TestVecMul(t *testing.T) {
	tests := []struct{ x, y uint64 }{
		{0, 5}, {1, 1}, {12345, 6789}, {0xffffffff, 0xffffffff},
	}
	for _, tc := range tests {
		x, y := vecFromUint64(tc.x), vecFromUint64(tc.y)
		got := vec(nil).mul(x, y)
		want := vecFromUint64(tc.x * tc.y)
		if got.cmp(want) != 0 {
			t.Errorf("%d*%d: got %v want %v", tc.x, tc.y, got, want)
		}
	}
}

func TestVecDivW(t *testing.T) {
	tests := []struct{ x, y uint64 }{
		{100, 7}, {0, 5}, {999999999999, 999999937}, {1 << 40, 3},
	}
	for _, tc := range tests {
		x, y := vecFromUint64(tc.x), vecFromUint64(tc.y)
		q, r := vec(nil).div(nil, x, y)
		if got := vecFromUint64(tc.x / tc.y); q.cmp(got) != 0 {
			t.Errorf("%d/%d: q = %v want %v", tc.x, tc.y, q, got)
		}
		if got := vecFromUint64(tc.x % tc.y); r.cmp(got) != 0 {
			t.Errorf("%d%%%d: r = %v want %v", tc.x, tc.y, r, got)
		}
	}
}

func TestVecDivLarge(t *testing.T) {
	// construct two multi-Word operands: x = y*q + r with q, r chosen so
	// that y spans more than one Word, forcing divLarge.
	y := vec(nil).shl(vec{1}, _W+3)
	y = y.add(y, vec{12345})
	q := vecFromUint64(987654321)
	x := vec(nil).mul(y, q)
	r := vecFromUint64(42)
	x = x.add(x, r)

	gotQ, gotR := vec(nil).div(nil, x, y)
	if gotQ.cmp(q) != 0 {
		t.Errorf("divLarge quotient = %v, want %v", gotQ, q)
	}
	if gotR.cmp(r) != 0 {
		t.Errorf("divLarge remainder = %v, want %v", gotR, r)
	}
}

func TestVecShifts(t *testing.T) {
	x := vecFromUint64(0x1234)
	s := vec(nil).shl(x, 8)
	if got := vecFromUint64(0x1234 << 8); s.cmp(got) != 0 {
		t.Errorf("shl: got %v want %v", s, got)
	}
	r := vec(nil).shr(s, 8)
	if r.cmp(x) != 0 {
		t.Errorf("shr(shl(x,8),8): got %v want %v", r, x)
	}
}

func TestVecGcd(t *testing.T) {
	tests := []struct{ a, b, want uint64 }{
		{48, 18, 6}, {17, 5, 1}, {0, 7, 7}, {270, 192, 6},
	}
	for _, tc := range tests {
		got := vec(nil).gcd(vecFromUint64(tc.a), vecFromUint64(tc.b))
		if got.cmp(vecFromUint64(tc.want)) != 0 {
			t.Errorf("gcd(%d,%d) = %v, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestVecCmp(t *testing.T) {
	a := vecFromUint64(100)
	b := vecFromUint64(200)
	if a.cmp(b) >= 0 {
		t.Errorf("100 should compare less than 200")
	}
	if a.cmp(a) != 0 {
		t.Errorf("a should compare equal to itself")
	}
}
