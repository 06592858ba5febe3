// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anumber

import "testing"

func TestDigitsToBitsPathsAgree(t *testing.T) {
	for _, base := range []uint{2, 8, 10, 16, 32} {
		for digits := uint(1); digits < 200; digits++ {
			bits, err := DigitsToBits(digits, base)
			if err != nil {
				t.Fatalf("DigitsToBits(%d, %d): %v", digits, base, err)
			}
			ratBits, err := RatDigitsToBits(digits, base)
			if err != nil {
				t.Fatalf("RatDigitsToBits(%d, %d): %v", digits, base, err)
			}
			if bits != ratBits {
				t.Errorf("base %d: DigitsToBits(%d) = %d, RatDigitsToBits(%d) = %d", base, digits, bits, digits, ratBits)
			}
		}
	}
}

func TestBitsToDigitsPathsAgree(t *testing.T) {
	for _, base := range []uint{2, 8, 10, 16, 32} {
		for bits := uint(1); bits < 200; bits++ {
			digits, err := BitsToDigits(bits, base)
			if err != nil {
				t.Fatalf("BitsToDigits(%d, %d): %v", bits, base, err)
			}
			ratDigits, err := RatBitsToDigits(bits, base)
			if err != nil {
				t.Fatalf("RatBitsToDigits(%d, %d): %v", bits, base, err)
			}
			if digits != ratDigits {
				t.Errorf("base %d: BitsToDigits(%d) = %d, RatBitsToDigits(%d) = %d", base, bits, digits, bits, ratDigits)
			}
		}
	}
}

func TestDigitsToBitsZero(t *testing.T) {
	if b, _ := DigitsToBits(0, 10); b != 0 {
		t.Errorf("DigitsToBits(0, 10) should be 0, got %d", b)
	}
	if b, _ := RatDigitsToBits(0, 10); b != 0 {
		t.Errorf("RatDigitsToBits(0, 10) should be 0, got %d", b)
	}
}

func TestDigitsToBitsBadBase(t *testing.T) {
	if _, err := DigitsToBits(1, 1); err != ErrDomainOverflow {
		t.Errorf("DigitsToBits base 1: got %v, want ErrDomainOverflow", err)
	}
	if _, err := DigitsToBits(1, 33); err != ErrDomainOverflow {
		t.Errorf("DigitsToBits base 33: got %v, want ErrDomainOverflow", err)
	}
	if _, err := RatBitsToDigits(1, 0); err != ErrDomainOverflow {
		t.Errorf("RatBitsToDigits base 0: got %v, want ErrDomainOverflow", err)
	}
	if _, err := RatBitsToDigits(1, 37); err != ErrDomainOverflow {
		t.Errorf("RatBitsToDigits base 37: got %v, want ErrDomainOverflow", err)
	}
}
