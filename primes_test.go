// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anumber

import "testing"

func TestIsPrimeSmallKnown(t *testing.T) {
	primes := []uint64{2, 3, 5, 7, 11, 13, 97, 7919, 104729}
	for _, p := range primes {
		prime, ok := IsPrimeSmall(p)
		if !ok {
			t.Fatalf("IsPrimeSmall(%d): expected ok=true", p)
		}
		if !prime {
			t.Errorf("IsPrimeSmall(%d) = false, want true", p)
		}
	}
	composites := []uint64{0, 1, 4, 6, 9, 100, 7920}
	for _, c := range composites {
		prime, ok := IsPrimeSmall(c)
		if !ok {
			t.Fatalf("IsPrimeSmall(%d): expected ok=true", c)
		}
		if prime {
			t.Errorf("IsPrimeSmall(%d) = true, want false", c)
		}
	}
}

func TestIsPrimeSmallOutOfRange(t *testing.T) {
	_, ok := IsPrimeSmall(primesTableLimit + 1)
	if ok {
		t.Errorf("IsPrimeSmall beyond table limit should report ok=false")
	}
}
