// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anumber

// primesTableLimit bounds the odd n for which IsPrimeSmall gives a
// definitive answer: every n below it, and every even n, is answered. It is
// a compile-time constant sized to keep the sieve's
// memory footprint (one bit per odd number below the limit) small while
// still covering the vast majority of primality checks a computer-algebra
// front end issues (trial division by small factors, smoothness checks,
// etc.) without falling through to a caller-supplied probabilistic test.
const primesTableLimit = 1 << 20

var primesSieve = buildPrimesSieve()

// buildPrimesSieve constructs a bitmap of odd numbers below
// primesTableLimit, one bit per candidate (bit i set means 2*i+3 is
// composite; a clear bit means prime),
// using a standard sieve of Eratosthenes. It runs once at package init.
func buildPrimesSieve() []uint64 {
	n := primesTableLimit / 2
	words := (n + 63) / 64
	sieve := make([]uint64, words)
	// composite bits get set; start clear (meaning prime) and flip.
	isComposite := func(i int) bool {
		return sieve[i/64]&(1<<uint(i%64)) != 0
	}
	setComposite := func(i int) {
		sieve[i/64] |= 1 << uint(i%64)
	}
	for i := 0; i*i < n; i++ {
		if isComposite(i) {
			continue
		}
		p := 2*i + 3
		for j := 2*i*i + 6*i + 3; j < n; j += p {
			setComposite(j)
		}
	}
	return sieve
}

// IsPrimeSmall reports whether n is prime, for n < primesTableLimit, using a
// precomputed bitmap sieve. Its second return value is false (an "unknown,
// fall through" sentinel) when n is odd and at or above primesTableLimit;
// even n are always answered definitively. Callers that
// need an answer for larger n must fall back to trial division or a
// probabilistic test (e.g. Miller-Rabin) of their own.
func IsPrimeSmall(n uint64) (prime bool, ok bool) {
	switch {
	case n < 2:
		return false, true
	case n == 2:
		return true, true
	case n%2 == 0:
		return false, true
	case n >= primesTableLimit:
		return false, false
	}
	i := int((n - 3) / 2)
	return primesSieve[i/64]&(1<<uint(i%64)) == 0, true
}
