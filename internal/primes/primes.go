/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package primes implements a Miller-Rabin probabilistic primality test
// and prime sampling over an interval. It is deliberately independent of
// math/big.Int.ProbablyPrime: the point of this module is to exercise
// the Miller-Rabin witness loop by hand, the way the reference
// implementation does.
package primes

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/weilcrypt/gobf/internal/modarith"
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// witness reports whether a is a Miller-Rabin witness for n's
// compositeness: true means n is definitely composite, false means n
// passes the test for this witness (and may or may not be prime).
func witness(n, a *big.Int) bool {
	nMinus1 := new(big.Int).Sub(n, one)

	k := 0
	q := new(big.Int).Set(nMinus1)
	for q.Bit(0) == 0 {
		q.Rsh(q, 1)
		k++
	}

	val := modarith.ExpMod(a, q, n)
	if val.Cmp(one) == 0 || val.Cmp(nMinus1) == 0 {
		return false
	}

	for i := 0; i < k-1; i++ {
		val.Mod(val.Mul(val, val), n)
		if val.Cmp(nMinus1) == 0 {
			return false
		}
	}

	return true
}

// IsProbablePrime runs the Miller-Rabin test with the given number of
// random bases and reports whether n passes all of them. A true result
// means n is prime with probability at least 1 - 4^-tries; a false
// result means n is definitely composite.
func IsProbablePrime(n *big.Int, tries int) bool {
	if n.Cmp(two) < 0 {
		return false
	}
	if n.Cmp(two) == 0 {
		return true
	}
	if n.Bit(0) == 0 {
		return false
	}

	nMinus1 := new(big.Int).Sub(n, one)
	for i := 0; i < tries; i++ {
		a, err := rand.Int(rand.Reader, new(big.Int).Sub(nMinus1, one))
		if err != nil {
			return false
		}
		a.Add(a, two) // a in [2, n-1]
		if witness(n, a) {
			return false
		}
	}

	return true
}

// RandPrime uniformly samples a prime p with lo <= p <= hi. The
// Miller-Rabin check runs with 40 rounds, matching the confidence level
// fixed elsewhere in this module's parameter generation.
//
// RandPrime returns an error if the interval is too narrow to plausibly
// contain a prime (mirroring the reference implementation's
// `high - low > 50` guard), or if lo > hi.
func RandPrime(lo, hi *big.Int) (*big.Int, error) {
	if lo.Cmp(hi) > 0 {
		return nil, fmt.Errorf("primes: invalid interval [%s, %s]", lo, hi)
	}
	span := new(big.Int).Sub(hi, lo)
	if span.Cmp(big.NewInt(50)) <= 0 {
		return nil, fmt.Errorf("primes: interval [%s, %s] too narrow to reliably contain a prime", lo, hi)
	}

	width := new(big.Int).Add(span, one)
	for {
		candidate, err := rand.Int(rand.Reader, width)
		if err != nil {
			return nil, err
		}
		candidate.Add(candidate, lo)

		if IsProbablePrime(candidate, 40) {
			return candidate, nil
		}
	}
}
