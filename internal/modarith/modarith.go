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

// Package modarith implements the modular exponentiation and Fermat
// inversion primitives shared by fq and fq2. Both reduce to the same
// left-to-right square-and-multiply walk over the exponent's binary
// representation.
package modarith

import "math/big"

// ExpMod computes base^exp mod m using left-to-right square-and-multiply.
// exp must be non-negative. ExpMod does not special-case m == 0; callers
// work exclusively in fields with a positive modulus.
func ExpMod(base, exp, m *big.Int) *big.Int {
	if exp.Sign() < 0 {
		panic("modarith: ExpMod: negative exponent")
	}

	r := new(big.Int).Mod(base, m)
	if exp.Sign() == 0 {
		return big.NewInt(1)
	}

	result := new(big.Int).Set(r)
	for i := exp.BitLen() - 2; i >= 0; i-- {
		result.Mul(result, result)
		result.Mod(result, m)
		if exp.Bit(i) == 1 {
			result.Mul(result, r)
			result.Mod(result, m)
		}
	}

	return result
}

// Inverse computes a^-1 mod q via Fermat's little theorem: a^(q-2) mod q.
// q is assumed prime. Inverse panics if a is congruent to 0 mod q, since
// that is a programmer error (DivisionByZero, not a recoverable failure).
func Inverse(a, q *big.Int) *big.Int {
	r := new(big.Int).Mod(a, q)
	if r.Sign() == 0 {
		panic("modarith: Inverse: division by zero")
	}

	qMinus2 := new(big.Int).Sub(q, big.NewInt(2))
	return ExpMod(r, qMinus2, q)
}
