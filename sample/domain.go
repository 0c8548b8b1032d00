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

package sample

import (
	"crypto/rand"
	"math/big"

	"github.com/weilcrypt/gobf/internal/primes"
)

// Prime samples a random prime from the interval [lo, hi].
type Prime struct {
	lo, hi *big.Int
}

// NewPrime returns a Prime sampler over [lo, hi].
func NewPrime(lo, hi *big.Int) *Prime {
	return &Prime{lo: lo, hi: hi}
}

// Sample draws a random prime from [lo, hi].
func (p *Prime) Sample() (*big.Int, error) {
	return primes.RandPrime(p.lo, p.hi)
}

// BitString samples n bits of fresh entropy from crypto/rand and
// returns them as the big-endian integer they represent. Unlike a
// naive "read n/2 bytes" shortcut, this reads the full n bits of
// entropy the caller asked for.
type BitString struct {
	n int
}

// NewBitString returns a sampler producing n bits of entropy.
func NewBitString(n int) *BitString {
	return &BitString{n: n}
}

// Sample draws n bits of randomness and returns their big-endian
// integer value, in [0, 2^n).
func (b *BitString) Sample() (*big.Int, error) {
	numBytes := (b.n + 7) / 8
	buf := make([]byte, numBytes)
	if _, err := rand.Read(buf); err != nil {
		return nil, err
	}

	val := new(big.Int).SetBytes(buf)
	over := uint(numBytes*8 - b.n)
	if over > 0 {
		val.Rsh(val, over)
	}
	return val, nil
}
