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

// Package bitstring represents fixed-length binary strings as used by
// the IBE scheme's session keys, masks, and H2 hash output, plus the
// xor combinator used for one-time-pad style masking.
package bitstring

import (
	"math/big"
	"strings"
)

// BitString is a sequence of bits, each stored as a byte holding 0 or
// 1. Representing bits this way, rather than packing them, mirrors the
// "010101"-style string rendering the hash and masking functions operate
// on and keeps Xor/Equal trivial to read.
type BitString []byte

// New returns the all-zero bit string of length n.
func New(n int) BitString {
	return make(BitString, n)
}

// FromBigInt renders x in binary, zero-padded on the left to at least n
// digits, then keeps the leftmost n characters of that rendering. This
// is the rendering H2 uses to turn its integer output into a bit string
// of the caller's requested length: when x needs more than n bits, the
// most significant n bits are kept and the low-order bits are dropped,
// matching a zero-padded-then-front-truncated format string.
func FromBigInt(x *big.Int, n int) BitString {
	full := x.Text(2)
	if len(full) < n {
		full = strings.Repeat("0", n-len(full)) + full
	} else if len(full) > n {
		full = full[:n]
	}

	b := make(BitString, n)
	for i := 0; i < n; i++ {
		if full[i] == '1' {
			b[i] = 1
		}
	}
	return b
}

// FromBytes reads raw as a big-endian unsigned integer and renders it
// with FromBigInt: zero-padded on the left to n bits, or cut to its most
// significant n bits when it needs more. Leading zero bits of raw are
// not part of that integer, so they are not kept when the value is cut.
func FromBytes(raw []byte, n int) BitString {
	return FromBigInt(new(big.Int).SetBytes(raw), n)
}

// Len returns the number of bits in b.
func (b BitString) Len() int {
	return len(b)
}

// String renders b as a string of '0'/'1' characters.
func (b BitString) String() string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, bit := range b {
		if bit != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Xor returns b XOR o. It panics if the two bit strings differ in
// length, since the scheme only ever xors a message against a mask
// derived to be exactly the message's length.
func (b BitString) Xor(o BitString) BitString {
	if len(b) != len(o) {
		panic("bitstring: operands have different lengths")
	}
	out := make(BitString, len(b))
	for i := range b {
		out[i] = b[i] ^ o[i]
	}
	return out
}

// Equal reports whether b and o hold the same bits.
func (b BitString) Equal(o BitString) bool {
	if len(b) != len(o) {
		return false
	}
	for i := range b {
		if b[i] != o[i] {
			return false
		}
	}
	return true
}
