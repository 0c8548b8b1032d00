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

package bitstring_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/weilcrypt/gobf/bitstring"
)

func TestFromBigIntPadsAndTruncates(t *testing.T) {
	assert.Equal(t, "00101", bitstring.FromBigInt(big.NewInt(5), 5).String())
	assert.Equal(t, "101", bitstring.FromBigInt(big.NewInt(5), 3).String())
	assert.Equal(t, "0000000101", bitstring.FromBigInt(big.NewInt(5), 10).String())
}

func TestXorSelfInverse(t *testing.T) {
	a := bitstring.FromBigInt(big.NewInt(0b10110), 5)
	b := bitstring.FromBigInt(big.NewInt(0b01101), 5)

	masked := a.Xor(b)
	assert.True(t, masked.Xor(b).Equal(a))
}

func TestXorMismatchedLengthPanics(t *testing.T) {
	a := bitstring.New(3)
	b := bitstring.New(4)
	assert.Panics(t, func() {
		a.Xor(b)
	})
}

func TestXorKnownVector(t *testing.T) {
	a := bitstring.FromBigInt(big.NewInt(0b101), 3)
	b := bitstring.FromBigInt(big.NewInt(0b111), 3)
	assert.Equal(t, "010", a.Xor(b).String())
}

func TestFromBytes(t *testing.T) {
	got := bitstring.FromBytes([]byte{0x05}, 8)
	assert.Equal(t, "00000101", got.String())
}
