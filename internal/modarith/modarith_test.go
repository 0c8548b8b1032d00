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

package modarith_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/weilcrypt/gobf/internal/modarith"
)

func TestExpMod(t *testing.T) {
	got := modarith.ExpMod(big.NewInt(4), big.NewInt(13), big.NewInt(497))
	assert.Equal(t, big.NewInt(445), got)
}

func TestExpModZeroExponent(t *testing.T) {
	got := modarith.ExpMod(big.NewInt(123), big.NewInt(0), big.NewInt(97))
	assert.Equal(t, big.NewInt(1), got)
}

func TestInverse(t *testing.T) {
	q := big.NewInt(13)
	for a := int64(1); a < 13; a++ {
		inv := modarith.Inverse(big.NewInt(a), q)
		prod := new(big.Int).Mod(new(big.Int).Mul(big.NewInt(a), inv), q)
		assert.Equal(t, big.NewInt(1), prod)
	}
}

func TestInverseZeroPanics(t *testing.T) {
	assert.Panics(t, func() {
		modarith.Inverse(big.NewInt(0), big.NewInt(13))
	})
}
