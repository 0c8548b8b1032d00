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

package sample_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/weilcrypt/gobf/internal/primes"
	"github.com/weilcrypt/gobf/sample"
)

func TestPrimeSamplerWithinBoundsAndPrime(t *testing.T) {
	s := sample.NewPrime(big.NewInt(1000), big.NewInt(1100))
	for i := 0; i < 10; i++ {
		p, err := s.Sample()
		assert.NoError(t, err)
		assert.True(t, p.Cmp(big.NewInt(1000)) >= 0)
		assert.True(t, p.Cmp(big.NewInt(1100)) <= 0)
		assert.True(t, primes.IsProbablePrime(p, 40))
	}
}

func TestBitStringSamplerUsesFullEntropy(t *testing.T) {
	s := sample.NewBitString(20)
	v, err := s.Sample()
	assert.NoError(t, err)
	assert.True(t, v.Sign() >= 0)
	assert.True(t, v.BitLen() <= 20)
}

func TestBitStringSamplerVaries(t *testing.T) {
	s := sample.NewBitString(64)
	a, err := s.Sample()
	assert.NoError(t, err)
	b, err := s.Sample()
	assert.NoError(t, err)
	// Overwhelmingly unlikely to collide at 64 bits; guards against a
	// sampler that accidentally reads zero bytes of entropy.
	assert.NotEqual(t, a, b)
}

func TestSamplerInterfaceSatisfied(t *testing.T) {
	var _ sample.Sampler = sample.NewUniform(big.NewInt(10))
	var _ sample.Sampler = sample.NewPrime(big.NewInt(1000), big.NewInt(1100))
}
