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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/weilcrypt/gobf/sample"
)

func TestDeterministicRepeatsUnderSameKey(t *testing.T) {
	var key [32]byte
	for i := range key {
		key[i] = byte(i)
	}

	a := make([]byte, 64)
	_, err := sample.NewDeterministic(&key).Read(a)
	assert.NoError(t, err)

	b := make([]byte, 64)
	_, err = sample.NewDeterministic(&key).Read(b)
	assert.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestDeterministicDiffersUnderDifferentKeys(t *testing.T) {
	var key1, key2 [32]byte
	for i := range key1 {
		key1[i] = byte(i)
		key2[i] = byte(i + 1)
	}

	a := make([]byte, 64)
	_, err := sample.NewDeterministic(&key1).Read(a)
	assert.NoError(t, err)

	b := make([]byte, 64)
	_, err = sample.NewDeterministic(&key2).Read(b)
	assert.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestDeterministicAdvancesAcrossReads(t *testing.T) {
	var key [32]byte
	d := sample.NewDeterministic(&key)

	first := make([]byte, 32)
	_, err := d.Read(first)
	assert.NoError(t, err)

	second := make([]byte, 32)
	_, err = d.Read(second)
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
}
