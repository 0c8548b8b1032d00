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
	"encoding/binary"

	"golang.org/x/crypto/salsa20"
)

// Deterministic is an io.Reader over salsa20 keystreams under a fixed
// key: the same sequence of reads from a freshly constructed instance
// always yields the same bytes, so it can stand in for crypto/rand.Reader
// wherever this module takes an io.Reader, letting tests reproduce a
// curve sample, an auxiliary pairing point, or an Encrypt/Decrypt call
// exactly.
type Deterministic struct {
	key   *[32]byte
	block uint64
}

// NewDeterministic returns a Deterministic reader keyed by key.
func NewDeterministic(key *[32]byte) *Deterministic {
	return &Deterministic{key: key}
}

// Read fills p with the first len(p) bytes of the salsa20 keystream
// whose nonce is the number of earlier Read calls on d, so each call
// starts a fresh keystream rather than continuing the previous one. It
// never fails.
func (d *Deterministic) Read(p []byte) (int, error) {
	var nonce [8]byte
	binary.LittleEndian.PutUint64(nonce[:], d.block)
	d.block++

	zero := make([]byte, len(p))
	salsa20.XORKeyStream(p, zero, nonce[:], d.key)
	return len(p), nil
}
