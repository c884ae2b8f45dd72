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

// CipherSource yields uniform draws derived from a salsa20 keystream
// under a caller-supplied key. Two sources with the same key produce
// the same sequence, which makes sampling reproducible without
// touching the clock. A CipherSource is not safe for concurrent use.
type CipherSource struct {
	key *[32]byte
	ctr uint64
}

// NewCipherSource returns an instance of the CipherSource with the
// given key.
func NewCipherSource(key *[32]byte) *CipherSource {
	return &CipherSource{key: key}
}

// Float64 encrypts one zero block under a counter nonce and maps the
// top 53 bits of the keystream into [0, 1).
func (c *CipherSource) Float64() float64 {
	var in, out, nonce [8]byte
	binary.LittleEndian.PutUint64(nonce[:], c.ctr)
	c.ctr++

	salsa20.XORKeyStream(out[:], in[:], nonce[:], c.key)

	u := binary.LittleEndian.Uint64(out[:]) >> 11
	return float64(u) / (1 << 53)
}
