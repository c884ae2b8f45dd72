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

	cc "github.com/nixberg/chacha-rng-go"
)

// ChaChaSource yields uniform draws from a ChaCha8 stream under a
// caller-supplied seed. Like CipherSource it is reproducible per
// seed; it is the faster of the two keyed sources. A ChaChaSource is
// not safe for concurrent use.
type ChaChaSource struct {
	s *cc.ChaCha
}

// NewChaChaSource returns an instance of the ChaChaSource with the
// given seed.
func NewChaChaSource(seed [32]byte) *ChaChaSource {
	var seed32 [8]uint32
	for i := range seed32 {
		seed32[i] = binary.LittleEndian.Uint32(seed[4*i:])
	}
	return &ChaChaSource{s: cc.Seeded8(seed32, 0)}
}

// Float64 returns the next draw of the stream in [0, 1).
func (c *ChaChaSource) Float64() float64 {
	return c.s.Float64()
}
