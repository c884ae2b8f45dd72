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

package lcg

import "math"

// Stream is a 64-bit generator with explicit, caller-owned state.
// Two streams created from the same seed produce the same sequence.
// A Stream is not safe for concurrent use.
type Stream struct {
	state int64
}

// NewStream returns a Stream starting from the given seed.
func NewStream(seed int64) *Stream {
	return &Stream{state: seed}
}

// Next advances the stream and returns the new state.
func (s *Stream) Next() int64 {
	s.state = Lcg64(s.state)
	return s.state
}

// Float64 advances the stream and maps the state into [0, 1).
// The absolute value compensates for the signed wraparound of the
// multiplication; it is a range correction, not a statistical
// transform.
func (s *Stream) Float64() float64 {
	v := float64(s.Next()) / float64(math.MaxInt64)
	if v < 0 {
		return -v
	}
	return v
}
