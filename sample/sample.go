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
	"math"

	"github.com/lambda-project/lambda/lcg"
)

// Source yields uniform draws on [0, 1). A sampler with a nil Source
// falls back to the package default, a ClockSource.
type Source interface {
	Float64() float64
}

// Sampler is implemented by samplers of continuous distributions.
type Sampler interface {
	Sample() (float64, error)
}

// IntSampler is implemented by samplers of discrete distributions.
type IntSampler interface {
	Sample() (int, error)
}

// ClockSource draws a fresh seed from the clock on every call and
// runs it through the fixed 64-bit linear congruential generator.
// Consecutive draws are therefore not reproducible; use lcg.Stream,
// CipherSource or ChaChaSource when a repeatable sequence is needed.
type ClockSource struct{}

// NewClockSource returns an instance of the ClockSource.
func NewClockSource() *ClockSource {
	return &ClockSource{}
}

// Float64 maps one generator step into [0, 1). Taking the absolute
// value corrects for the signed wraparound of the generator's
// multiplication; it is a range correction, not a statistical
// transform.
func (c *ClockSource) Float64() float64 {
	v := float64(lcg.Lcg64(lcg.GenerateSeed())) / float64(math.MaxInt64)
	if v < 0 {
		return -v
	}
	return v
}

var defaultSource Source = &ClockSource{}

// source resolves a sampler's Source field against the default.
func source(s Source) Source {
	if s == nil {
		return defaultSource
	}
	return s
}
