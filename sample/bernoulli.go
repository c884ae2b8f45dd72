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
	"github.com/lambda-project/lambda/internal"
)

// Bernoulli samples a single trial with success probability P,
// returning 1 on success and 0 on failure.
type Bernoulli struct {
	P   float64
	Src Source
}

// NewBernoulli returns an instance of the Bernoulli sampler.
// It requires 0 <= p <= 1; both bounds are checked.
func NewBernoulli(p float64) (*Bernoulli, error) {
	if !(0 <= p && p <= 1) {
		return nil, internal.InvalidProbability
	}
	return &Bernoulli{P: p}, nil
}

// Sample returns 1 if a standard uniform draw falls below P, else 0.
func (b *Bernoulli) Sample() (int, error) {
	if source(b.Src).Float64() < b.P {
		return 1, nil
	}
	return 0, nil
}
