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

// Binomial samples the number of successes among N independent
// trials with success probability P.
type Binomial struct {
	N   int
	P   float64
	Src Source
}

// NewBinomial returns an instance of the Binomial sampler.
// It requires n >= 0 and 0 <= p <= 1.
func NewBinomial(n int, p float64) (*Binomial, error) {
	if n < 0 {
		return nil, internal.InvalidTrials
	}
	if !(0 <= p && p <= 1) {
		return nil, internal.InvalidProbability
	}
	return &Binomial{N: n, P: p}, nil
}

// Sample accumulates N Bernoulli trials iteratively, so large trial
// counts cannot exhaust the stack. N = 0 deterministically yields 0.
func (b *Binomial) Sample() (int, error) {
	src := source(b.Src)
	sum := 0
	for i := 0; i < b.N; i++ {
		if src.Float64() < b.P {
			sum++
		}
	}
	return sum, nil
}
