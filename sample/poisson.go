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

	"github.com/lambda-project/lambda/internal"
)

// Poisson samples random values from the Poisson distribution with
// rate Lambda. The cumulative distribution function of the Poisson
// distribution is not invertible, so instead of an inverse transform
// the sampler simulates the arrival process it describes:
// exponential inter-arrival times are accumulated until their sum
// reaches 1, and the count of arrivals strictly before that point is
// the sample.
type Poisson struct {
	Lambda float64
	Src    Source
}

// NewPoisson returns an instance of the Poisson sampler.
// It requires lambda > 0.
func NewPoisson(lambda float64) (*Poisson, error) {
	if lambda <= 0 {
		return nil, internal.InvalidRate
	}
	return &Poisson{Lambda: lambda}, nil
}

// Sample accumulates exponential inter-arrival times until the
// running sum reaches 1.
func (p *Poisson) Sample() (int, error) {
	src := source(p.Src)
	sum := 0.0
	n := -1
	for sum < 1 {
		sum += -(1 / p.Lambda) * math.Log(src.Float64())
		n++
	}
	return n, nil
}
