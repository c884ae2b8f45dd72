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

// Exponential samples random values from the exponential distribution
// with rate Lambda, via the inverse of its cumulative distribution
// function.
type Exponential struct {
	Lambda float64
	Src    Source
}

// NewExponential returns an instance of the Exponential sampler.
// It requires lambda > 0.
func NewExponential(lambda float64) (*Exponential, error) {
	if lambda <= 0 {
		return nil, internal.InvalidRate
	}
	return &Exponential{Lambda: lambda}, nil
}

// Sample computes -(1/lambda) * ln(U) for a standard uniform U.
// Should the source ever yield exactly 0, the result is +Inf; the
// value propagates instead of being trapped.
func (e *Exponential) Sample() (float64, error) {
	return -(1 / e.Lambda) * math.Log(source(e.Src).Float64()), nil
}
