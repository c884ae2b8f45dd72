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

// Geometric samples the number of failures before the first success
// in a run of trials with success probability P, counting from 0.
type Geometric struct {
	P   float64
	Src Source
}

// NewGeometric returns an instance of the Geometric sampler.
// It requires 0 < p <= 1: at p = 0 the inverse transform divides by
// ln(1) = 0, so the value is rejected here. p = 1 is valid and
// deterministically yields 0.
func NewGeometric(p float64) (*Geometric, error) {
	if !(0 < p && p <= 1) {
		return nil, internal.InvalidSuccessProbability
	}
	return &Geometric{P: p}, nil
}

// Sample computes floor(ln(1-U) / ln(1-P)) for a standard uniform U.
func (g *Geometric) Sample() (int, error) {
	u := source(g.Src).Float64()
	return int(math.Floor(math.Log(1-u) / math.Log(1-g.P))), nil
}
