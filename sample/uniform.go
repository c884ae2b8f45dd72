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

// UniformRange samples random values from the interval [Low, High).
type UniformRange struct {
	Low  float64
	High float64
	Src  Source
}

// NewUniformRange returns an instance of the UniformRange sampler.
// It accepts lower and upper bounds on the sampled values and
// requires low < high.
func NewUniformRange(low, high float64) (*UniformRange, error) {
	if low >= high {
		return nil, internal.InvalidRange
	}
	return &UniformRange{
		Low:  low,
		High: high,
	}, nil
}

// Sample rescales a standard uniform draw into [Low, High). The
// affine transform preserves uniformity.
func (u *UniformRange) Sample() (float64, error) {
	return source(u.Src).Float64()*(u.High-u.Low) + u.Low, nil
}

// Uniform samples random values from the interval [0, 1).
type Uniform struct {
	UniformRange
}

// NewUniform returns an instance of the Uniform sampler.
func NewUniform() *Uniform {
	return &Uniform{UniformRange{Low: 0, High: 1}}
}
