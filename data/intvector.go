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

package data

import (
	"github.com/lambda-project/lambda/internal"
	"github.com/lambda-project/lambda/sample"
)

// IntVector wraps a slice of int elements, as produced by the
// discrete samplers.
type IntVector []int

// NewIntVector returns a new IntVector instance.
func NewIntVector(coordinates []int) IntVector {
	return IntVector(coordinates)
}

// NewRandomIntVector returns a new IntVector instance with elements
// independently drawn, in order, by the provided sample.IntSampler.
// The size contract matches NewRandomVector.
func NewRandomIntVector(len int, sampler sample.IntSampler) (IntVector, error) {
	if len < 0 {
		return nil, internal.InvalidSize
	}

	vec := make([]int, len)
	var err error

	for i := 0; i < len; i++ {
		vec[i], err = sampler.Sample()
		if err != nil {
			return nil, err
		}
	}

	return NewIntVector(vec), nil
}

// Mean returns the sample mean of the vector. It is NaN for an
// empty vector.
func (v IntVector) Mean() float64 {
	return v.Float().Mean()
}

// Variance returns the biased sample variance of the vector.
func (v IntVector) Variance() float64 {
	return v.Float().Variance()
}

// Float returns the vector converted to a Vector of float64.
func (v IntVector) Float() Vector {
	vec := make([]float64, len(v))
	for i, x := range v {
		vec[i] = float64(x)
	}
	return NewVector(vec)
}
