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

// Package data provides vector structures filled from samplers, the
// sample moments used to check them, and a permutation enumerator.
// The vector constructors are the batch form of every sampler: the
// size contract (negative is an error, zero yields an empty vector)
// lives here once instead of being repeated per distribution.
package data

import (
	"math"

	"github.com/lambda-project/lambda/internal"
	"github.com/lambda-project/lambda/sample"
)

// Vector wraps a slice of float64 elements.
type Vector []float64

// NewVector returns a new Vector instance.
func NewVector(coordinates []float64) Vector {
	return Vector(coordinates)
}

// NewRandomVector returns a new Vector instance with elements
// independently drawn, in order, by the provided sample.Sampler.
// A negative len is an error; len 0 yields an empty vector.
func NewRandomVector(len int, sampler sample.Sampler) (Vector, error) {
	if len < 0 {
		return nil, internal.InvalidSize
	}

	vec := make([]float64, len)
	var err error

	for i := 0; i < len; i++ {
		vec[i], err = sampler.Sample()
		if err != nil {
			return nil, err
		}
	}

	return NewVector(vec), nil
}

// Mean returns the sample mean of the vector. It is NaN for an
// empty vector.
func (v Vector) Mean() float64 {
	sum := 0.0
	for i := 0; i < len(v); i++ {
		sum += v[i]
	}
	return sum / float64(len(v))
}

// Variance returns the biased sample variance of the vector.
func (v Vector) Variance() float64 {
	m := v.Mean()
	sum := 0.0
	for i := 0; i < len(v); i++ {
		d := v[i] - m
		sum += d * d
	}
	return sum / float64(len(v))
}

// StdDev returns the square root of the sample variance.
func (v Vector) StdDev() float64 {
	return math.Sqrt(v.Variance())
}
