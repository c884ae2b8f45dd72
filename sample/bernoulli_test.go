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

package sample_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lambda-project/lambda/data"
	"github.com/lambda-project/lambda/internal"
	"github.com/lambda-project/lambda/sample"
)

func TestSample_Bernoulli(t *testing.T) {
	b, err := sample.NewBernoulli(0.3)
	assert.NoError(t, err)
	b.Src = testSource()

	vec, err := data.NewRandomIntVector(100000, b)
	assert.NoError(t, err)
	for _, v := range vec {
		assert.True(t, v == 0 || v == 1)
	}
	assert.InDelta(t, 0.3, vec.Mean(), 0.01)

	// degenerate parameters are valid and deterministic
	zero, _ := sample.NewBernoulli(0)
	v, _ := zero.Sample()
	assert.Equal(t, 0, v)
	one, _ := sample.NewBernoulli(1)
	v, _ = one.Sample()
	assert.Equal(t, 1, v)
}

func TestSample_BernoulliRejectsOutOfRange(t *testing.T) {
	// both bounds must be enforced together
	_, err := sample.NewBernoulli(-0.1)
	assert.Equal(t, internal.InvalidProbability, err)
	_, err = sample.NewBernoulli(1.1)
	assert.Equal(t, internal.InvalidProbability, err)
}
