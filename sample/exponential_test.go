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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lambda-project/lambda/data"
	"github.com/lambda-project/lambda/sample"
)

func TestSample_Exponential(t *testing.T) {
	e, err := sample.NewExponential(2)
	assert.NoError(t, err)
	e.Src = testSource()

	vec, err := data.NewRandomVector(100000, e)
	assert.NoError(t, err)
	// mean and standard deviation of Exp(lambda) are both 1/lambda
	assert.InDelta(t, 0.5, vec.Mean(), 0.02)
	assert.InDelta(t, 0.5, vec.StdDev(), 0.02)
	for _, v := range vec {
		assert.True(t, v >= 0, "exponential sample is negative")
	}

	_, err = sample.NewExponential(0)
	assert.Error(t, err)
	_, err = sample.NewExponential(-1.5)
	assert.Error(t, err)
}

func TestSample_ExponentialZeroDraw(t *testing.T) {
	// a draw of exactly 0 puts ln(0) = -Inf in the transform; the
	// resulting +Inf propagates instead of being trapped
	e, err := sample.NewExponential(1)
	assert.NoError(t, err)
	e.Src = constSource(0)

	v, err := e.Sample()
	assert.NoError(t, err)
	assert.True(t, math.IsInf(v, 1))
}
