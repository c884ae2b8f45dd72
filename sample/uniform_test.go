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

	"github.com/lambda-project/lambda/sample"
)

func TestSample_Uniform(t *testing.T) {
	// the default clock-seeded source is part of the contract here
	u := sample.NewUniform()
	sum := 0.0
	for i := 0; i < 100000; i++ {
		v, err := u.Sample()
		assert.NoError(t, err)
		assert.True(t, v >= 0 && v < 1, "uniform sample outside [0, 1)")
		sum += v
	}
	mean := sum / 100000
	assert.InDelta(t, 0.5, mean, 0.02, "mean of uniform samples is off")
}

func TestSample_UniformRange(t *testing.T) {
	u, err := sample.NewUniformRange(-3, 5)
	assert.NoError(t, err)
	u.Src = testSource()

	sum := 0.0
	for i := 0; i < 100000; i++ {
		v, _ := u.Sample()
		assert.True(t, v >= -3 && v < 5, "sample outside [low, high)")
		sum += v
	}
	assert.InDelta(t, 1.0, sum/100000, 0.05)

	_, err = sample.NewUniformRange(2, 2)
	assert.Error(t, err)
	_, err = sample.NewUniformRange(5, -3)
	assert.Error(t, err)
}
