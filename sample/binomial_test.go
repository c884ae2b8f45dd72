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
	"github.com/lambda-project/lambda/sample"
)

func TestSample_Binomial(t *testing.T) {
	b, err := sample.NewBinomial(20, 0.5)
	assert.NoError(t, err)
	b.Src = testSource()

	vec, err := data.NewRandomIntVector(10000, b)
	assert.NoError(t, err)
	for _, v := range vec {
		assert.True(t, v >= 0 && v <= 20)
	}
	assert.InDelta(t, 10.0, vec.Mean(), 0.2)
	// variance of Bin(n, p) is n*p*(1-p)
	assert.InDelta(t, 5.0, vec.Variance(), 0.3)
}

func TestSample_BinomialDegenerate(t *testing.T) {
	zeroTrials, err := sample.NewBinomial(0, 0.7)
	assert.NoError(t, err)
	v, _ := zeroTrials.Sample()
	assert.Equal(t, 0, v)

	neverWins, err := sample.NewBinomial(50, 0)
	assert.NoError(t, err)
	v, _ = neverWins.Sample()
	assert.Equal(t, 0, v)

	alwaysWins, err := sample.NewBinomial(50, 1)
	assert.NoError(t, err)
	v, _ = alwaysWins.Sample()
	assert.Equal(t, 50, v)

	// a trial count large enough to blow a recursive accumulation
	big, err := sample.NewBinomial(1000000, 0.5)
	assert.NoError(t, err)
	big.Src = testSource()
	v, _ = big.Sample()
	assert.True(t, v > 490000 && v < 510000)
}

func TestSample_BinomialRejectsInvalid(t *testing.T) {
	_, err := sample.NewBinomial(-1, 0.5)
	assert.Error(t, err)
	_, err = sample.NewBinomial(10, -0.5)
	assert.Error(t, err)
	_, err = sample.NewBinomial(10, 1.5)
	assert.Error(t, err)
}
