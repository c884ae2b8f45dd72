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
	"github.com/lambda-project/lambda/sample"
)

// testSource returns a reproducible source so that the statistical
// bounds below cannot flake.
func testSource() sample.Source {
	var seed [32]byte
	for i := range seed {
		seed[i] = byte(i * 7)
	}
	return sample.NewChaChaSource(seed)
}

// constSource feeds samplers a fixed value, for driving edge cases.
type constSource float64

func (c constSource) Float64() float64 {
	return float64(c)
}
