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

package stat

import (
	"math"

	"github.com/lambda-project/lambda/internal"
)

// Pnorm returns the cumulative distribution function of the normal
// distribution with mean mu and standard deviation sigma, evaluated
// at x: the probability that a sample is at most x. The name follows
// the function of the same purpose in R. It requires sigma > 0.
// Accuracy is bounded by the Erf approximation it is built on.
func Pnorm(x, mu, sigma float64) (float64, error) {
	if sigma <= 0 {
		return 0, internal.InvalidSigma
	}
	return 0.5 * (1 + Erf((x-mu)/(math.Sqrt2*sigma))), nil
}

// PnormStd is the standard-normal specialization of Pnorm, with
// mu = 0 and sigma = 1.
func PnormStd(x float64) float64 {
	return 0.5 * (1 + Erf(x/math.Sqrt2))
}
