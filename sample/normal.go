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

	"github.com/pkg/errors"

	"github.com/lambda-project/lambda/internal"
)

// maxRejections bounds the rejection loop of the polar method. The
// expected number of iterations per sample is 4/pi, about 1.27, so
// the ceiling is never reached with a sound source; hitting it means
// the source is broken and is reported as an error.
const maxRejections = 1024

// Normal samples random values from the normal (Gaussian)
// distribution with mean Mu and standard deviation Sigma, using the
// polar variant of the Box-Muller transform.
type Normal struct {
	Mu    float64
	Sigma float64
	Src   Source
}

// NewNormal returns an instance of the Normal sampler.
// It requires sigma > 0.
func NewNormal(mu, sigma float64) (*Normal, error) {
	if sigma <= 0 {
		return nil, internal.InvalidSigma
	}
	return &Normal{Mu: mu, Sigma: sigma}, nil
}

// NewStandardNormal returns a Normal sampler with mu = 0 and
// sigma = 1.
func NewStandardNormal() *Normal {
	return &Normal{Mu: 0, Sigma: 1}
}

// Sample draws a point (u, v) uniformly on [-1, 1) x [-1, 1) and
// rejects it unless it falls inside the unit disc, excluding the
// origin. The loop is iterative, not recursive, so an unlucky run
// of rejections cannot exhaust the stack.
func (n *Normal) Sample() (float64, error) {
	src := source(n.Src)
	for i := 0; i < maxRejections; i++ {
		u := 2*src.Float64() - 1
		v := 2*src.Float64() - 1
		r := u*u + v*v
		if r == 0 || r >= 1 {
			continue
		}
		return n.Mu + n.Sigma*u*math.Sqrt(-2*math.Log(r)/r), nil
	}
	return 0, errors.Errorf("no draw accepted after %d rejections", maxRejections)
}
