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

import "math"

// erfCoef are the coefficients of the rational approximation to the
// error function given by Abramowitz and Stegun, equation 7.1.26.
var erfCoef = [3]float64{0.3480242, -0.0958798, 0.7478556}

// Erf returns a numerical approximation of the error function at x.
// The approximation is Abramowitz and Stegun equation 7.1.26, with a
// maximum absolute error of about 5e-4, floating-point effects
// aside. The raw formula holds only for x >= 0; negative arguments
// are handled through the odd symmetry erf(-x) = -erf(x).
func Erf(x float64) float64 {
	if x < 0 {
		return -Erf(-x)
	}

	t := 1 / (1 + 0.47047*x)
	poly := t * (erfCoef[0] + t*(erfCoef[1]+t*erfCoef[2]))
	return 1 - poly*math.Exp(-x*x)
}
