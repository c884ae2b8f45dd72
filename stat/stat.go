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

// Package stat provides the mathematical constants and special
// functions used alongside the samplers: a rational approximation to
// the Gaussian error function and the normal cumulative distribution
// function built on it.
package stat

// E is the base of the natural logarithm; it defines the exponential
// and normal densities sampled elsewhere in the library.
const E = 2.7182818284590452354

// PI is the ratio of the circumference of a circle to its diameter.
const PI = 3.14159265358979323846
