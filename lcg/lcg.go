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

// Package lcg implements linear congruential pseudo-random number
// generators: the generic recurrence X_{n+1} = (a*X_n + c) mod m,
// two fixed-parameter generators, and sequence forms built by
// threading the generator state from one element to the next.
//
// The generators here are not cryptographically secure and must not
// be used where an adversary may predict or influence the output.
package lcg

import (
	"math"

	"github.com/lambda-project/lambda/internal"
)

// Parameters of the fixed generators. The 64-bit multiplier and
// modulus come from L'Ecuyer's exhaustive search for good 64-bit
// multipliers; the 32-bit set is the minimal-standard generator
// (minstd_rand in C++11).
const (
	Multiplier64 int64 = 5428252657583070383
	Modulus64    int64 = math.MaxInt64 - 4568

	Multiplier32 int64 = 48271
	Increment32  int64 = 1
	Modulus32    int64 = math.MaxInt32
)

// Lcg computes one step of the linear congruential recurrence
// (multiplier*seed + increment) mod modulus. The multiplication is
// expected to wrap around on large multipliers; the wraparound is
// part of the generator and must not be guarded against. A zero
// modulus panics with the runtime's division-by-zero error. Negative
// operands follow truncating modulo, so the result may be negative;
// callers needing a non-negative value must post-process.
func Lcg(seed, multiplier, increment, modulus int64) int64 {
	return (multiplier*seed + increment) % modulus
}

// Lcg64 steps the fixed 64-bit generator with zero increment.
func Lcg64(seed int64) int64 {
	return Lcg(seed, Multiplier64, 0, Modulus64)
}

// Lcg32 steps the minimal-standard generator, narrowing the result
// to 32 bits.
func Lcg32(seed int32) int32 {
	return int32(Lcg(int64(seed), Multiplier32, Increment32, Modulus32))
}

// LcgArray returns a sequence of size values of the recurrence with
// the given parameters, starting from seed. The state is threaded:
// each element is the recurrence applied to the previous one.
// A negative size is an error; size zero yields an empty sequence.
func LcgArray(seed, multiplier, increment, modulus int64, size int) ([]int64, error) {
	if size < 0 {
		return nil, internal.InvalidSize
	}

	out := make([]int64, size)
	x := seed
	for i := 0; i < size; i++ {
		x = Lcg(x, multiplier, increment, modulus)
		out[i] = x
	}
	return out, nil
}

// Lcg64Array returns a state-threaded sequence of the fixed 64-bit
// generator.
func Lcg64Array(seed int64, size int) ([]int64, error) {
	return LcgArray(seed, Multiplier64, 0, Modulus64, size)
}

// Lcg32Array returns a state-threaded sequence of the minimal-standard
// generator, each element narrowed to 32 bits.
func Lcg32Array(seed int32, size int) ([]int32, error) {
	wide, err := LcgArray(int64(seed), Multiplier32, Increment32, Modulus32, size)
	if err != nil {
		return nil, err
	}

	out := make([]int32, len(wide))
	for i, v := range wide {
		out[i] = int32(v)
	}
	return out, nil
}
