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

// Package sample includes samplers for sampling random values
// from different probability distributions.
//
// Package sample provides the Sampler and IntSampler interfaces
// along with implementations for the uniform, exponential,
// Bernoulli, binomial, normal, geometric and Poisson distributions.
// Every sampler consumes draws from a Source of uniform values on
// [0, 1); the default Source reseeds a linear congruential generator
// from the clock on every draw, and deterministic Sources are
// available for reproducible sequences.
//
// Implementations of the two interfaces can be used, for instance,
// to fill vector structures with the desired random data.
package sample
