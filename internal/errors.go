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

package internal

import (
	"errors"
	"fmt"
)

var mustHoldStr = "must hold"

// Validation faults shared across the library. Samplers and batch
// builders fail fast with these instead of clamping or coercing
// their arguments.
var InvalidSize = errors.New("size must be a non-negative integer")
var InvalidProbability = errors.New(fmt.Sprintf("0 <= p <= 1 %s", mustHoldStr))
var InvalidSuccessProbability = errors.New(fmt.Sprintf("0 < p <= 1 %s", mustHoldStr))
var InvalidRate = errors.New(fmt.Sprintf("lambda > 0 %s", mustHoldStr))
var InvalidSigma = errors.New(fmt.Sprintf("sigma > 0 %s", mustHoldStr))
var InvalidTrials = errors.New("number of trials must be a non-negative integer")
var InvalidRange = errors.New(fmt.Sprintf("low < high %s", mustHoldStr))
