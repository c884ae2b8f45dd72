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

package lcg

import "time"

// GenerateSeed returns a non-negative seed derived from the
// nanosecond clock. This is the only entropy source in the package:
// callers that need reproducible sequences must supply their own
// seed (see Stream) instead of relying on it. If the raw reading is
// negative (the epoch of the monotonic clock is arbitrary) the value
// is negated.
func GenerateSeed() int64 {
	t := time.Now().UnixNano()
	if t < 0 {
		return -t
	}
	return t
}
