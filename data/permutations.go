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

package data

// Permutations enumerates every ordering of numbers by inserting
// each element at every possible position within the partial
// permutations built so far. For k distinct values it returns
// exactly k! slices; duplicate input values yield duplicate
// permutations. An empty input yields an empty result set.
func Permutations(numbers []int) [][]int {
	if len(numbers) == 0 {
		return nil
	}

	var permutations [][]int
	collectPermutations(numbers, 0, []int{}, &permutations)
	return permutations
}

func collectPermutations(numbers []int, start int, permutation []int, permutations *[][]int) {
	if len(permutation) == len(numbers) {
		*permutations = append(*permutations, permutation)
		return
	}

	for i := 0; i <= len(permutation); i++ {
		next := make([]int, 0, len(permutation)+1)
		next = append(next, permutation[:i]...)
		next = append(next, numbers[start])
		next = append(next, permutation[i:]...)
		collectPermutations(numbers, start+1, next, permutations)
	}
}
