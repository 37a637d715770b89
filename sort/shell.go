// Copyright 2025 futils Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sort

import "golang.org/x/exp/constraints"

// knuthGap returns the starting gap for a slice of length n: the last term
// of Knuth's sequence k = 3k+1 (starting at 1) still below n/3. Never less
// than 1, so trivial lengths get a single no-op gap-1 pass.
func knuthGap(n int) int {
	k := 1
	for k < n/3 {
		k = 3*k + 1
	}
	return k
}

// hSortFunc runs one interleaved pass with gap h over data: every element
// from data[h:] onward is compared against its predecessor h positions back
// and swapped when out of order, stepping down the stride in units of h.
//
// This is a single sweep of adjacent-in-stride swaps, not a full insertion
// along the stride; the shrinking gap schedule in ShellSortFunc is what
// completes the ordering.
func hSortFunc[T any](data []T, h int, less Less[T]) {
	for i := h; i < len(data); i++ {
		for j := i; j >= h; j -= h {
			if less(data[j], data[j-h]) {
				data[j], data[j-h] = data[j-h], data[j]
			}
		}
	}
}

// ShellSortFunc sorts data in place using the comparator less.
//
// Not stable: gapped swaps can carry an element past an equal one. Runs
// interleaved passes with Knuth's gap sequence, dividing the gap by 3 down
// to the final gap-1 pass. Roughly O(n^1.5) comparisons on random input.
func ShellSortFunc[T any](data []T, less Less[T]) {
	for h := knuthGap(len(data)); h > 0; h /= 3 {
		hSortFunc(data, h, less)
	}
}

// ShellSort sorts data in place in ascending natural order.
func ShellSort[T constraints.Ordered](data []T) {
	ShellSortFunc(data, Ordered[T]())
}
