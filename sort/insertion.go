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

// InsertionSortFunc sorts data in place using the comparator less.
//
// Stable: equal elements keep their relative order. Each element is moved
// leftward by adjacent transposition until its predecessor no longer
// strictly exceeds it, so the number of swaps equals the number of
// inversions - quadratic on random input, linear on nearly sorted input.
// Empty and single-element slices are no-ops.
func InsertionSortFunc[T any](data []T, less Less[T]) {
	for i := 1; i < len(data); i++ {
		for j := i; j > 0; j-- {
			if !less(data[j], data[j-1]) {
				break
			}
			data[j], data[j-1] = data[j-1], data[j]
		}
	}
}

// InsertionSort sorts data in place in ascending natural order.
func InsertionSort[T constraints.Ordered](data []T) {
	InsertionSortFunc(data, Ordered[T]())
}
