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

// Package sort provides three classical in-memory sorting algorithms over
// generic slices: insertion sort, Shell sort, and bottom-up merge sort.
//
// # Algorithms
//
//   - InsertionSort: stable, in-place, O(n²) worst case but O(n) on nearly
//     sorted input. The workhorse for short runs.
//   - ShellSort: in-place, not stable, uses Knuth's 3k+1 gap sequence.
//     Roughly O(n^1.5) on random input; no complexity guarantee.
//   - MergeSort: stable, guaranteed O(n log n). Bottom-up, cuts over to
//     insertion sort for short runs, and merges through a caller-supplied
//     auxiliary slice rather than allocating.
//
// Every algorithm comes in two forms: a Func variant taking an explicit
// comparator, and a convenience variant for naturally ordered element types.
//
// # Comparators
//
// A comparator is a Less[T] reporting whether its first argument strictly
// precedes its second. It must implement a strict weak ordering (irreflexive,
// asymmetric, transitive). The package does not validate this; sorting with
// an invalid comparator produces an arbitrary permutation, not an error.
//
// # Ranges and ownership
//
// A sort operates on a half-open range expressed as a slice. The caller owns
// the backing array; the algorithms only reorder elements within the slice
// and never allocate, grow, or free storage. Sub-slice to sort part of a
// larger array - elements outside the slice are untouched. The auxiliary
// slice passed to MergeSort must not alias the data slice and is left in an
// unspecified state after the call.
//
// # Example Usage
//
//	import "github.com/asdq/futils/sort"
//
//	func Rank(scores []float64) {
//	    sort.ShellSort(scores)
//	}
//
//	func RankStable(entries, scratch []Entry) {
//	    sort.MergeSortFunc(entries, scratch, func(a, b Entry) bool {
//	        return a.Score < b.Score
//	    })
//	}
//
// # Concurrency
//
// All functions are pure reorderings of caller-owned memory with no shared
// state; concurrent calls on disjoint slices are safe. The caller must not
// mutate a slice (or the aux slice) while a sort on it is in flight.
package sort
