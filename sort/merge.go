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

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// mergeCutoff: runs of this length are sorted with insertion sort before
// any merging starts.
const mergeCutoff = 16

// MergeSortFunc sorts data in place using the comparator less, merging
// through the caller-supplied auxiliary slice aux.
//
// Stable: on ties, elements of the left run precede elements of the right.
// Guaranteed O(n log n). Bottom-up: the slice is first cut into runs of
// mergeCutoff elements and insertion-sorted, then adjacent run pairs are
// merged into aux at doubling run sizes, copying each merged region back
// before the next pass.
//
// aux must not alias data and is left in an unspecified state after the
// call. Panics if len(aux) < len(data).
func MergeSortFunc[T any](data, aux []T, less Less[T]) {
	n := len(data)
	if len(aux) < n {
		panic(fmt.Sprintf("sort: aux length %d < data length %d", len(aux), n))
	}

	for lo := 0; lo < n; lo += mergeCutoff {
		hi := lo + mergeCutoff
		if hi > n {
			hi = n
		}
		InsertionSortFunc(data[lo:hi], less)
	}

	for sz := mergeCutoff; sz < n; sz *= 2 {
		// A trailing run with no right-hand partner is skipped by the pair
		// loop and must stay in place, so only the merged prefix is copied
		// back from aux.
		end := 0
		for lo := 0; lo < n-sz; lo += 2 * sz {
			mid := lo + sz
			hi := lo + 2*sz
			if hi > n {
				hi = n
			}
			mergeInto(data[lo:mid], data[mid:hi], aux[lo:hi], less)
			end = hi
		}
		copy(data[:end], aux[:end])
	}
}

// mergeInto merges the sorted runs a and b into out, taking from a on ties.
// len(out) must equal len(a)+len(b).
func mergeInto[T any](a, b, out []T, less Less[T]) {
	i, j := 0, 0
	for k := range out {
		switch {
		case i == len(a):
			out[k] = b[j]
			j++
		case j == len(b):
			out[k] = a[i]
			i++
		case less(b[j], a[i]):
			out[k] = b[j]
			j++
		default:
			out[k] = a[i]
			i++
		}
	}
}

// MergeSort sorts data in place in ascending natural order, merging through
// aux. Panics if len(aux) < len(data).
func MergeSort[T constraints.Ordered](data, aux []T) {
	MergeSortFunc(data, aux, Ordered[T]())
}
