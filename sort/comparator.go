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

// Less reports whether a strictly precedes b.
//
// A comparator must implement a strict weak ordering: irreflexive
// (!less(a, a)), asymmetric (less(a, b) implies !less(b, a)), and
// transitive. It must be pure - callable any number of times on the same
// arguments with the same result and no side effects.
type Less[T any] func(a, b T) bool

// Ordered returns the natural ascending comparator for ordered types.
func Ordered[T constraints.Ordered]() Less[T] {
	return func(a, b T) bool { return a < b }
}
