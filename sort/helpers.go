package sort

import "golang.org/x/exp/constraints"

// Helper predicates and slice utilities shared by callers and tests.

// IsSortedFunc reports whether data is in non-decreasing order under less.
func IsSortedFunc[T any](data []T, less Less[T]) bool {
	for i := 1; i < len(data); i++ {
		if less(data[i], data[i-1]) {
			return false
		}
	}
	return true
}

// IsSorted reports whether data is in ascending natural order.
func IsSorted[T constraints.Ordered](data []T) bool {
	return IsSortedFunc(data, Ordered[T]())
}

// Reverse reverses data in place (and returns it for convenience).
func Reverse[T any](data []T) []T {
	n1, n2 := len(data)-1, len(data)/2
	for i := 0; i < n2; i++ {
		data[i], data[n1-i] = data[n1-i], data[i]
	}
	return data
}
