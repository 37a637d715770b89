package sort

import (
	"math/rand"
	"slices"
	"testing"
)

// Generate random data for benchmarks
func generateInts(n int) []int {
	r := rand.New(rand.NewSource(int64(n)))
	data := make([]int, n)
	for i := range data {
		data[i] = r.Intn(10000) - 5000
	}
	return data
}

func BenchmarkInsertionSort_100(b *testing.B) {
	benchmarkInsertionSort(b, 100)
}

func BenchmarkInsertionSort_1000(b *testing.B) {
	benchmarkInsertionSort(b, 1000)
}

func benchmarkInsertionSort(b *testing.B, n int) {
	ref := generateInts(n)
	data := make([]int, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		InsertionSort(data)
	}
}

func BenchmarkShellSort_100(b *testing.B) {
	benchmarkShellSort(b, 100)
}

func BenchmarkShellSort_1000(b *testing.B) {
	benchmarkShellSort(b, 1000)
}

func BenchmarkShellSort_10000(b *testing.B) {
	benchmarkShellSort(b, 10000)
}

func benchmarkShellSort(b *testing.B, n int) {
	ref := generateInts(n)
	data := make([]int, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		ShellSort(data)
	}
}

func BenchmarkMergeSort_100(b *testing.B) {
	benchmarkMergeSort(b, 100)
}

func BenchmarkMergeSort_1000(b *testing.B) {
	benchmarkMergeSort(b, 1000)
}

func BenchmarkMergeSort_10000(b *testing.B) {
	benchmarkMergeSort(b, 10000)
}

func benchmarkMergeSort(b *testing.B, n int) {
	ref := generateInts(n)
	data := make([]int, n)
	aux := make([]int, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		MergeSort(data, aux)
	}
}

// Stdlib baseline for comparison
func BenchmarkStdlibSort_1000(b *testing.B) {
	benchmarkStdlibSort(b, 1000)
}

func BenchmarkStdlibSort_10000(b *testing.B) {
	benchmarkStdlibSort(b, 10000)
}

func benchmarkStdlibSort(b *testing.B, n int) {
	ref := generateInts(n)
	data := make([]int, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		slices.Sort(data)
	}
}
