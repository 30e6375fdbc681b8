package utils

import (
	"sort"
)

// Concatenate multiple vectors into one of the given total size.
func Concat(size int, vecs ...[]float64) []float64 {
	out := make([]float64, 0, size)
	for _, vec := range vecs {
		out = append(out, vec...)
	}
	return out
}

// Full returns a vector of n copies of v.
func Full(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// SearchRight returns the right-side insertion point of x in xs, i.e. the
// number of elements of xs (sorted ascending) that are less than or equal
// to x.
func SearchRight(xs []float64, x float64) int {
	return sort.Search(len(xs), func(i int) bool { return xs[i] > x })
}
