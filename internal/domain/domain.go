// Package domain enumerates the input spaces bounded problems precompute
// their training tables over.
package domain

import "iter"

// BinaryRange yields all 2^length vectors of {0,1}^length in lexicographic
// order, most significant bit first. The order is fixed so training tables
// and fixtures stay deterministic. Each yielded slice is freshly allocated;
// callers may retain it.
func BinaryRange(length int) iter.Seq[[]float64] {
	return func(yield func([]float64) bool) {
		if length <= 0 || length >= 63 {
			return
		}
		total := uint64(1) << uint(length)
		for i := uint64(0); i < total; i++ {
			v := make([]float64, length)
			for bit := 0; bit < length; bit++ {
				if i&(1<<uint(length-1-bit)) != 0 {
					v[bit] = 1
				}
			}
			if !yield(v) {
				return
			}
		}
	}
}

// SingleBitSet yields exactly length vectors, the i-th having a single 1 at
// position i and zeros elsewhere.
func SingleBitSet(length int) iter.Seq[[]float64] {
	return func(yield func([]float64) bool) {
		for i := 0; i < length; i++ {
			v := make([]float64, length)
			v[i] = 1
			if !yield(v) {
				return
			}
		}
	}
}
