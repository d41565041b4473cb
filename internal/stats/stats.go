// Package stats aggregates run records collected across random seeds and
// computes the significance tests used to compare algorithm variants.
package stats

import (
	"math"
	"sort"
)

// Median returns the median of data, averaging the two middle values for
// even lengths. Returns NaN for empty input.
func Median(data []float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}
	ordered := append([]float64(nil), data...)
	sort.Float64s(ordered)

	middle := len(ordered) / 2
	if len(ordered)%2 == 1 {
		return ordered[middle]
	}
	return (ordered[middle] + ordered[middle-1]) / 2
}

// MedianDeviation returns the median and the median absolute deviation of
// the data.
func MedianDeviation(data []float64) (median, mad float64) {
	median = Median(data)
	deviations := make([]float64, len(data))
	for i, x := range data {
		deviations[i] = math.Abs(x - median)
	}
	return median, Median(deviations)
}

// DiffCount counts the positions at which two sequences differ. Sequences
// of unequal length differ at every position past the shorter one.
func DiffCount(a, b []float64) int {
	count := 0
	shorter := len(a)
	if len(b) < shorter {
		shorter = len(b)
	}
	for i := 0; i < shorter; i++ {
		if a[i] != b[i] {
			count++
		}
	}
	count += len(a) - shorter
	count += len(b) - shorter
	return count
}

// rank assigns 1-based ranks to the pooled sample, averaging ranks across
// ties. Returns the ranks aligned with data and the tie-group sizes.
func rank(data []float64) (ranks []float64, tieSizes []int) {
	type indexed struct {
		value float64
		pos   int
	}
	ordered := make([]indexed, len(data))
	for i, v := range data {
		ordered[i] = indexed{value: v, pos: i}
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].value < ordered[j].value })

	ranks = make([]float64, len(data))
	for i := 0; i < len(ordered); {
		j := i
		for j < len(ordered) && ordered[j].value == ordered[i].value {
			j++
		}
		// Average of ranks i+1..j.
		avg := float64(i+j+1) / 2
		for k := i; k < j; k++ {
			ranks[ordered[k].pos] = avg
		}
		if j-i > 1 {
			tieSizes = append(tieSizes, j-i)
		}
		i = j
	}
	return ranks, tieSizes
}
