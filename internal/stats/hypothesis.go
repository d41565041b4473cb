package stats

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

var ErrInsufficientData = errors.New("insufficient data for test")

// MannWhitneyU compares two independent samples. It returns the smaller of
// the two U statistics and a two-sided p-value from the normal
// approximation with tie correction and continuity correction. The
// approximation is conventional from roughly eight observations per sample;
// smaller samples still compute but the p-value is coarse.
func MannWhitneyU(x, y []float64) (u, p float64, err error) {
	if len(x) == 0 || len(y) == 0 {
		return 0, 0, fmt.Errorf("%w: mann-whitney needs two non-empty samples", ErrInsufficientData)
	}

	pooled := make([]float64, 0, len(x)+len(y))
	pooled = append(pooled, x...)
	pooled = append(pooled, y...)
	ranks, tieSizes := rank(pooled)

	var rankSumX float64
	for i := range x {
		rankSumX += ranks[i]
	}

	nx := float64(len(x))
	ny := float64(len(y))
	ux := nx*ny + nx*(nx+1)/2 - rankSumX
	uy := nx*ny - ux
	u = math.Min(ux, uy)

	n := nx + ny
	tieTerm := 0.0
	for _, t := range tieSizes {
		tf := float64(t)
		tieTerm += tf*tf*tf - tf
	}
	variance := nx * ny / 12 * ((n + 1) - tieTerm/(n*(n-1)))
	if variance <= 0 {
		// Every pooled observation is identical; no evidence of difference.
		return u, 1, nil
	}

	mean := nx * ny / 2
	z := (math.Abs(u-mean) - 0.5) / math.Sqrt(variance)
	if z < 0 {
		z = 0
	}
	normal := distuv.Normal{Mu: 0, Sigma: 1}
	p = 2 * normal.Survival(z)
	if p > 1 {
		p = 1
	}
	return u, p, nil
}

// KruskalWallis tests whether the groups are drawn from the same
// distribution. It returns the tie-corrected H statistic and a chi-squared
// p-value with len(groups)-1 degrees of freedom.
func KruskalWallis(groups [][]float64) (h, p float64, err error) {
	if len(groups) < 2 {
		return 0, 0, fmt.Errorf("%w: kruskal-wallis needs at least two groups", ErrInsufficientData)
	}
	total := 0
	for _, group := range groups {
		if len(group) == 0 {
			return 0, 0, fmt.Errorf("%w: kruskal-wallis group is empty", ErrInsufficientData)
		}
		total += len(group)
	}

	pooled := make([]float64, 0, total)
	for _, group := range groups {
		pooled = append(pooled, group...)
	}
	ranks, tieSizes := rank(pooled)

	n := float64(total)
	h = -3 * (n + 1)
	offset := 0
	for _, group := range groups {
		var rankSum float64
		for i := range group {
			rankSum += ranks[offset+i]
		}
		offset += len(group)
		h += 12 / (n * (n + 1)) * rankSum * rankSum / float64(len(group))
	}

	tieTerm := 0.0
	for _, t := range tieSizes {
		tf := float64(t)
		tieTerm += tf*tf*tf - tf
	}
	correction := 1 - tieTerm/(n*n*n-n)
	if correction <= 0 {
		return 0, 1, nil
	}
	h /= correction

	chi := distuv.ChiSquared{K: float64(len(groups) - 1)}
	p = chi.Survival(h)
	return h, p, nil
}
