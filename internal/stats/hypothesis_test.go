package stats

import (
	"errors"
	"math"
	"testing"
)

func TestMannWhitneyUSeparatedSamples(t *testing.T) {
	u, p, err := MannWhitneyU([]float64{1, 2, 3}, []float64{4, 5, 6})
	if err != nil {
		t.Fatalf("mann-whitney: %v", err)
	}
	if u != 0 {
		t.Fatalf("fully separated samples should give U=0, got %g", u)
	}
	// Normal approximation with continuity correction: z = 4/sqrt(5.25).
	if p < 0.07 || p > 0.09 {
		t.Fatalf("expected p near 0.081, got %g", p)
	}
}

func TestMannWhitneyUIdenticalSamples(t *testing.T) {
	u, p, err := MannWhitneyU([]float64{1, 1, 1}, []float64{1, 1, 1})
	if err != nil {
		t.Fatalf("mann-whitney: %v", err)
	}
	if p != 1 {
		t.Fatalf("identical samples should give p=1, got %g", p)
	}
	if u != 4.5 {
		t.Fatalf("expected U=4.5 for fully tied samples, got %g", u)
	}
}

func TestMannWhitneyUIsSymmetric(t *testing.T) {
	x := []float64{3, 7, 11, 14}
	y := []float64{5, 6, 12, 20, 21}
	ux, px, err := MannWhitneyU(x, y)
	if err != nil {
		t.Fatalf("mann-whitney: %v", err)
	}
	uy, py, err := MannWhitneyU(y, x)
	if err != nil {
		t.Fatalf("mann-whitney: %v", err)
	}
	if ux != uy || px != py {
		t.Fatalf("test is not symmetric: (%g, %g) vs (%g, %g)", ux, px, uy, py)
	}
}

func TestMannWhitneyUEmptySample(t *testing.T) {
	if _, _, err := MannWhitneyU(nil, []float64{1}); !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
}

func TestKruskalWallisSeparatedGroups(t *testing.T) {
	h, p, err := KruskalWallis([][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
	if err != nil {
		t.Fatalf("kruskal-wallis: %v", err)
	}
	if math.Abs(h-7.2) > 1e-9 {
		t.Fatalf("expected H=7.2, got %g", h)
	}
	if p < 0.02 || p > 0.04 {
		t.Fatalf("expected p near 0.027, got %g", p)
	}
}

func TestKruskalWallisIdenticalGroups(t *testing.T) {
	h, p, err := KruskalWallis([][]float64{
		{5, 5},
		{5, 5},
		{5, 5},
	})
	if err != nil {
		t.Fatalf("kruskal-wallis: %v", err)
	}
	if h != 0 || p != 1 {
		t.Fatalf("fully tied groups should give H=0 p=1, got H=%g p=%g", h, p)
	}
}

func TestKruskalWallisNeedsTwoGroups(t *testing.T) {
	if _, _, err := KruskalWallis([][]float64{{1, 2}}); !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
	if _, _, err := KruskalWallis([][]float64{{1, 2}, nil}); !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData for empty group, got %v", err)
	}
}
