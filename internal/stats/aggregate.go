package stats

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"cgpbench/internal/model"
)

// BaselineVariant is the algorithm-version label the other variants are
// compared against with Mann-Whitney U.
const BaselineVariant = "normal"

var ErrMixedProblems = errors.New("run records span multiple problems")

// VariantSummary describes the runs of one algorithm variant against a
// single problem.
type VariantSummary struct {
	Variant         string   `json:"variant"`
	Runs            int      `json:"runs"`
	MedianEvals     float64  `json:"median_evals"`
	MADEvals        float64  `json:"mad_evals"`
	MeanEvals       float64  `json:"mean_evals"`
	StdEvals        float64  `json:"std_evals"`
	MedianPhenotype float64  `json:"median_phenotype"`
	MADPhenotype    float64  `json:"mad_phenotype"`
	UvsBaseline     *float64 `json:"u_vs_baseline,omitempty"`
	PvsBaseline     *float64 `json:"p_vs_baseline,omitempty"`
}

// Report aggregates all run records of one problem across variants.
type Report struct {
	Problem        string           `json:"problem"`
	Records        int              `json:"records"`
	KruskalWallisH *float64         `json:"kruskal_wallis_h,omitempty"`
	KruskalWallisP *float64         `json:"kruskal_wallis_p,omitempty"`
	Variants       []VariantSummary `json:"variants"`
}

// Aggregate groups records by variant and computes per-variant summaries,
// the Kruskal-Wallis test across variants, and Mann-Whitney U of each
// variant against the baseline. All records must belong to one problem; do
// not mix problems in a single aggregation.
func Aggregate(records []model.RunRecord) (Report, error) {
	if len(records) == 0 {
		return Report{}, fmt.Errorf("%w: no run records", ErrInsufficientData)
	}

	problem := records[0].Problem
	evalsByVariant := make(map[string][]float64)
	phenotypeByVariant := make(map[string][]float64)
	for _, record := range records {
		if record.Problem != problem {
			return Report{}, fmt.Errorf("%w: %s and %s", ErrMixedProblems, problem, record.Problem)
		}
		evalsByVariant[record.Variant] = append(evalsByVariant[record.Variant], float64(record.Evaluations))
		phenotypeByVariant[record.Variant] = append(phenotypeByVariant[record.Variant], float64(record.Phenotype))
	}

	variants := make([]string, 0, len(evalsByVariant))
	for variant := range evalsByVariant {
		variants = append(variants, variant)
	}
	sort.Strings(variants)

	report := Report{
		Problem:  problem,
		Records:  len(records),
		Variants: make([]VariantSummary, 0, len(variants)),
	}

	baseline := evalsByVariant[BaselineVariant]
	for _, variant := range variants {
		evals := evalsByVariant[variant]
		summary := VariantSummary{
			Variant:   variant,
			Runs:      len(evals),
			MeanEvals: stat.Mean(evals, nil),
		}
		if len(evals) > 1 {
			summary.StdEvals = stat.StdDev(evals, nil)
		}
		summary.MedianEvals, summary.MADEvals = MedianDeviation(evals)
		summary.MedianPhenotype, summary.MADPhenotype = MedianDeviation(phenotypeByVariant[variant])

		if variant != BaselineVariant && len(baseline) > 0 {
			u, p, err := MannWhitneyU(baseline, evals)
			if err == nil {
				summary.UvsBaseline = &u
				summary.PvsBaseline = &p
			}
		}
		report.Variants = append(report.Variants, summary)
	}

	if len(variants) >= 2 {
		groups := make([][]float64, 0, len(variants))
		for _, variant := range variants {
			groups = append(groups, evalsByVariant[variant])
		}
		if h, p, err := KruskalWallis(groups); err == nil {
			report.KruskalWallisH = &h
			report.KruskalWallisP = &p
		}
	}

	return report, nil
}
