package problem

import (
	"context"
	"fmt"

	"cgpbench/internal/ops"
)

// Flat scores an individual by the fraction of its non-no-op genes wired
// directly to a primary input. Computation never runs; only the genome
// layout matters.
type Flat struct{}

func NewFlat() Flat {
	return Flat{}
}

func (Flat) Name() string {
	return "flat"
}

func (Flat) Operators() []ops.Op {
	return []ops.Op{ops.NoOp}
}

func (Flat) MaxArity() int {
	return 2
}

// Evaluate returns wired/total over the non-no-op genes. An individual with
// no non-no-op genes scores 0; a pathological genome must not fault the
// evolutionary loop.
func (Flat) Evaluate(_ context.Context, ind Individual) (Fitness, Trace, error) {
	structured, ok := ind.(Structured)
	if !ok {
		return 0, nil, fmt.Errorf("individual %s does not expose genome structure", ind.ID())
	}

	wired, total := 0, 0
	for _, gene := range structured.Genes() {
		if gene.NoOp {
			continue
		}
		if gene.InputWired() {
			wired++
		}
		total++
	}
	if total == 0 {
		return 0, Trace{"wired": 0, "total": 0}, nil
	}
	return Fitness(float64(wired) / float64(total)), Trace{"wired": wired, "total": total}, nil
}
