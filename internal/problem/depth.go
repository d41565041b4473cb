package problem

import (
	"context"
	"fmt"

	"cgpbench/internal/ops"
)

// Depth rewards individuals whose evaluated depth approaches the configured
// graph length. The sole operator min(x,y)+1 makes a node's value the length
// of the shortest path below it, so evaluating the fixed input [0] reads the
// depth of the output node directly.
type Depth struct {
	graphLength int
}

func NewDepth(cfg Config) (*Depth, error) {
	length, err := cfg.GraphLength()
	if err != nil {
		return nil, fmt.Errorf("depth: %w", err)
	}
	return &Depth{graphLength: length}, nil
}

func (Depth) Name() string {
	return "depth"
}

func (Depth) Operators() []ops.Op {
	return []ops.Op{ops.MinPlusOne}
}

func (Depth) MaxArity() int {
	return 2
}

// Evaluate returns depth/graph_length. There is no upper clamp: values above
// 1 are possible and are a signal for the caller, not an error.
func (d Depth) Evaluate(ctx context.Context, ind Individual) (Fitness, Trace, error) {
	evaluator, ok := ind.(Evaluator)
	if !ok {
		return 0, nil, fmt.Errorf("individual %s does not implement evaluation", ind.ID())
	}
	out, err := evaluator.Evaluate(ctx, []float64{0})
	if err != nil {
		return 0, nil, fmt.Errorf("evaluate individual %s: %w", ind.ID(), err)
	}
	if len(out) == 0 {
		return 0, nil, fmt.Errorf("individual %s: depth requires one output, got 0", ind.ID())
	}
	fitness := Fitness(out[0] / float64(d.graphLength))
	return fitness, Trace{"depth": out[0], "graph_length": d.graphLength}, nil
}
