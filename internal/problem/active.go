package problem

import (
	"context"
	"fmt"

	"cgpbench/internal/ops"
)

// Active scores an individual by the share of its node budget reachable
// from the outputs. Purely structural; computation never runs.
type Active struct {
	graphLength int
}

func NewActive(cfg Config) (*Active, error) {
	length, err := cfg.GraphLength()
	if err != nil {
		return nil, fmt.Errorf("active: %w", err)
	}
	return &Active{graphLength: length}, nil
}

func (Active) Name() string {
	return "active"
}

func (Active) Operators() []ops.Op {
	return []ops.Op{ops.NoOp}
}

func (Active) MaxArity() int {
	return 2
}

func (a Active) Evaluate(_ context.Context, ind Individual) (Fitness, Trace, error) {
	structured, ok := ind.(Structured)
	if !ok {
		return 0, nil, fmt.Errorf("individual %s does not expose genome structure", ind.ID())
	}
	active := len(structured.Active())
	return Fitness(float64(active) / float64(a.graphLength)), Trace{
		"active":       active,
		"graph_length": a.graphLength,
	}, nil
}
