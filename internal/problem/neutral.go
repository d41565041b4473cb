package problem

import (
	"context"

	"cgpbench/internal/ops"
)

// Neutral scores every individual 0. With the no-op operator as the only
// primitive, runs against it isolate how connection genes drift when
// selection has nothing to act on.
type Neutral struct{}

func NewNeutral() Neutral {
	return Neutral{}
}

func (Neutral) Name() string {
	return "neutral"
}

func (Neutral) Operators() []ops.Op {
	return []ops.Op{ops.NoOp}
}

func (Neutral) MaxArity() int {
	return 2
}

func (Neutral) Evaluate(_ context.Context, _ Individual) (Fitness, Trace, error) {
	return 0, Trace{}, nil
}
