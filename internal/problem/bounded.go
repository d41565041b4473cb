package problem

import (
	"context"
	"fmt"
	"iter"
	"math"

	"cgpbench/internal/model"
	"cgpbench/internal/ops"
)

// TruthFunc maps an input vector to the expected output vector of a bounded
// problem. It is invoked once per case while the training table is built and
// never again afterwards.
type TruthFunc func(inputs []float64) []float64

// Bounded scores individuals against a training table enumerating a
// problem's full input space. The table and epsilon are fixed at
// construction, so Evaluate is read-only and safe to call concurrently for
// distinct individuals.
type Bounded struct {
	name      string
	operators []ops.Op
	maxArity  int
	training  []model.TrainingCase
	epsilon   float64
}

func newBounded(name string, cfg Config, inputs iter.Seq[[]float64], truth TruthFunc, operators []ops.Op) (*Bounded, error) {
	epsilon, err := cfg.Epsilon()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	var training []model.TrainingCase
	for in := range inputs {
		training = append(training, model.TrainingCase{Inputs: in, Outputs: truth(in)})
	}
	if len(training) == 0 {
		return nil, fmt.Errorf("%s: %w: empty training domain", name, ErrInvalidParameter)
	}

	return &Bounded{
		name:      name,
		operators: operators,
		maxArity:  2,
		training:  training,
		epsilon:   epsilon,
	}, nil
}

func (b *Bounded) Name() string {
	return b.name
}

func (b *Bounded) Operators() []ops.Op {
	return b.operators
}

func (b *Bounded) MaxArity() int {
	return b.maxArity
}

// Training exposes the precomputed table. Callers must not mutate the cases.
func (b *Bounded) Training() []model.TrainingCase {
	return b.training
}

// Evaluate runs the individual over every training case and counts a miss
// for each output position more than epsilon away from the expected value.
// The fitness is 1 minus the mean per-case miss fraction: 1.0 exactly when
// every output of every case is within epsilon, 0.0 when none is.
func (b *Bounded) Evaluate(ctx context.Context, ind Individual) (Fitness, Trace, error) {
	evaluator, ok := ind.(Evaluator)
	if !ok {
		return 0, nil, fmt.Errorf("individual %s does not implement evaluation", ind.ID())
	}

	var errSum float64
	misses := 0
	for _, c := range b.training {
		if err := ctx.Err(); err != nil {
			return 0, nil, err
		}
		answers, err := evaluator.Evaluate(ctx, c.Inputs)
		if err != nil {
			return 0, nil, fmt.Errorf("evaluate individual %s: %w", ind.ID(), err)
		}
		if len(answers) != len(c.Outputs) {
			return 0, nil, fmt.Errorf("individual %s: %s requires %d outputs, got %d", ind.ID(), b.name, len(c.Outputs), len(answers))
		}
		caseMisses := 0
		for i := range c.Outputs {
			if math.Abs(answers[i]-c.Outputs[i]) > b.epsilon {
				caseMisses++
			}
		}
		misses += caseMisses
		errSum += float64(caseMisses) / float64(len(c.Outputs))
	}

	fitness := Fitness(1 - errSum/float64(len(b.training)))
	return fitness, Trace{
		"cases":   len(b.training),
		"misses":  misses,
		"epsilon": b.epsilon,
	}, nil
}
