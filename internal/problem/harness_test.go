package problem

import (
	"context"

	"cgpbench/internal/model"
)

// stubIndividual is a hand-built individual exposing the full capability
// set. Tests that need a capability-poor individual use bareIndividual.
type stubIndividual struct {
	id     string
	fn     func(inputs []float64) []float64
	err    error
	genes  []model.Gene
	active []int
}

func (s stubIndividual) ID() string {
	return s.id
}

func (s stubIndividual) Evaluate(_ context.Context, inputs []float64) ([]float64, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.fn(inputs), nil
}

func (s stubIndividual) Genes() []model.Gene {
	return s.genes
}

func (s stubIndividual) Active() []int {
	return s.active
}

type bareIndividual struct {
	id string
}

func (b bareIndividual) ID() string {
	return b.id
}
