// Package problem defines the benchmark problems evolved individuals are
// scored against: the problem contract, the bounded training-table core, and
// the concrete variants. Problem state is written once at construction and
// only read afterwards, so a single instance may score many individuals
// concurrently.
package problem

import (
	"context"

	"cgpbench/internal/model"
	"cgpbench/internal/ops"
)

type Fitness float64

type Trace map[string]any

// Individual is a candidate evolved program under evaluation. The package
// never mutates an individual; richer capabilities are discovered by type
// assertion against Evaluator and Structured.
type Individual interface {
	ID() string
}

// Evaluator computes an output vector from an input vector. Must be pure and
// deterministic with the arity the problem expects.
type Evaluator interface {
	Individual
	Evaluate(ctx context.Context, inputs []float64) ([]float64, error)
}

// Structured exposes an individual's genome layout: its connection genes and
// the set of node identifiers reachable from its outputs.
type Structured interface {
	Individual
	Genes() []model.Gene
	Active() []int
}

// Problem scores individuals. Operators and MaxArity declare the primitive
// catalog legal for individuals evolved against this problem; the scoring
// code itself never invokes them.
type Problem interface {
	Name() string
	Operators() []ops.Op
	MaxArity() int
	Evaluate(ctx context.Context, ind Individual) (Fitness, Trace, error)
}
