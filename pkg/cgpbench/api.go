// Package cgpbench is the public facade over the benchmark problems: it
// constructs problems from raw parameter maps, fans evaluation out over a
// batch of individuals, and mints the run records the aggregation tooling
// consumes.
package cgpbench

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"cgpbench/internal/model"
	"cgpbench/internal/problem"
)

// NewProblem constructs the named benchmark problem from a raw parameter
// map. Parameter validation happens here; the returned problem never fails
// on configuration during evaluation.
func NewProblem(name string, params map[string]any) (problem.Problem, error) {
	return problem.New(name, problem.NewConfig(params))
}

// BatchResult is the outcome of evaluating one individual of a batch.
// A failed evaluation carries Fitness 0, the worst value, plus the error.
type BatchResult struct {
	Index   int
	ID      string
	Fitness problem.Fitness
	Trace   problem.Trace
	Err     error
}

// EvaluateBatch scores every individual against p using up to workers
// goroutines. Problem state is read-only during evaluation, so the fan-out
// needs no locking on the problem side; individuals must not be mutated
// concurrently by the caller. One individual failing never aborts the
// batch. Results are returned in input order.
func EvaluateBatch(ctx context.Context, p problem.Problem, individuals []problem.Individual, workers int) []BatchResult {
	results := make([]BatchResult, len(individuals))
	if len(individuals) == 0 {
		return results
	}
	if workers <= 0 {
		workers = 1
	}
	if workers > len(individuals) {
		workers = len(individuals)
	}

	indices := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indices {
				ind := individuals[i]
				fitness, trace, err := p.Evaluate(ctx, ind)
				if err != nil {
					fitness = 0
					trace = nil
				}
				results[i] = BatchResult{Index: i, ID: ind.ID(), Fitness: fitness, Trace: trace, Err: err}
			}
		}()
	}
	for i := range individuals {
		indices <- i
	}
	close(indices)
	wg.Wait()
	return results
}

// NewRunRecord mints a uuid-stamped record for one evolutionary run against
// a problem. Callers fill in the outcome fields before saving.
func NewRunRecord(problemName, variant string, seed int64) model.RunRecord {
	return model.RunRecord{
		VersionedRecord: model.VersionedRecord{SchemaVersion: 1, CodecVersion: 1},
		RunID:           uuid.NewString(),
		Problem:         problemName,
		Variant:         variant,
		Seed:            seed,
	}
}
