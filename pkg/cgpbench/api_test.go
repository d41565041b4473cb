package cgpbench

import (
	"context"
	"errors"
	"testing"

	"cgpbench/internal/problem"
)

type stubIndividual struct {
	id  string
	out []float64
	err error
}

func (s stubIndividual) ID() string {
	return s.id
}

func (s stubIndividual) Evaluate(_ context.Context, _ []float64) ([]float64, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.out, nil
}

func TestNewProblemValidatesAtConstruction(t *testing.T) {
	p, err := NewProblem("breadth", map[string]any{"input_length": 4, "epsilon": 0.0})
	if err != nil {
		t.Fatalf("new problem: %v", err)
	}
	if p.Name() != "breadth" {
		t.Fatalf("unexpected problem %q", p.Name())
	}

	if _, err := NewProblem("breadth", nil); !errors.Is(err, problem.ErrMissingParameter) {
		t.Fatalf("expected ErrMissingParameter, got %v", err)
	}
	if _, err := NewProblem("nonesuch", nil); !errors.Is(err, problem.ErrUnsupportedProblem) {
		t.Fatalf("expected ErrUnsupportedProblem, got %v", err)
	}
}

func TestEvaluateBatchPreservesOrderAndIsolatesFailures(t *testing.T) {
	p, err := NewProblem("breadth", map[string]any{"input_length": 4, "epsilon": 0.0})
	if err != nil {
		t.Fatalf("new problem: %v", err)
	}

	individuals := []problem.Individual{
		stubIndividual{id: "good-0", out: []float64{1}},
		stubIndividual{id: "broken", err: errors.New("boom")},
		stubIndividual{id: "good-2", out: []float64{1}},
		stubIndividual{id: "wrong", out: []float64{0}},
	}

	results := EvaluateBatch(context.Background(), p, individuals, 3)
	if len(results) != len(individuals) {
		t.Fatalf("expected %d results, got %d", len(individuals), len(results))
	}
	for i, result := range results {
		if result.Index != i || result.ID != individuals[i].ID() {
			t.Fatalf("result %d out of order: %+v", i, result)
		}
	}
	if results[0].Fitness != 1 || results[0].Err != nil {
		t.Fatalf("good individual: %+v", results[0])
	}
	if results[1].Err == nil || results[1].Fitness != 0 {
		t.Fatalf("failed individual must carry the error and worst fitness: %+v", results[1])
	}
	if results[2].Fitness != 1 || results[2].Err != nil {
		t.Fatalf("failure must not leak into neighbors: %+v", results[2])
	}
	if results[3].Fitness != 0 || results[3].Err != nil {
		t.Fatalf("wrong answers score 0 without error: %+v", results[3])
	}
}

func TestEvaluateBatchWorkerClamping(t *testing.T) {
	p, err := NewProblem("breadth", map[string]any{"input_length": 3, "epsilon": 0.0})
	if err != nil {
		t.Fatalf("new problem: %v", err)
	}
	individuals := []problem.Individual{
		stubIndividual{id: "a", out: []float64{1}},
		stubIndividual{id: "b", out: []float64{1}},
	}

	for _, workers := range []int{-1, 0, 1, 2, 16} {
		results := EvaluateBatch(context.Background(), p, individuals, workers)
		for _, result := range results {
			if result.Err != nil || result.Fitness != 1 {
				t.Fatalf("workers=%d: %+v", workers, result)
			}
		}
	}

	if results := EvaluateBatch(context.Background(), p, nil, 4); len(results) != 0 {
		t.Fatalf("empty batch should be empty, got %d results", len(results))
	}
}

func TestNewRunRecordMintsUniqueIDs(t *testing.T) {
	first := NewRunRecord("breadth", "normal", 1)
	second := NewRunRecord("breadth", "normal", 1)

	if first.RunID == "" || second.RunID == "" {
		t.Fatalf("run records need ids: %+v %+v", first, second)
	}
	if first.RunID == second.RunID {
		t.Fatalf("run ids must be unique, got %s twice", first.RunID)
	}
	if first.Problem != "breadth" || first.Variant != "normal" || first.Seed != 1 {
		t.Fatalf("unexpected record: %+v", first)
	}
	if first.SchemaVersion != 1 || first.CodecVersion != 1 {
		t.Fatalf("record must be version stamped: %+v", first)
	}
}
