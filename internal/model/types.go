package model

// VersionedRecord captures schema and codec evolution for persistent data.
type VersionedRecord struct {
	SchemaVersion int `json:"schema_version"`
	CodecVersion  int `json:"codec_version"`
}

// Gene is a single connection slot of an individual's graph genome. A
// negative Conn wires the slot directly to a primary input. NoOp marks an
// unused slot; Conn is meaningless when NoOp is set.
type Gene struct {
	Conn int  `json:"conn"`
	NoOp bool `json:"no_op"`
}

// InputWired reports whether the gene connects directly to a primary input.
func (g Gene) InputWired() bool {
	return !g.NoOp && g.Conn < 0
}

// TrainingCase is one precomputed (inputs, expected outputs) pair of a
// bounded problem's training table. Immutable once built.
type TrainingCase struct {
	Inputs  []float64 `json:"inputs"`
	Outputs []float64 `json:"outputs"`
}

// RunRecord summarizes one evolutionary run against a problem, keyed by the
// random seed. Variant labels the algorithm version the run used so records
// can be grouped during aggregation.
type RunRecord struct {
	VersionedRecord
	RunID       string  `json:"run_id"`
	Problem     string  `json:"problem"`
	Variant     string  `json:"variant"`
	Seed        int64   `json:"seed"`
	Evaluations int     `json:"evaluations"`
	Phenotype   int     `json:"phenotype"`
	BestFitness float64 `json:"best_fitness"`
	Solved      bool    `json:"solved"`
}
