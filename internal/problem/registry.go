package problem

import (
	"fmt"

	"cgpbench/internal/problemid"
)

// New constructs the named problem from cfg. Names are normalized through
// the alias table, so "Binary_Multiply" and "multiply" both resolve to
// binary-multiply. Construction validates every parameter the variant
// needs; Evaluate never fails on configuration.
func New(name string, cfg Config) (Problem, error) {
	switch problemid.Normalize(name) {
	case "neutral":
		return NewNeutral(), nil
	case "binary-multiply":
		return NewBinaryMultiply(cfg)
	case "breadth":
		return NewBreadth(cfg)
	case "depth":
		return NewDepth(cfg)
	case "flat":
		return NewFlat(), nil
	case "active":
		return NewActive(cfg)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedProblem, name)
	}
}

// Names lists the canonical problem names the registry accepts.
func Names() []string {
	return []string{"neutral", "binary-multiply", "breadth", "depth", "flat", "active"}
}
