package problem

import (
	"fmt"

	"cgpbench/internal/domain"
	"cgpbench/internal/ops"
)

// NewBreadth builds the breadth problem: OR is the only operator and the
// domain holds only the one-hot vectors of the configured input_length. The
// expected output is 1 iff any input bit is set, which the one-hot domain
// makes true for every case; individuals are rewarded purely for wiring
// every input into the output.
func NewBreadth(cfg Config) (*Bounded, error) {
	length, err := cfg.InputLength()
	if err != nil {
		return nil, fmt.Errorf("breadth: %w", err)
	}

	truth := func(inputs []float64) []float64 {
		for _, bit := range inputs {
			if bit != 0 {
				return []float64{1}
			}
		}
		return []float64{0}
	}
	return newBounded("breadth", cfg, domain.SingleBitSet(length), truth, []ops.Op{ops.Or})
}
