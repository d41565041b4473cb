package problem

import (
	"errors"
	"fmt"
)

var (
	ErrMissingParameter   = errors.New("missing required parameter")
	ErrInvalidParameter   = errors.New("invalid parameter value")
	ErrUnsupportedProblem = errors.New("unsupported problem")
)

// Maximum enumerable input length for bounded problems; a table of
// 2^maxInputLength cases is already 2^30 entries.
const maxInputLength = 30

// Config is an immutable parameter mapping. Values are copied in at
// construction; accessors validate on read so a variant constructor fails
// fast on a missing or malformed parameter.
type Config struct {
	values map[string]any
}

func NewConfig(values map[string]any) Config {
	copied := make(map[string]any, len(values))
	for key, value := range values {
		copied[key] = value
	}
	return Config{values: copied}
}

// InputLength is the width of the binary input vectors a bounded problem
// enumerates. Positive, capped so the training table stays enumerable.
func (c Config) InputLength() (int, error) {
	length, err := c.intValue("input_length")
	if err != nil {
		return 0, err
	}
	if length <= 0 || length > maxInputLength {
		return 0, fmt.Errorf("%w: input_length must be in [1, %d], got %d", ErrInvalidParameter, maxInputLength, length)
	}
	return length, nil
}

// Epsilon is the per-output tolerance below which a bounded problem counts
// an answer as correct.
func (c Config) Epsilon() (float64, error) {
	epsilon, err := c.floatValue("epsilon")
	if err != nil {
		return 0, err
	}
	if epsilon < 0 {
		return 0, fmt.Errorf("%w: epsilon must be non-negative, got %g", ErrInvalidParameter, epsilon)
	}
	return epsilon, nil
}

// GraphLength is the node budget of the genome representation, used to
// normalize the structural scores.
func (c Config) GraphLength() (int, error) {
	length, err := c.intValue("graph_length")
	if err != nil {
		return 0, err
	}
	if length <= 0 {
		return 0, fmt.Errorf("%w: graph_length must be positive, got %d", ErrInvalidParameter, length)
	}
	return length, nil
}

func (c Config) intValue(key string) (int, error) {
	raw, ok := c.values[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMissingParameter, key)
	}
	switch v := raw.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("%w: %s must be an integer, got %g", ErrInvalidParameter, key, v)
		}
		return int(v), nil
	default:
		return 0, fmt.Errorf("%w: %s must be an integer, got %T", ErrInvalidParameter, key, raw)
	}
}

func (c Config) floatValue(key string) (float64, error) {
	raw, ok := c.values[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMissingParameter, key)
	}
	switch v := raw.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("%w: %s must be numeric, got %T", ErrInvalidParameter, key, raw)
	}
}
