package problem

import (
	"fmt"
	"math/bits"

	"cgpbench/internal/domain"
	"cgpbench/internal/ops"
)

// NewBinaryMultiply builds the binary multiplier problem over all input
// vectors of the configured input_length. The vector splits at the midpoint
// into two MSB-first binary numbers a and b; the expected output is a*b
// encoded in input_length bits, left-padded with zeros.
//
// The product of a floor(n/2)-bit and a ceil(n/2)-bit number is always below
// 2^n, so the encoding cannot overflow for any reachable input; the
// constructor still verifies the maximal product rather than assuming it.
func NewBinaryMultiply(cfg Config) (*Bounded, error) {
	length, err := cfg.InputLength()
	if err != nil {
		return nil, fmt.Errorf("binary-multiply: %w", err)
	}

	half := length / 2
	maxA := uint64(1)<<uint(half) - 1
	maxB := uint64(1)<<uint(length-half) - 1
	if bits.Len64(maxA*maxB) > length {
		return nil, fmt.Errorf("binary-multiply: %w: product of %d-bit and %d-bit operands does not fit %d output bits",
			ErrInvalidParameter, half, length-half, length)
	}

	truth := func(inputs []float64) []float64 {
		a := bitsToUint(inputs[:half])
		b := bitsToUint(inputs[half:])
		return uintToBits(a*b, length)
	}
	return newBounded("binary-multiply", cfg, domain.BinaryRange(length), truth, ops.BinaryLogic())
}

// bitsToUint reads an MSB-first 0/1 vector as an unsigned integer.
func bitsToUint(v []float64) uint64 {
	var n uint64
	for _, bit := range v {
		n <<= 1
		if bit != 0 {
			n |= 1
		}
	}
	return n
}

// uintToBits encodes n MSB-first into width bits, left-padded with zeros.
func uintToBits(n uint64, width int) []float64 {
	v := make([]float64, width)
	for i := width - 1; i >= 0; i-- {
		if n&1 != 0 {
			v[i] = 1
		}
		n >>= 1
	}
	return v
}
