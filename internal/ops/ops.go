// Package ops is the catalog of computational primitives a problem declares
// legal for evolved individuals. The evaluation core never invokes these
// during scoring; individuals invoke them while computing their own outputs.
package ops

// Func is a binary primitive over numeric operands. Binary logic operators
// treat any nonzero operand as true and return 0 or 1.
type Func func(x, y float64) float64

// Op is one catalog entry. Fn is nil for NoOp, the marker operator of
// problems where only connection genes evolve.
type Op struct {
	Name  string
	Arity int
	Fn    Func
}

var (
	Or = Op{Name: "or", Arity: 2, Fn: func(x, y float64) float64 {
		return boolBit(truthy(x) || truthy(y))
	}}
	And = Op{Name: "and", Arity: 2, Fn: func(x, y float64) float64 {
		return boolBit(truthy(x) && truthy(y))
	}}
	Nand = Op{Name: "nand", Arity: 2, Fn: func(x, y float64) float64 {
		return boolBit(!(truthy(x) && truthy(y)))
	}}
	Nor = Op{Name: "nor", Arity: 2, Fn: func(x, y float64) float64 {
		return boolBit(!(truthy(x) || truthy(y)))
	}}

	// MinPlusOne is the sole operator of the Depth problem: each node adds
	// one level on top of its shallower argument.
	MinPlusOne = Op{Name: "min-plus-one", Arity: 2, Fn: func(x, y float64) float64 {
		if x < y {
			return x + 1
		}
		return y + 1
	}}

	NoOp = Op{Name: "no-op", Arity: 2}
)

// BinaryLogic returns the operator set of the binary circuit problems.
func BinaryLogic() []Op {
	return []Op{Or, And, Nand, Nor}
}

func truthy(x float64) bool {
	return x != 0
}

func boolBit(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
