package bit

import (
	"fmt"
	"strings"

	"github.com/hupe1980/bitgo/internal/bitset"
)

// Operator is a bitwise operator applied by Reduce.
type Operator uint8

const (
	OpAnd Operator = iota
	OpOr
	OpXor
	OpNand
	OpAndNot
	OpNot
)

func (op Operator) String() string {
	switch op {
	case OpAnd:
		return "and"
	case OpOr:
		return "or"
	case OpXor:
		return "xor"
	case OpNand:
		return "nand"
	case OpAndNot:
		return "andnot"
	case OpNot:
		return "not"
	default:
		return fmt.Sprintf("Unknown(%d)", op)
	}
}

// Unary reports whether op takes only the target.
func (op Operator) Unary() bool { return op == OpNot }

// ParseOperator maps an operator name to its Operator.
func ParseOperator(s string) (Operator, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "and":
		return OpAnd, nil
	case "or":
		return OpOr, nil
	case "xor":
		return OpXor, nil
	case "nand":
		return OpNand, nil
	case "andnot":
		return OpAndNot, nil
	case "not":
		return OpNot, nil
	default:
		return 0, illegalf("unknown operator %q", s)
	}
}

func (op Operator) kernel() func(dst, src *bitset.BitSet) {
	switch op {
	case OpAnd:
		return (*bitset.BitSet).And
	case OpOr:
		return (*bitset.BitSet).Or
	case OpXor:
		return (*bitset.BitSet).Xor
	case OpNand:
		return (*bitset.BitSet).Nand
	case OpAndNot:
		return (*bitset.BitSet).AndNot
	default:
		return nil
	}
}

// Reduce folds sources into target from left to right:
//
//	target = op(target, sources[0]); target = op(target, sources[1]); ...
//
// Each step sees the target as mutated by the previous one. For OpNot only
// the target is given and it is negated in place.
//
// A source whose shape differs from the target stops the fold with a
// *DimensionError. Sources folded before it stay applied.
func Reduce(op Operator, target Container, sources ...Container) error {
	if IsNil(target) {
		return illegalf("%s: missing target", op)
	}
	if op.Unary() {
		if len(sources) != 0 {
			return illegalf("%s takes only a target, got %d sources", op, len(sources))
		}
		target.storage().Not()
		return nil
	}

	apply := op.kernel()
	if apply == nil {
		return illegalf("unsupported operator %s", op)
	}

	dst := target.storage()
	for i, src := range sources {
		if IsNil(src) {
			return illegalf("%s: missing operand %d", op, i+1)
		}
		if !SameShape(target, src) {
			return &DimensionError{
				Expected: target.Layout().Shape(),
				Actual:   src.Layout().Shape(),
				Position: i + 1,
			}
		}
		apply(dst, src.storage())
	}
	return nil
}

// And folds target &= source over sources.
func And(target Container, sources ...Container) error {
	return Reduce(OpAnd, target, sources...)
}

// Or folds target |= source over sources.
func Or(target Container, sources ...Container) error {
	return Reduce(OpOr, target, sources...)
}

// Xor folds target ^= source over sources.
func Xor(target Container, sources ...Container) error {
	return Reduce(OpXor, target, sources...)
}

// Nand folds target = ¬(target ∧ source) over sources.
func Nand(target Container, sources ...Container) error {
	return Reduce(OpNand, target, sources...)
}

// AndNot folds target &^= source over sources, clearing every bit set in
// a source.
func AndNot(target Container, sources ...Container) error {
	return Reduce(OpAndNot, target, sources...)
}

// Not negates target in place.
func Not(target Container) error {
	return Reduce(OpNot, target)
}
