// Package r1cs flattens a circuit IR into a rank-1 constraint system: a
// sequence of (A, B, C) sparse linear combinations over a shared,
// deterministically indexed variable vector.
package r1cs

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zkcircuit/transfer/field"
)

// LinearCombination is a sparse mapping from variable index to its
// coefficient in the combination. A term for index 0 contributes
// coefficient * F(1), i.e. a plain constant.
type LinearCombination map[int]field.Element

// Term returns a single-term linear combination: coeff * z[idx].
func Term(idx int, coeff field.Element) LinearCombination {
	return LinearCombination{idx: coeff}
}

// Var returns the linear combination 1 * z[idx].
func Var(idx int) LinearCombination {
	return Term(idx, field.One())
}

// Const returns the linear combination representing the bare constant v,
// expressed as v * z[0] (index 0 is the constant-one wire).
func Const(v field.Element) LinearCombination {
	return Term(0, v)
}

// Plus returns the linear combination lc + other, merging coefficients on
// shared indices.
func (lc LinearCombination) Plus(other LinearCombination) LinearCombination {
	out := make(LinearCombination, len(lc)+len(other))
	for idx, c := range lc {
		out[idx] = c
	}
	for idx, c := range other {
		if existing, ok := out[idx]; ok {
			out[idx] = field.Add(existing, c)
		} else {
			out[idx] = c
		}
	}
	return out
}

// Minus returns the linear combination lc - other.
func (lc LinearCombination) Minus(other LinearCombination) LinearCombination {
	neg := make(LinearCombination, len(other))
	for idx, c := range other {
		neg[idx] = field.Neg(c)
	}
	return lc.Plus(neg)
}

// Scale returns the linear combination scaled by k.
func (lc LinearCombination) Scale(k field.Element) LinearCombination {
	out := make(LinearCombination, len(lc))
	for idx, c := range lc {
		out[idx] = field.Mul(c, k)
	}
	return out
}

// String renders the combination deterministically, sorted by index, for
// debugging and test fixtures.
func (lc LinearCombination) String() string {
	indices := make([]int, 0, len(lc))
	for idx := range lc {
		indices = append(indices, idx)
	}
	sort.Ints(indices)
	terms := make([]string, 0, len(indices))
	for _, idx := range indices {
		c := lc[idx]
		terms = append(terms, fmt.Sprintf("%s*z[%d]", c.String(), idx))
	}
	if len(terms) == 0 {
		return "0"
	}
	return strings.Join(terms, " + ")
}

// Constraint is a single rank-1 constraint (A*z)(B*z) = (C*z). Tag is a
// human-readable label (which gate and clause produced it) used only for
// diagnostics; it has no bearing on the constraint's semantics.
type Constraint struct {
	A, B, C LinearCombination
	Tag     string
}

func (c Constraint) String() string {
	return fmt.Sprintf("(%s) * (%s) = (%s) // %s", c.A, c.B, c.C, c.Tag)
}

// Eval reports whether the constraint is satisfied by the assignment z
// (index-keyed, total over every index referenced).
func (c Constraint) Eval(z map[int]field.Element) bool {
	lhs := field.Mul(evalLC(c.A, z), evalLC(c.B, z))
	rhs := evalLC(c.C, z)
	return field.Equal(lhs, rhs)
}

func evalLC(lc LinearCombination, z map[int]field.Element) field.Element {
	sum := field.Zero()
	for idx, coeff := range lc {
		sum = field.Add(sum, field.Mul(coeff, z[idx]))
	}
	return sum
}
