package r1cs

import (
	"fmt"

	"github.com/zkcircuit/transfer/circuit"
	"github.com/zkcircuit/transfer/field"
)

// System is the flattened rank-1 constraint system produced by ToR1CS. It
// is immutable once returned.
type System struct {
	Constraints      []Constraint
	VarMap           map[string]int
	NumVariables     int
	NumPublicInputs  int
	PublicInputNames []string
}

// ToR1CS flattens a circuit IR into a rank-1 constraint system. It is
// deterministic and total over any well-formed IR: the same IR always
// produces byte-identical var maps, public-input orderings and constraint
// sequences.
func ToR1CS(ir *circuit.IR) *System {
	vars := newVarTable()
	var constraints []Constraint
	var publicNames []string

	addPreamble := func(wireBase string, value int32) {
		name := wireBase + "_initial_balance"
		idx := vars.indexOf(name)
		publicNames = append(publicNames, name)
		constraints = append(constraints, Constraint{
			A:   Var(idx),
			B:   Const(field.One()),
			C:   Const(field.FromI32(value)),
			Tag: fmt.Sprintf("preamble: %s", name),
		})
	}

	if ir.HasSender() {
		addPreamble(ir.Sender, ir.Inputs[ir.Sender])
	}
	if ir.HasReceiver() {
		addPreamble(ir.Receiver, ir.Inputs[ir.Receiver])
	}
	{
		name := "transfer_amount_public"
		idx := vars.indexOf(name)
		publicNames = append(publicNames, name)
		constraints = append(constraints, Constraint{
			A:   Var(idx),
			B:   Const(field.One()),
			C:   Const(field.FromI32(ir.TransferAmount)),
			Tag: "preamble: transfer_amount_public",
		})
	}

	for _, g := range ir.Gates {
		constraints = append(constraints, compileGate(vars, g)...)
	}

	return &System{
		Constraints:      constraints,
		VarMap:           vars.snapshot(),
		NumVariables:     vars.next,
		NumPublicInputs:  1 + len(publicNames),
		PublicInputNames: publicNames,
	}
}

func compileGate(vars *varTable, g circuit.Gate) []Constraint {
	one := Const(field.One())

	switch g.Kind {
	case circuit.Add:
		a, b, c := vars.indexOf(g.A), vars.indexOf(g.B), vars.indexOf(g.C)
		return []Constraint{{
			A:   Var(a).Plus(Var(b)),
			B:   one,
			C:   Var(c),
			Tag: fmt.Sprintf("add %s %s %s", g.A, g.B, g.C),
		}}

	case circuit.Sub:
		a, b, c := vars.indexOf(g.A), vars.indexOf(g.B), vars.indexOf(g.C)
		return []Constraint{{
			A:   Var(a).Minus(Var(b)),
			B:   one,
			C:   Var(c),
			Tag: fmt.Sprintf("sub %s %s %s", g.A, g.B, g.C),
		}}

	case circuit.Mul:
		a, b, c := vars.indexOf(g.A), vars.indexOf(g.B), vars.indexOf(g.C)
		return []Constraint{{
			A:   Var(a),
			B:   Var(b),
			C:   Var(c),
			Tag: fmt.Sprintf("mul %s %s %s", g.A, g.B, g.C),
		}}

	case circuit.ConstGate:
		n := vars.indexOf(g.Name)
		return []Constraint{{
			A:   Const(field.FromI32(g.Value)),
			B:   one,
			C:   Var(n),
			Tag: fmt.Sprintf("const %s %d", g.Name, g.Value),
		}}

	case circuit.Hash:
		x, y := vars.indexOf(g.A), vars.indexOf(g.C)
		seven := field.FromI32(7)
		return []Constraint{{
			A:   Var(x),
			B:   Const(seven),
			C:   Var(y),
			Tag: fmt.Sprintf("hash %s %s", g.A, g.C),
		}}

	case circuit.Eq:
		a, b, d := vars.indexOf(g.A), vars.indexOf(g.B), vars.indexOf(g.C)
		return []Constraint{
			{
				A:   Var(a).Minus(Var(b)),
				B:   one,
				C:   Var(d),
				Tag: fmt.Sprintf("eq %s %s %s (difference)", g.A, g.B, g.C),
			},
			{
				A:   Var(d),
				B:   Var(d),
				C:   LinearCombination{},
				Tag: fmt.Sprintf("eq %s %s %s (forces zero)", g.A, g.B, g.C),
			},
		}

	case circuit.Xor:
		a, b, c := vars.indexOf(g.A), vars.indexOf(g.B), vars.indexOf(g.C)
		p := vars.indexOf(circuit.XorProductWire(g.A, g.B))
		two := field.FromI32(2)
		return []Constraint{
			{
				A:   Var(a),
				B:   Var(b),
				C:   Var(p),
				Tag: fmt.Sprintf("xor %s %s %s (product)", g.A, g.B, g.C),
			},
			{
				A:   Var(a).Plus(Var(b)).Minus(Var(p).Scale(two)),
				B:   one,
				C:   Var(c),
				Tag: fmt.Sprintf("xor %s %s %s (output)", g.A, g.B, g.C),
			},
			{
				A:   Var(a),
				B:   Var(a),
				C:   Var(a),
				Tag: fmt.Sprintf("xor %s %s %s (a boolean)", g.A, g.B, g.C),
			},
			{
				A:   Var(b),
				B:   Var(b),
				C:   Var(b),
				Tag: fmt.Sprintf("xor %s %s %s (b boolean)", g.A, g.B, g.C),
			},
		}
	}

	return nil
}
