package witness

import (
	"github.com/zkcircuit/transfer/circuit"
	"github.com/zkcircuit/transfer/field"
)

// Assignment maps an R1CS variable index to its field-element value.
type Assignment map[int]field.Element

// Compute evaluates every gate of ir in declaration order, seeded with
// the declared inputs, the constant-one wire, and the preamble's
// sender/receiver/transfer-amount literals, and projects the result onto
// the indices of varMap.
func Compute(ir *circuit.IR, varMap map[string]int) (Assignment, error) {
	values := make(map[string]field.Element, len(varMap))

	values["1"] = field.One()
	for name, v := range ir.Inputs {
		values[name] = field.FromI32(v)
	}
	if ir.HasSender() {
		values[ir.Sender+"_initial_balance"] = field.FromI32(ir.Inputs[ir.Sender])
	}
	if ir.HasReceiver() {
		values[ir.Receiver+"_initial_balance"] = field.FromI32(ir.Inputs[ir.Receiver])
	}
	values["transfer_amount_public"] = field.FromI32(ir.TransferAmount)

	for _, g := range ir.Gates {
		if err := evalGate(values, g); err != nil {
			return nil, err
		}
	}

	out := make(Assignment, len(varMap))
	for name, idx := range varMap {
		v, ok := values[name]
		if !ok {
			return nil, &MissingWitness{Name: name}
		}
		out[idx] = v
	}
	return out, nil
}

func lookup(values map[string]field.Element, name string) (field.Element, error) {
	v, ok := values[name]
	if !ok {
		return field.Element{}, &UndefinedWire{Name: name}
	}
	return v, nil
}

func evalGate(values map[string]field.Element, g circuit.Gate) error {
	switch g.Kind {
	case circuit.Add:
		a, err := lookup(values, g.A)
		if err != nil {
			return err
		}
		b, err := lookup(values, g.B)
		if err != nil {
			return err
		}
		values[g.C] = field.Add(a, b)

	case circuit.Sub:
		a, err := lookup(values, g.A)
		if err != nil {
			return err
		}
		b, err := lookup(values, g.B)
		if err != nil {
			return err
		}
		values[g.C] = field.Sub(a, b)

	case circuit.Mul:
		a, err := lookup(values, g.A)
		if err != nil {
			return err
		}
		b, err := lookup(values, g.B)
		if err != nil {
			return err
		}
		values[g.C] = field.Mul(a, b)

	case circuit.ConstGate:
		values[g.Name] = field.FromI32(g.Value)

	case circuit.Hash:
		x, err := lookup(values, g.A)
		if err != nil {
			return err
		}
		values[g.C] = field.Mul(field.FromI32(7), x)

	case circuit.Xor:
		a, err := lookup(values, g.A)
		if err != nil {
			return err
		}
		if !field.IsBoolean(a) {
			return &NonBooleanInput{Name: g.A}
		}
		b, err := lookup(values, g.B)
		if err != nil {
			return err
		}
		if !field.IsBoolean(b) {
			return &NonBooleanInput{Name: g.B}
		}
		prod := field.Mul(a, b)
		values[circuit.XorProductWire(g.A, g.B)] = prod
		two := field.FromI32(2)
		values[g.C] = field.Sub(field.Add(a, b), field.Mul(two, prod))

	case circuit.Eq:
		a, err := lookup(values, g.A)
		if err != nil {
			return err
		}
		b, err := lookup(values, g.B)
		if err != nil {
			return err
		}
		if !field.Equal(a, b) {
			return &EqualityMismatch{}
		}
		values[g.C] = field.Zero()
	}
	return nil
}
