package snark

import (
	"github.com/consensys/gnark/frontend"

	"github.com/zkcircuit/transfer/field"
	"github.com/zkcircuit/transfer/r1cs"
	"github.com/zkcircuit/transfer/witness"
)

// adapterCircuit is the gnark-facing view of an r1cs.System. It carries no
// fixed fields of its own: Public and Private are sized from the system's
// PublicInputNames and NumVariables so that the same struct shape serves
// any compiled circuit, no matter how many gates or wires it has.
//
// Index 0 (the constant-one wire) is never allocated as a gnark Variable;
// gnark folds literal constants into linear combinations natively, so
// terms referencing index 0 are built from the literal field value 1
// directly in Define, not from a struct field.
type adapterCircuit struct {
	Public  []frontend.Variable `gnark:",public"`
	Private []frontend.Variable

	system *r1cs.System
}

// newSetupCircuit returns a circuit shaped for frontend.Compile: the
// correct number of Public/Private slots, no bound values. gnark only
// needs the structure at compile time.
func newSetupCircuit(sys *r1cs.System) *adapterCircuit {
	numPublic := len(sys.PublicInputNames)
	numPrivate := sys.NumVariables - 1 - numPublic
	return &adapterCircuit{
		Public:  make([]frontend.Variable, numPublic),
		Private: make([]frontend.Variable, numPrivate),
		system:  sys,
	}
}

// newProveCircuit returns a circuit with every slot bound to its real
// assignment value, in the same Public/Private shape newSetupCircuit
// uses, so the compiled constraint system's variable ordering matches.
func newProveCircuit(sys *r1cs.System, assignment witness.Assignment) *adapterCircuit {
	c := newSetupCircuit(sys)
	for i, name := range sys.PublicInputNames {
		c.Public[i] = valueOrZero(assignment, sys.VarMap[name])
	}
	privateIdx := 0
	for idx := 1; idx < sys.NumVariables; idx++ {
		if isPublicIndex(sys, idx) {
			continue
		}
		c.Private[privateIdx] = valueOrZero(assignment, idx)
		privateIdx++
	}
	return c
}

// newPublicOnlyCircuit returns a circuit bound only for public-witness
// extraction at verify time; Private slots are left nil and never
// touched by Define's public-witness path.
func newPublicOnlyCircuit(sys *r1cs.System, publicInputs []field.Element) *adapterCircuit {
	c := &adapterCircuit{
		Public: make([]frontend.Variable, len(sys.PublicInputNames)),
		system: sys,
	}
	for i := range sys.PublicInputNames {
		c.Public[i] = publicInputs[i+1]
	}
	return c
}

func valueOrZero(assignment witness.Assignment, idx int) frontend.Variable {
	if assignment == nil {
		return field.Zero()
	}
	v, ok := assignment[idx]
	if !ok {
		return field.Zero()
	}
	return v
}

func isPublicIndex(sys *r1cs.System, idx int) bool {
	for _, name := range sys.PublicInputNames {
		if sys.VarMap[name] == idx {
			return true
		}
	}
	return false
}

// Define builds, for every constraint in the system, the three linear
// combinations A, B, C over the allocated gnark variables and asserts
// (A*z)*(B*z) = (C*z). Allocation order (constant-one implicit, then
// public_input_names in order, then remaining indices) is fixed by the
// shape newSetupCircuit/newProveCircuit construct identically at setup
// and prove time — that agreement is what keeps the proving key valid.
func (c *adapterCircuit) Define(api frontend.API) error {
	handles := make([]frontend.Variable, c.system.NumVariables)
	handles[0] = 1

	for i, name := range c.system.PublicInputNames {
		handles[c.system.VarMap[name]] = c.Public[i]
	}
	privateIdx := 0
	for idx := 1; idx < c.system.NumVariables; idx++ {
		if isPublicIndex(c.system, idx) {
			continue
		}
		handles[idx] = c.Private[privateIdx]
		privateIdx++
	}

	for _, constraint := range c.system.Constraints {
		a := buildLC(api, constraint.A, handles)
		b := buildLC(api, constraint.B, handles)
		c2 := buildLC(api, constraint.C, handles)
		api.AssertIsEqual(api.Mul(a, b), c2)
	}
	return nil
}

func buildLC(api frontend.API, lc r1cs.LinearCombination, handles []frontend.Variable) frontend.Variable {
	var sum frontend.Variable
	first := true
	for idx, coeff := range lc {
		term := api.Mul(coeff, handles[idx])
		if first {
			sum = term
			first = false
			continue
		}
		sum = api.Add(sum, term)
	}
	if first {
		return 0
	}
	return sum
}
