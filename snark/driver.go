// Package snark adapts an r1cs.System into gnark's Groth16 backend over
// BN254: Setup produces a proving/verifying key pair, Prove produces a
// proof for a witness assignment, Verify checks a proof against public
// inputs given in canonical order.
package snark

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	gfrontend "github.com/consensys/gnark/frontend"
	gr1cs "github.com/consensys/gnark/frontend/cs/r1cs"

	"github.com/zkcircuit/transfer/field"
	"github.com/zkcircuit/transfer/r1cs"
	"github.com/zkcircuit/transfer/witness"
)

// Curve is the fixed pairing-friendly curve this driver targets.
const Curve = ecc.BN254

// ProvingKey, VerifyingKey and Proof are opaque handles produced by the
// driver. Callers treat them as byte-serializable blobs (they satisfy
// io.WriterTo / io.ReaderFrom via the underlying gnark types).
type (
	ProvingKey   = groth16.ProvingKey
	VerifyingKey = groth16.VerifyingKey
	Proof        = groth16.Proof
)

// Setup compiles sys into a gnark constraint system with a dummy all-zero
// witness and runs Groth16's trusted setup.
func Setup(logger *slog.Logger, sys *r1cs.System) (ProvingKey, VerifyingKey, error) {
	start := time.Now()
	cs, err := gfrontend.Compile(Curve.ScalarField(), gr1cs.NewBuilder, newProveCircuit(sys, nil))
	if err != nil {
		return nil, nil, fmt.Errorf("snark: compile: %w", err)
	}

	pk, vk, err := groth16.Setup(cs)
	if err != nil {
		return nil, nil, fmt.Errorf("snark: setup: %w", err)
	}

	if logger != nil {
		logger.Info("setup complete",
			slog.Int("constraints", cs.GetNbConstraints()),
			slog.Int("public_vars", cs.GetNbPublicVariables()),
			slog.Int("private_vars", cs.GetNbSecretVariables()),
			slog.Duration("elapsed", time.Since(start)))
	}
	return pk, vk, nil
}

// Prove compiles sys into a gnark constraint system bound to assignment
// and runs Groth16 proving against pk.
func Prove(logger *slog.Logger, sys *r1cs.System, pk ProvingKey, assignment witness.Assignment) (Proof, error) {
	start := time.Now()
	cs, err := gfrontend.Compile(Curve.ScalarField(), gr1cs.NewBuilder, newSetupCircuit(sys))
	if err != nil {
		return nil, fmt.Errorf("snark: compile: %w", err)
	}

	fullWitness, err := gfrontend.NewWitness(newProveCircuit(sys, assignment), Curve.ScalarField())
	if err != nil {
		return nil, fmt.Errorf("snark: build witness: %w", err)
	}

	proof, err := groth16.Prove(cs, pk, fullWitness)
	if err != nil {
		return nil, fmt.Errorf("snark: prove: %w", err)
	}

	if logger != nil {
		logger.Info("proof generated",
			slog.Int("constraints", cs.GetNbConstraints()),
			slog.Duration("elapsed", time.Since(start)))
	}
	return proof, nil
}

// Verify checks proof against vk and publicInputs. publicInputs must be
// in canonical order: F(1) followed by witness[var_map[name]] for each
// name in sys.PublicInputNames, in that order.
func Verify(sys *r1cs.System, vk VerifyingKey, proof Proof, publicInputs []field.Element) (bool, error) {
	if len(publicInputs) != 1+len(sys.PublicInputNames) {
		return false, fmt.Errorf("snark: expected %d public inputs, got %d", 1+len(sys.PublicInputNames), len(publicInputs))
	}
	if !field.Equal(publicInputs[0], field.One()) {
		return false, fmt.Errorf("snark: public_inputs[0] must be F(1)")
	}

	publicWitness, err := gfrontend.NewWitness(newPublicOnlyCircuit(sys, publicInputs), Curve.ScalarField(), gfrontend.PublicOnly())
	if err != nil {
		return false, fmt.Errorf("snark: build public witness: %w", err)
	}

	if err := groth16.Verify(proof, vk, publicWitness); err != nil {
		return false, nil
	}
	return true, nil
}
