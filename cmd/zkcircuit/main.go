// Command zkcircuit parses a textual circuit description, compiles it to
// R1CS, runs a trusted setup, computes a witness, generates a proof, and
// verifies it — printing a one-line summary after each stage.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/zkcircuit/transfer/circuit"
	"github.com/zkcircuit/transfer/field"
	"github.com/zkcircuit/transfer/r1cs"
	"github.com/zkcircuit/transfer/snark"
	"github.com/zkcircuit/transfer/witness"
)

func main() {
	verbose := flag.Bool("v", false, "verbose logging (debug level)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: zkcircuit [-v] <circuit-file>")
		os.Exit(1)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(logger, flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, path string) error {
	ir, err := circuit.ParseFile(path)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	fmt.Printf("parsed circuit %q: %d input(s), %d gate(s)\n", ir.Name, len(ir.Inputs), len(ir.Gates))

	sys := r1cs.ToR1CS(ir)
	fmt.Printf("compiled R1CS: %d constraint(s), %d variable(s), %d public input(s) %v\n",
		len(sys.Constraints), sys.NumVariables, sys.NumPublicInputs, sys.PublicInputNames)

	pk, vk, err := snark.Setup(logger, sys)
	if err != nil {
		return fmt.Errorf("setup: %w", err)
	}
	fmt.Println("trusted setup complete")

	assignment, err := witness.Compute(ir, sys.VarMap)
	if err != nil {
		return fmt.Errorf("witness: %w", err)
	}
	fmt.Printf("computed witness: %d assigned wire(s)\n", len(assignment))

	ctx := context.Background()
	proofs, err := snark.ProveAll(ctx, logger, []snark.ProveJob{{System: sys, ProvingKey: pk, Assignment: assignment}}, 1)
	if err != nil {
		return fmt.Errorf("prove: %w", err)
	}
	proof := proofs[0]
	fmt.Println("proof generated")

	publicInputs := publicInputsOf(sys, assignment)
	ok, err := snark.Verify(sys, vk, proof, publicInputs)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	fmt.Printf("verification result: %t\n", ok)
	if !ok {
		os.Exit(1)
	}
	return nil
}

// publicInputsOf assembles the canonical public-input vector: the
// constant one followed by the witness value of each name in
// sys.PublicInputNames, in order.
func publicInputsOf(sys *r1cs.System, assignment witness.Assignment) []field.Element {
	out := make([]field.Element, 0, 1+len(sys.PublicInputNames))
	out = append(out, field.One())
	for _, name := range sys.PublicInputNames {
		out = append(out, assignment[sys.VarMap[name]])
	}
	return out
}
