package snark

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/zkcircuit/transfer/r1cs"
	"github.com/zkcircuit/transfer/witness"
)

// ProveJob is one unit of work for ProveAll: a system, its proving key,
// and the witness assignment to prove against.
type ProveJob struct {
	System     *r1cs.System
	ProvingKey ProvingKey
	Assignment witness.Assignment
}

// ProveAll runs jobs concurrently, bounded to maxWorkers at a time (4 when
// maxWorkers is zero or negative), and returns one Proof per job in the
// same order as jobs. If any job fails,
// ProveAll returns the first error and cancels the remaining work; this
// is the same single-threaded-per-call contract as Prove, just fanned
// out across a bounded pool since every job's inputs are immutable.
func ProveAll(ctx context.Context, logger *slog.Logger, jobs []ProveJob, maxWorkers int) ([]Proof, error) {
	if maxWorkers <= 0 {
		maxWorkers = 4
	}

	proofs := make([]Proof, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxWorkers)

	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			proof, err := Prove(logger, job.System, job.ProvingKey, job.Assignment)
			if err != nil {
				return err
			}
			proofs[i] = proof
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return proofs, nil
}
