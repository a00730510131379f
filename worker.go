package pprimes

import (
	"context"

	"github.com/primeworks/pprimes/prime"
)

// claimSource is the pull-scheduling contract between the dispatcher and
// its workers. Implemented by cursor; tests substitute a recording wrapper
// to observe the claim sequence.
type claimSource interface {
	claim() (int64, bool)
}

// runWorker is the loop every pool worker executes: claim a candidate,
// evaluate it, write its own slot. The evaluation and the write happen
// strictly outside the cursor's lock. Non-primes are never written; the
// zeroed buffer already reads false. The slot write needs no
// synchronization because no other worker can claim the same index.
//
// The loop exits when the cursor reports exhaustion or the context is
// cancelled. A claimed candidate is always evaluated before the next claim,
// so a completed run never leaves a claimed slot unsettled.
func runWorker(ctx context.Context, src claimSource, marked []bool, stats *statsStore) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, ok := src.claim()
		if !ok {
			return nil
		}
		stats.addClaimed(1)
		if prime.Is(n) {
			marked[n] = true
			stats.addPrimes(1)
		}
	}
}
