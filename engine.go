package pprimes

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/primeworks/pprimes/prime"
)

// rangeStart is the low bound of every candidate range. 0 and 1 are not
// prime and are never claimed; their slots stay false.
const rangeStart int64 = 2

// Find computes primality for every integer in [2, maxValue] and returns
// the settled result. With one worker the range is scanned inline, without
// locking or goroutines; with more, a fresh cursor seeded at 2 distributes
// candidates to exactly Config.Workers workers and Find returns only after
// every worker has drained the range.
//
// The prime set is identical for every worker count: concurrency changes
// the wall-clock time, never the answer.
//
// Example:
//
//	res, err := pprimes.Find(ctx, 1_000_000, pprimes.WithWorkers(8))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Count())
func Find(ctx context.Context, maxValue int64, opts ...Option) (*Result, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if maxValue < rangeStart {
		return nil, ErrMaxValueTooSmall
	}
	if maxValue > MaxBufferValue {
		return nil, ErrMaxValueTooLarge
	}

	if cfg.Logger != nil {
		cfg.Logger.WithFields(logrus.Fields{
			"max_value": maxValue,
			"workers":   cfg.Workers,
		}).Debug("starting search")
	}

	marked := make([]bool, maxValue+1)
	stats := &statsStore{}
	start := time.Now()

	var err error
	if cfg.Workers == 1 {
		err = runSequential(ctx, maxValue, marked, stats)
	} else {
		err = runPool(ctx, cfg.Workers, maxValue, marked, stats)
	}
	if err != nil {
		return nil, err
	}

	res := &Result{
		max:    maxValue,
		marked: marked,
		stats:  stats.snapshot(cfg.Workers, time.Since(start)),
	}

	if cfg.Logger != nil {
		cfg.Logger.WithFields(logrus.Fields{
			"max_value": maxValue,
			"workers":   cfg.Workers,
			"primes":    res.stats.Primes,
			"elapsed":   res.stats.Elapsed,
		}).Debug("search complete")
	}

	return res, nil
}

// runSequential scans the range inline. No cursor, no lock, no goroutines:
// this is both the single-worker fast path and the reference the parallel
// path is tested against.
func runSequential(ctx context.Context, max int64, marked []bool, stats *statsStore) error {
	for n := rangeStart; n <= max; n++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		stats.addClaimed(1)
		if prime.Is(n) {
			marked[n] = true
			stats.addPrimes(1)
		}
	}
	return nil
}

// runPool starts the requested number of workers over a fresh cursor and
// blocks until every one of them has observed range exhaustion. The group
// wait is the single synchronization point guaranteeing the buffer is
// fully settled before the caller reads it.
func runPool(ctx context.Context, workers int, max int64, marked []bool, stats *statsStore) error {
	cur := newCursor(max)

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			return runWorker(gctx, cur, marked, stats)
		})
	}
	return g.Wait()
}
