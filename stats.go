package pprimes

import (
	"sync/atomic"
	"time"
)

// Stats describes a completed run.
type Stats struct {
	Claimed int64         // Candidates handed out by the cursor
	Primes  int64         // Candidates that evaluated prime
	Workers int           // Worker count the run was configured with
	Elapsed time.Duration // Wall clock from buffer allocation to join
}

// statsStore accumulates counters while workers are running.
// All fields are atomic: workers update them outside any lock.
type statsStore struct {
	claimed int64
	primes  int64
}

func (s *statsStore) addClaimed(n int64) { atomic.AddInt64(&s.claimed, n) }
func (s *statsStore) addPrimes(n int64)  { atomic.AddInt64(&s.primes, n) }

func (s *statsStore) snapshot(workers int, elapsed time.Duration) Stats {
	return Stats{
		Claimed: atomic.LoadInt64(&s.claimed),
		Primes:  atomic.LoadInt64(&s.primes),
		Workers: workers,
		Elapsed: elapsed,
	}
}
