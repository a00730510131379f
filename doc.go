// Package pprimes computes primality over an integer range with a fixed
// pool of workers coordinated through a single shared cursor.
//
// Every worker repeatedly claims the next unclaimed candidate from a
// mutex-guarded cursor, evaluates it with a trial-division oracle outside
// the lock, and writes its own slot in a shared result buffer. The cursor
// hands out each candidate in [2, max] exactly once, no two workers ever
// write the same slot, and the prime set is identical to a sequential scan
// for every worker count.
//
// # Quick Start
//
//	res, err := pprimes.Find(context.Background(), 30, pprimes.WithWorkers(4))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, p := range res.Primes() {
//	    fmt.Println(p)
//	}
//
// The default configuration runs two workers. A single worker scans the
// range inline, with no locking and no goroutines.
//
// # Concurrency Model
//
// The cursor is the only shared state requiring mutual exclusion, and its
// lock is held only for a compare-and-increment, so hold time stays
// constant no matter how expensive individual candidates are. Result slots
// are partitioned 1:1 between candidate and claimant at claim time, so
// slot writes need no synchronization. Find joins all workers before
// returning, which is the single happens-before edge between the workers'
// writes and the caller reading the result.
package pprimes
