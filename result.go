package pprimes

// Result holds the settled outcome of a search: one slot per integer in
// [0, Max], slot i true iff i is prime. Slots 0 and 1 are always false.
// A Result is immutable once returned by Find and safe for concurrent
// reads.
type Result struct {
	max    int64
	marked []bool
	stats  Stats
}

// Max returns the inclusive upper bound of the searched range.
func (r *Result) Max() int64 {
	return r.max
}

// IsPrime reports whether i was marked prime. Indices outside [0, Max]
// report false.
func (r *Result) IsPrime(i int64) bool {
	return i >= 0 && i <= r.max && r.marked[i]
}

// Count returns the number of primes in the range. It is derived from the
// buffer itself, not from counters kept during the run.
func (r *Result) Count() int64 {
	var n int64
	for _, m := range r.marked {
		if m {
			n++
		}
	}
	return n
}

// Primes returns every prime in the range in ascending order.
func (r *Result) Primes() []int64 {
	out := make([]int64, 0, r.Count())
	for i := rangeStart; i <= r.max; i++ {
		if r.marked[i] {
			out = append(out, i)
		}
	}
	return out
}

// Stats returns the run statistics snapshot.
func (r *Result) Stats() Stats {
	return r.stats
}
