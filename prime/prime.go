// Package prime provides the primality oracle used by the search engine.
package prime

// Is reports whether n is prime. It trial-divides by odd integers using
// the d <= n/d bound, which avoids overflowing d*d on the largest
// representable inputs.
//
// Is touches no shared state and is safe to call from any number of
// goroutines simultaneously.
func Is(n int64) bool {
	if n < 2 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for d := int64(3); d <= n/d; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}
