package pprimes

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestCursorDrainsRangeInOrder(t *testing.T) {
	cur := newCursor(10)

	for want := rangeStart; want <= 10; want++ {
		n, ok := cur.claim()
		require.True(t, ok)
		assert.Equal(t, want, n)
	}

	_, ok := cur.claim()
	assert.False(t, ok, "cursor must report exhaustion past max")
	_, ok = cur.claim()
	assert.False(t, ok, "exhaustion must be sticky")
}

func TestCursorEmptyRange(t *testing.T) {
	// max below the seed: exhausted from the first claim.
	cur := newCursor(1)
	_, ok := cur.claim()
	assert.False(t, ok)
}

func TestCursorConcurrentClaimsExactlyOnce(t *testing.T) {
	const max = int64(5000)
	const claimants = 8

	cur := newCursor(max)

	var mu sync.Mutex
	seen := make(map[int64]int, max)

	var wg sync.WaitGroup
	for i := 0; i < claimants; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]int64, 0, max/claimants)
			for {
				n, ok := cur.claim()
				if !ok {
					break
				}
				local = append(local, n)
			}
			mu.Lock()
			for _, n := range local {
				seen[n]++
			}
			mu.Unlock()
		}()
	}
	wg.Wait()

	require.Len(t, seen, int(max-rangeStart+1))
	for n := rangeStart; n <= max; n++ {
		if seen[n] != 1 {
			t.Fatalf("candidate %d claimed %d times", n, seen[n])
		}
	}
}

// recordingSource wraps a cursor and records every claim it hands out, so
// tests can assert the multiset of claims across a whole pool run.
type recordingSource struct {
	inner *cursor

	mu     sync.Mutex
	claims []int64
}

func (r *recordingSource) claim() (int64, bool) {
	n, ok := r.inner.claim()
	if ok {
		r.mu.Lock()
		r.claims = append(r.claims, n)
		r.mu.Unlock()
	}
	return n, ok
}

func TestWorkersClaimEveryCandidateExactlyOnce(t *testing.T) {
	const max = int64(3000)
	const workers = 6

	src := &recordingSource{inner: newCursor(max)}
	marked := make([]bool, max+1)
	stats := &statsStore{}

	g, ctx := errgroup.WithContext(context.Background())
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			return runWorker(ctx, src, marked, stats)
		})
	}
	require.NoError(t, g.Wait())

	require.Len(t, src.claims, int(max-rangeStart+1))
	counts := make(map[int64]int, len(src.claims))
	for _, n := range src.claims {
		counts[n]++
	}
	for n := rangeStart; n <= max; n++ {
		if counts[n] != 1 {
			t.Fatalf("candidate %d claimed %d times", n, counts[n])
		}
	}

	assert.Equal(t, int64(max-rangeStart+1), stats.snapshot(workers, 0).Claimed)
}
