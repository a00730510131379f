package pprimes

import (
	"context"
	"fmt"
	"testing"
)

func BenchmarkFind(b *testing.B) {
	ctx := context.Background()

	for _, max := range []int64{10_000, 100_000, 1_000_000} {
		for _, workers := range []int{1, 2, 4, 8} {
			b.Run(fmt.Sprintf("max_%d/workers_%d", max, workers), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					if _, err := Find(ctx, max, WithWorkers(workers)); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkCursorClaim(b *testing.B) {
	cur := newCursor(int64(b.N) + rangeStart)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cur.claim()
	}
}
