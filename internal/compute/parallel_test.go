package compute

import (
	"sync"
	"testing"
)

func TestParallelFor_CoversRangeOnce(t *testing.T) {
	tests := []struct {
		workers, n, minChunk int
	}{
		{4, 100, 4},
		{8, 3, 4},
		{3, 10, 1},
		{1, 50, 1},
		{16, 1000, 7},
		{4, 0, 4},
	}

	for _, tt := range tests {
		hits := make([]int, tt.n)
		var mu sync.Mutex
		ParallelFor(tt.workers, tt.n, tt.minChunk, func(start, end int) {
			mu.Lock()
			defer mu.Unlock()
			for k := start; k < end; k++ {
				hits[k]++
			}
		})
		for k, h := range hits {
			if h != 1 {
				t.Fatalf("workers=%d n=%d: index %d visited %d times", tt.workers, tt.n, k, h)
			}
		}
	}
}
