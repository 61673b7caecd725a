package parallel

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/parridge/parridge/pkg/errors"
)

func TestParallelizeCoversAllIndices(t *testing.T) {
	tests := []struct {
		name  string
		items int
	}{
		{name: "zero items", items: 0},
		{name: "single item", items: 1},
		{name: "fewer items than cores", items: 3},
		{name: "many items", items: 10000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen := make([]bool, tt.items)
			Parallelize(tt.items, func(start, end int) {
				// Chunks are disjoint, so writes do not race.
				for i := start; i < end; i++ {
					if seen[i] {
						t.Errorf("index %d visited twice", i)
					}
					seen[i] = true
				}
			})
			for i, ok := range seen {
				if !ok {
					t.Errorf("index %d never visited", i)
				}
			}
		})
	}
}

func TestParallelizeWithThreshold(t *testing.T) {
	var calls int32
	ParallelizeWithThreshold(10, 100, func(start, end int) {
		atomic.AddInt32(&calls, 1)
		if start != 0 || end != 10 {
			t.Errorf("sequential path got range [%d, %d), want [0, 10)", start, end)
		}
	})
	if calls != 1 {
		t.Errorf("below threshold: got %d calls, want 1", calls)
	}
}

func TestForEachPartition(t *testing.T) {
	var visited int32
	err := ForEachPartition(context.Background(), 8, func(_ context.Context, p int) error {
		atomic.AddInt32(&visited, 1)
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if visited != 8 {
		t.Errorf("visited %d partitions, want 8", visited)
	}
}

func TestForEachPartitionPropagatesError(t *testing.T) {
	boom := errors.New("partition failure")
	err := ForEachPartition(context.Background(), 4, func(_ context.Context, p int) error {
		if p == 2 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Errorf("got error %v, want %v", err, boom)
	}
}
