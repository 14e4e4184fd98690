package das

import (
	"errors"
	"sync/atomic"
	"testing"
)

func TestParallelChunksCoversEveryIndex(t *testing.T) {
	for _, workers := range []int{1, 4} {
		n := 37
		hits := make([]int32, n)
		err := ParallelChunks(n, 5, workers, func(start, end int) error {
			for i := start; i < end; i++ {
				atomic.AddInt32(&hits[i], 1)
			}
			return nil
		})
		if err != nil {
			t.Fatalf("ParallelChunks(workers=%d): %v", workers, err)
		}
		for i, h := range hits {
			if h != 1 {
				t.Errorf("workers=%d: index %d visited %d times", workers, i, h)
			}
		}
	}
}

func TestParallelChunksPropagatesError(t *testing.T) {
	wantErr := errors.New("boom")
	err := ParallelChunks(10, 2, 4, func(start, end int) error {
		if start == 4 {
			return wantErr
		}
		return nil
	})
	if err != wantErr {
		t.Errorf("expected propagated error, got %v", err)
	}
}

func TestParallelMapOrderedResults(t *testing.T) {
	for _, workers := range []int{1, 4} {
		n := 20
		out, err := ParallelMap(n, workers, func(i int) (int, error) {
			return i * i, nil
		})
		if err != nil {
			t.Fatalf("ParallelMap(workers=%d): %v", workers, err)
		}
		for i := 0; i < n; i++ {
			if out[i] != i*i {
				t.Errorf("workers=%d: out[%d] = %d, want %d", workers, i, out[i], i*i)
			}
		}
	}
}

func TestParallelMapPropagatesError(t *testing.T) {
	wantErr := errors.New("boom")
	_, err := ParallelMap(5, 4, func(i int) (int, error) {
		if i == 3 {
			return 0, wantErr
		}
		return i, nil
	})
	if err != wantErr {
		t.Errorf("expected propagated error, got %v", err)
	}
}

func TestJoinRunsBoth(t *testing.T) {
	for _, workers := range []int{1, 4} {
		var aRan, bRan bool
		errA, errB := Join(workers,
			func() error { aRan = true; return nil },
			func() error { bRan = true; return nil },
		)
		if errA != nil || errB != nil {
			t.Fatalf("workers=%d: unexpected errors %v / %v", workers, errA, errB)
		}
		if !aRan || !bRan {
			t.Errorf("workers=%d: both branches should have run", workers)
		}
	}
}
