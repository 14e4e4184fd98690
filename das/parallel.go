package das

// Concurrency abstraction (Component M): a pluggable parallel-vs-serial
// backend whose output is identical regardless of worker count.
//
// Grounded on original_source's maybe_rayon crate (multi_threaded.rs /
// single_threaded.rs and its shared trait), which exposes exactly this
// three-function surface — maybe_par_iter, maybe_par_chunks_mut, join —
// switchable by a Cargo feature flag. Go has no equivalent conditional
// dependency selection, so the serial/parallel choice is the workers
// argument each function takes instead of a build tag, backed by
// golang.org/x/sync/errgroup (an ecosystem library already indirect in
// the teacher's go.mod, promoted to direct) as the worker-pool
// implementation — the Go-idiomatic analogue of rayon's bounded
// thread-pool fan-out with a single join point.

import (
	"golang.org/x/sync/errgroup"
)

// ParallelChunks applies fn to each half-open range [start, end) covering
// [0, n) in chunks of chunkSize, fanning out across up to workers
// goroutines. workers <= 1 runs serially in index order. The partitioning
// itself does not depend on worker count, so results are deterministic
// either way — callers must only ensure fn's side effects are
// partition-local (writing disjoint output slice ranges, for instance).
func ParallelChunks(n, chunkSize, workers int, fn func(start, end int) error) error {
	if chunkSize <= 0 {
		chunkSize = n
	}
	if workers <= 1 {
		for start := 0; start < n; start += chunkSize {
			end := minInt(start+chunkSize, n)
			if err := fn(start, end); err != nil {
				return err
			}
		}
		return nil
	}

	g := new(errgroup.Group)
	g.SetLimit(workers)
	for start := 0; start < n; start += chunkSize {
		start := start
		end := minInt(start+chunkSize, n)
		g.Go(func() error { return fn(start, end) })
	}
	return g.Wait()
}

// ParallelMap applies fn to every index in [0, n) and collects the
// results in order, fanning out across up to workers goroutines.
func ParallelMap[T any](n, workers int, fn func(i int) (T, error)) ([]T, error) {
	out := make([]T, n)
	if workers <= 1 {
		for i := 0; i < n; i++ {
			v, err := fn(i)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	}

	g := new(errgroup.Group)
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			v, err := fn(i)
			if err != nil {
				return err
			}
			out[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Join runs a and b, concurrently when workers > 1, and returns once both
// have completed: the rayon-style two-way fan-out with a single join
// point.
func Join(workers int, a, b func() error) (errA, errB error) {
	if workers <= 1 {
		return a(), b()
	}
	var g errgroup.Group
	g.Go(func() error { errA = a(); return nil })
	g.Go(func() error { errB = b(); return nil })
	g.Wait()
	return errA, errB
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
