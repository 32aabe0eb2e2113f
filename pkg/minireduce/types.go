package minireduce

import "context"

// Pair is a single intermediate (key, value) emitted by a mapper.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// Emitter collects pairs produced by one Map call. Each mapper gets its own.
type Emitter[K comparable, V any] func(Pair[K, V])

// Job is the pluggable part of a pipeline run.
//
// P is the partition type handed to Map (a text slice, a line slice, ...),
// K and V are the intermediate pair types, and R is the per-bucket result.
// R doubles as the final result type: Merge folds the reducer results,
// in bucket order, into one value of the same shape.
type Job[P any, K comparable, V any, R any] interface {
	// Map turns one partition into pairs. It must not touch shared state.
	Map(ctx context.Context, partition P, emit Emitter[K, V]) error

	// Hash routes a key to a bucket. It must be a pure function of the key.
	Hash(key K) uint32

	// Reduce folds every pair of one bucket into a partial result.
	Reduce(ctx context.Context, bucket int, pairs []Pair[K, V]) (R, error)

	// Merge combines the reducer results into the final result.
	Merge(results []R) (R, error)
}
