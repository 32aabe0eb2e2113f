package minireduce

import (
	"context"
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultMappers  = 4
	DefaultReducers = 2
)

// Config holds the shape of one pipeline run
type Config struct {
	Mappers  int         // Requested partitions; clamped by the splitter to the unit count
	Reducers int         // Buckets (M); fixed for the whole run
	Workers  int         // Concurrent goroutines per phase (0 = GOMAXPROCS)
	RunID    string      // Identifier used in logs (empty = generate one)
	Logger   *log.Logger // Progress logger (nil = silent)
}

// WithDefaults validates cfg and fills zero values
func (cfg Config) WithDefaults() (Config, error) {
	switch {
	case cfg.Mappers < 0:
		return cfg, ErrInvalidMappers
	case cfg.Reducers < 0:
		return cfg, ErrInvalidReducers
	case cfg.Workers < 0:
		return cfg, ErrInvalidWorkers
	}

	if cfg.Mappers == 0 {
		cfg.Mappers = DefaultMappers
	}
	if cfg.Reducers == 0 {
		cfg.Reducers = DefaultReducers
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	if cfg.RunID == "" {
		cfg.RunID = uuid.New().String()
	}

	return cfg, nil
}

func (cfg Config) logf(format string, args ...any) {
	if cfg.Logger == nil {
		return
	}
	cfg.Logger.Printf("[PIPELINE:%s] "+format, append([]any{cfg.RunID}, args...)...)
}

// Stats describes what a run did
type Stats struct {
	RunID        string
	Partitions   int
	Buckets      int
	Workers      int
	Pairs        int   // Pairs emitted by all mappers
	BucketSizes  []int // Pairs routed to each bucket
	EmptyBuckets int   // Buckets that received no pairs

	MapDuration       time.Duration
	PartitionDuration time.Duration
	ReduceDuration    time.Duration
	MergeDuration     time.Duration
}

// Total returns the wall time spent across all phases
func (s Stats) Total() time.Duration {
	return s.MapDuration + s.PartitionDuration + s.ReduceDuration + s.MergeDuration
}

// Run executes job over the given partitions:
//
//  1. Map: one task per partition on the worker pool, each into its own buffer.
//  2. Barrier.
//  3. Partition: single-threaded routing of every pair to hash(key) mod Reducers.
//  4. Reduce: one task per bucket on the worker pool.
//  5. Barrier.
//  6. Merge: reducer results folded in bucket order.
func Run[P any, K comparable, V any, R any](ctx context.Context, job Job[P, K, V, R], partitions []P, cfg Config) (R, Stats, error) {
	var zero R

	cfg, err := cfg.WithDefaults()
	if err != nil {
		return zero, Stats{}, err
	}
	if len(partitions) == 0 {
		return zero, Stats{}, ErrNoPartitions
	}

	stats := Stats{
		RunID:      cfg.RunID,
		Partitions: len(partitions),
		Buckets:    cfg.Reducers,
		Workers:    cfg.Workers,
	}

	// Map phase
	cfg.logf("Map phase: %d partitions on %d workers", len(partitions), cfg.Workers)
	start := time.Now()

	mapOutputs := make([][]Pair[K, V], len(partitions))
	err = runPool(ctx, len(partitions), cfg.Workers, func(ctx context.Context, i int) error {
		return job.Map(ctx, partitions[i], func(kv Pair[K, V]) {
			mapOutputs[i] = append(mapOutputs[i], kv)
		})
	})
	if err != nil {
		return zero, stats, fmt.Errorf("%w: %w", ErrMapPhase, err)
	}

	stats.MapDuration = time.Since(start)
	for _, out := range mapOutputs {
		stats.Pairs += len(out)
	}
	cfg.logf("Map emitted %d pairs in %v", stats.Pairs, stats.MapDuration)

	// Shuffle
	start = time.Now()
	buckets := PartitionPairs(mapOutputs, cfg.Reducers, job.Hash)
	stats.PartitionDuration = time.Since(start)

	stats.BucketSizes = make([]int, len(buckets))
	for b, pairs := range buckets {
		stats.BucketSizes[b] = len(pairs)
		if len(pairs) == 0 {
			stats.EmptyBuckets++
		}
	}
	cfg.logf("Partitioned into %d buckets (%d empty)", len(buckets), stats.EmptyBuckets)
	if cfg.Reducers > stats.Pairs {
		cfg.logf("Warning: %d reducers for %d pairs, at least %d buckets stay empty",
			cfg.Reducers, stats.Pairs, cfg.Reducers-stats.Pairs)
	}

	// Reduce phase
	start = time.Now()

	results := make([]R, len(buckets))
	err = runPool(ctx, len(buckets), cfg.Workers, func(ctx context.Context, b int) error {
		res, err := job.Reduce(ctx, b, buckets[b])
		if err != nil {
			return fmt.Errorf("bucket %d: %w", b, err)
		}
		results[b] = res
		return nil
	})
	if err != nil {
		return zero, stats, fmt.Errorf("%w: %w", ErrReducePhase, err)
	}

	stats.ReduceDuration = time.Since(start)
	cfg.logf("Reduce phase finished in %v", stats.ReduceDuration)

	// Merge
	start = time.Now()
	final, err := job.Merge(results)
	if err != nil {
		return zero, stats, fmt.Errorf("%w: %w", ErrMergePhase, err)
	}
	stats.MergeDuration = time.Since(start)

	cfg.logf("Run completed in %v", stats.Total())
	return final, stats, nil
}
