package longestpath

import (
	"context"
	"errors"
	"strconv"

	"github.com/long2k5-bit/ds2026/pkg/minireduce"
)

// ErrNoMaximum is returned when no line has a positive length
var ErrNoMaximum = errors.New("could not compute longest path length")

// Longest holds a maximum length and every line that reaches it,
// in input order.
type Longest struct {
	Length int
	Lines  []string
}

// Record is one line of longest-path output
type Record struct {
	Length int
	Path   string
}

// String formats the record as "<length> <path>"
func (r Record) String() string {
	return strconv.Itoa(r.Length) + " " + r.Path
}

// LongestPathWorker implements minireduce.Job over line partitions.
// Keys are line lengths in bytes, values the lines themselves.
type LongestPathWorker struct{}

var _ minireduce.Job[[]string, int, string, Longest] = LongestPathWorker{}

// Map emits (len(line), line) for every line of the partition
func (w LongestPathWorker) Map(_ context.Context, partition []string, emit minireduce.Emitter[int, string]) error {
	for _, line := range partition {
		emit(minireduce.Pair[int, string]{Key: len(line), Value: line})
	}
	return nil
}

// Hash routes a length with FNV-1a
func (w LongestPathWorker) Hash(length int) uint32 {
	return minireduce.HashInt(length)
}

// Reduce keeps the longest lines of one bucket. Every line of a given length
// hashes to the same bucket, so the bucket holding the global maximum holds
// all of its lines.
func (w LongestPathWorker) Reduce(_ context.Context, _ int, pairs []minireduce.Pair[int, string]) (Longest, error) {
	var res Longest
	for _, kv := range pairs {
		switch {
		case kv.Key > res.Length:
			res.Length = kv.Key
			res.Lines = append(res.Lines[:0:0], kv.Value)
		case kv.Key == res.Length && kv.Key > 0:
			res.Lines = append(res.Lines, kv.Value)
		}
	}
	return res, nil
}

// Merge scans bucket results in index order keeping the global maximum
func (w LongestPathWorker) Merge(results []Longest) (Longest, error) {
	var final Longest
	for _, res := range results {
		switch {
		case res.Length > final.Length:
			final.Length = res.Length
			final.Lines = append([]string(nil), res.Lines...)
		case res.Length == final.Length && res.Length > 0:
			final.Lines = append(final.Lines, res.Lines...)
		}
	}

	if final.Length == 0 {
		return final, ErrNoMaximum
	}

	return final, nil
}

func (w LongestPathWorker) Description() string {
	return "Finds the longest lines (paths) and reports every line of that length"
}

// Paths drops blank lines, keeping order
func Paths(lines []string) []string {
	paths := make([]string, 0, len(lines))
	for _, line := range lines {
		if line != "" {
			paths = append(paths, line)
		}
	}
	return paths
}

// Records returns one record per line of the maximum length, in input order
func Records(l Longest) []Record {
	records := make([]Record, 0, len(l.Lines))
	for _, line := range l.Lines {
		if len(line) == l.Length {
			records = append(records, Record{Length: l.Length, Path: line})
		}
	}
	return records
}

// Find runs the full longest-path pipeline over lines. Blank lines are
// ignored, and the reducer count is clamped to the effective mapper count.
func Find(ctx context.Context, lines []string, cfg minireduce.Config) (Longest, minireduce.Stats, error) {
	cfg, err := cfg.WithDefaults()
	if err != nil {
		return Longest{}, minireduce.Stats{}, err
	}

	partitions, err := minireduce.SplitLines(Paths(lines), cfg.Mappers)
	if err != nil {
		return Longest{}, minireduce.Stats{}, err
	}

	if cfg.Reducers > len(partitions) {
		cfg.Reducers = len(partitions)
	}

	return minireduce.Run[[]string, int, string, Longest](ctx, LongestPathWorker{}, partitions, cfg)
}
