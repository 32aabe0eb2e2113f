package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/long2k5-bit/ds2026/internal/history"
	"github.com/long2k5-bit/ds2026/pkg/executors"
	"github.com/long2k5-bit/ds2026/pkg/executors/longestpath"
	"github.com/long2k5-bit/ds2026/pkg/minireduce"
)

const longestPathUsage = "Usage: %s [flags] <output_file> <input1> [input2 ...]\n"

// LongestPath runs the longest-path tool and returns the process exit code.
func LongestPath(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("longestpath", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, longestPathUsage, fs.Name())
		fs.PrintDefaults()
	}

	mappers := fs.Int("mappers", minireduce.DefaultMappers, "Number of map partitions")
	reducers := fs.Int("reducers", minireduce.DefaultReducers, "Number of reduce buckets (clamped to mappers)")
	workers := fs.Int("workers", 0, "Concurrent goroutines per phase (0 = GOMAXPROCS)")
	historyPath := fs.String("history", "", "Record the run in this bbolt database")
	verbose := fs.Bool("v", false, "Log pipeline progress to stderr")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	rest := fs.Args()
	if len(rest) < 2 {
		fs.Usage()
		return 1
	}

	outputPath, inputPaths := rest[0], rest[1:]

	if *mappers <= 0 || *reducers <= 0 {
		fmt.Fprintln(stderr, "Number of mappers and reducers must be > 0")
		return 1
	}
	if *workers < 0 {
		fmt.Fprintln(stderr, "Number of workers must be >= 0")
		return 1
	}

	logger := newLogger(stderr, *verbose)

	lines, inputBytes, err := readLines(inputPaths)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if len(lines) == 0 {
		fmt.Fprintln(stderr, "No paths found in input files.")
		return 1
	}

	logger.Printf("[LONGESTPATH] Read %s paths (%s) from %d files",
		humanize.Comma(int64(len(lines))), humanize.Bytes(uint64(inputBytes)), len(inputPaths))

	cfg := minireduce.Config{
		Mappers:  *mappers,
		Reducers: *reducers,
		Workers:  *workers,
		Logger:   logger,
	}

	startedAt := time.Now()
	longest, stats, err := longestpath.Find(ctx, lines, cfg)
	if err != nil {
		switch {
		case errors.Is(err, minireduce.ErrEmptyInput):
			fmt.Fprintln(stderr, "No paths found in input files.")
		case errors.Is(err, longestpath.ErrNoMaximum):
			fmt.Fprintln(stderr, "Could not compute longest path length.")
		default:
			fmt.Fprintf(stderr, "Longest path failed: %v\n", err)
		}
		return 1
	}

	records := longestpath.Records(longest)
	if err := writeRecords(outputPath, records); err != nil {
		fmt.Fprintf(stderr, "Cannot open output file: %s\n", outputPath)
		return 1
	}

	fmt.Fprintf(stdout, "Longest path length: %d, number of paths: %d\n", longest.Length, len(records))
	fmt.Fprintf(stdout, "Results written to: %s\n", outputPath)

	if *historyPath != "" {
		rec := &history.Record{
			ID:         stats.RunID,
			Workload:   executors.LongestPath,
			StartedAt:  startedAt,
			Duration:   time.Since(startedAt),
			Mappers:    stats.Partitions,
			Reducers:   stats.Buckets,
			Workers:    stats.Workers,
			InputFiles: inputPaths,
			InputBytes: inputBytes,
			Pairs:      stats.Pairs,
			Results:    len(records),
			OutputPath: outputPath,
		}
		if err := saveRun(*historyPath, rec, logger); err != nil {
			fmt.Fprintf(stderr, "Cannot record run: %v\n", err)
			return 1
		}
		logger.Printf("[LONGESTPATH] Recorded run %s in %s", rec.ID, *historyPath)
	}

	return 0
}
