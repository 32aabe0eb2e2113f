package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/long2k5-bit/ds2026/internal/history"
	"github.com/long2k5-bit/ds2026/pkg/executors"
	"github.com/long2k5-bit/ds2026/pkg/executors/wordcount"
	"github.com/long2k5-bit/ds2026/pkg/minireduce"
)

const wordCountUsage = "Usage: %s [flags] <input_file> <output_file> [num_mappers] [num_reducers]\n"

// WordCount runs the word-count tool and returns the process exit code.
func WordCount(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("wordcount", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, wordCountUsage, fs.Name())
		fs.PrintDefaults()
	}

	workers := fs.Int("workers", 0, "Concurrent goroutines per phase (0 = GOMAXPROCS)")
	historyPath := fs.String("history", "", "Record the run in this bbolt database")
	verbose := fs.Bool("v", false, "Log pipeline progress to stderr")
	list := fs.Bool("list", false, "List available executors and exit")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *list {
		printExecutors(stdout)
		return 0
	}

	rest := fs.Args()
	if len(rest) < 2 {
		fs.Usage()
		return 1
	}

	inputPath, outputPath := rest[0], rest[1]

	mappers, reducers := minireduce.DefaultMappers, minireduce.DefaultReducers
	var err error
	if len(rest) >= 3 {
		if mappers, err = strconv.Atoi(rest[2]); err != nil {
			fmt.Fprintf(stderr, "Invalid number of mappers: %q\n", rest[2])
			return 1
		}
	}
	if len(rest) >= 4 {
		if reducers, err = strconv.Atoi(rest[3]); err != nil {
			fmt.Fprintf(stderr, "Invalid number of reducers: %q\n", rest[3])
			return 1
		}
	}

	if mappers <= 0 || reducers <= 0 {
		fmt.Fprintln(stderr, "Number of mappers and reducers must be > 0")
		return 1
	}
	if *workers < 0 {
		fmt.Fprintln(stderr, "Number of workers must be >= 0")
		return 1
	}

	logger := newLogger(stderr, *verbose)

	data, err := os.ReadFile(inputPath)
	if err != nil {
		fmt.Fprintf(stderr, "Cannot open input file: %s\n", inputPath)
		return 1
	}
	if len(data) == 0 {
		fmt.Fprintln(stderr, "Input file is empty.")
		return 1
	}

	logger.Printf("[WORDCOUNT] Read %s from %s", humanize.Bytes(uint64(len(data))), inputPath)

	cfg := minireduce.Config{
		Mappers:  mappers,
		Reducers: reducers,
		Workers:  *workers,
		Logger:   logger,
	}
	cfg, err = cfg.WithDefaults()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	startedAt := time.Now()
	records, stats, err := wordcount.Count(ctx, string(data), cfg)
	if err != nil {
		if errors.Is(err, minireduce.ErrEmptyInput) {
			fmt.Fprintf(stderr, "No words found in input file: %s\n", inputPath)
		} else {
			fmt.Fprintf(stderr, "Word count failed: %v\n", err)
		}
		return 1
	}

	if stats.Buckets > stats.Pairs {
		fmt.Fprintf(stderr, "Warning: %d reducers for %d pairs, %d buckets were empty\n",
			stats.Buckets, stats.Pairs, stats.EmptyBuckets)
	}

	if err := writeRecords(outputPath, records); err != nil {
		fmt.Fprintf(stderr, "Cannot open output file: %s\n", outputPath)
		return 1
	}

	total := 0
	for _, rec := range records {
		total += rec.Count
	}

	fmt.Fprintf(stdout, "Word count written to: %s\n", outputPath)
	fmt.Fprintf(stdout, "%s words, %s distinct, %d partitions, %d buckets\n",
		humanize.Comma(int64(total)), humanize.Comma(int64(len(records))), stats.Partitions, stats.Buckets)

	if *historyPath != "" {
		rec := &history.Record{
			ID:         stats.RunID,
			Workload:   executors.WordCount,
			StartedAt:  startedAt,
			Duration:   time.Since(startedAt),
			Mappers:    stats.Partitions,
			Reducers:   stats.Buckets,
			Workers:    stats.Workers,
			InputFiles: []string{inputPath},
			InputBytes: int64(len(data)),
			Pairs:      stats.Pairs,
			Results:    len(records),
			OutputPath: outputPath,
		}
		if err := saveRun(*historyPath, rec, logger); err != nil {
			fmt.Fprintf(stderr, "Cannot record run: %v\n", err)
			return 1
		}
		logger.Printf("[WORDCOUNT] Recorded run %s in %s", rec.ID, *historyPath)
	}

	return 0
}

// newLogger returns a stderr logger, or one that discards when quiet
func newLogger(stderr io.Writer, verbose bool) *log.Logger {
	if !verbose {
		return log.New(io.Discard, "", 0)
	}
	return log.New(stderr, "", log.LstdFlags|log.Lmicroseconds)
}

func printExecutors(w io.Writer) {
	for _, name := range executors.ListExecutors() {
		desc, _ := executors.GetDescription(name)
		fmt.Fprintf(w, "%-12s %s\n", name, desc)
	}
}
