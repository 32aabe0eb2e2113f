package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/long2k5-bit/ds2026/internal/history"
)

const runHistoryUsage = "Usage: %s [-delete] <history_db> [run_id]\n"

// RunHistory lists recorded runs, or shows one run in detail.
func RunHistory(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("runhistory", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, runHistoryUsage, fs.Name())
		fs.PrintDefaults()
	}

	del := fs.Bool("delete", false, "Delete the given run instead of showing it")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	rest := fs.Args()
	if len(rest) < 1 || (*del && len(rest) < 2) {
		fs.Usage()
		return 1
	}

	dbPath := rest[0]
	if _, err := os.Stat(dbPath); err != nil {
		fmt.Fprintf(stderr, "Cannot open history database: %s\n", dbPath)
		return 1
	}

	store, err := history.Open(dbPath, log.New(stderr, "", 0))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer store.Close()

	if *del {
		if err := store.Delete(rest[1]); err != nil {
			if errors.Is(err, history.ErrRunNotFound) {
				fmt.Fprintf(stderr, "Run not found: %s\n", rest[1])
			} else {
				fmt.Fprintln(stderr, err)
			}
			return 1
		}
		fmt.Fprintf(stdout, "Deleted run: %s\n", rest[1])
		return 0
	}

	if len(rest) >= 2 {
		rec, err := store.Get(rest[1])
		if err != nil {
			if errors.Is(err, history.ErrRunNotFound) {
				fmt.Fprintf(stderr, "Run not found: %s\n", rest[1])
			} else {
				fmt.Fprintln(stderr, err)
			}
			return 1
		}
		printRun(stdout, rec)
		return 0
	}

	records, err := store.List()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	if len(records) == 0 {
		fmt.Fprintln(stdout, "No runs found")
		return 0
	}

	fmt.Fprintf(stdout, "%-36s %-12s %-10s %-10s %s\n", "RUN ID", "WORKLOAD", "RESULTS", "INPUT", "STARTED")
	fmt.Fprintln(stdout, strings.Repeat("─", 90))
	for _, rec := range records {
		fmt.Fprintf(stdout, "%-36s %-12s %-10s %-10s %s\n",
			rec.ID,
			rec.Workload,
			humanize.Comma(int64(rec.Results)),
			humanize.Bytes(uint64(rec.InputBytes)),
			humanize.Time(rec.StartedAt))
	}

	return 0
}

func printRun(w io.Writer, rec history.Record) {
	fmt.Fprintf(w, "Run Details:\n")
	fmt.Fprintf(w, "  ID:          %s\n", rec.ID)
	fmt.Fprintf(w, "  Workload:    %s\n", rec.Workload)
	fmt.Fprintf(w, "  Version:     %s\n", rec.Version)
	fmt.Fprintf(w, "  Started:     %s (%s)\n", rec.StartedAt.Format("2006-01-02 15:04:05"), humanize.Time(rec.StartedAt))
	fmt.Fprintf(w, "  Duration:    %v\n", rec.Duration)
	fmt.Fprintf(w, "  Mappers:     %d\n", rec.Mappers)
	fmt.Fprintf(w, "  Reducers:    %d\n", rec.Reducers)
	fmt.Fprintf(w, "  Workers:     %d\n", rec.Workers)
	fmt.Fprintf(w, "  Inputs:      %s (%s)\n", strings.Join(rec.InputFiles, ", "), humanize.Bytes(uint64(rec.InputBytes)))
	fmt.Fprintf(w, "  Pairs:       %s\n", humanize.Comma(int64(rec.Pairs)))
	fmt.Fprintf(w, "  Results:     %s\n", humanize.Comma(int64(rec.Results)))
	fmt.Fprintf(w, "  Output:      %s\n", rec.OutputPath)
}
