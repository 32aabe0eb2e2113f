package cli

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"github.com/long2k5-bit/ds2026/internal/history"
)

// maxLineSize bounds a single input line (path) read by readLines
const maxLineSize = 16 * 1024 * 1024

// readLines reads every non-blank line of every file, in argument order.
// It also returns the number of bytes read.
func readLines(paths []string) ([]string, int64, error) {
	var lines []string
	var total int64

	for _, path := range paths {
		file, err := os.Open(path)
		if err != nil {
			return nil, 0, fmt.Errorf("cannot open input file: %s: %w", path, err)
		}

		if info, err := file.Stat(); err == nil {
			total += info.Size()
		}

		scanner := bufio.NewScanner(file)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
		for scanner.Scan() {
			if line := scanner.Text(); line != "" {
				lines = append(lines, line)
			}
		}

		err = scanner.Err()
		file.Close()
		if err != nil {
			return nil, 0, fmt.Errorf("cannot read input file: %s: %w", path, err)
		}
	}

	return lines, total, nil
}

// writeRecords writes one record per line to path, creating or truncating it
func writeRecords[T fmt.Stringer](path string, records []T) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot open output file: %s: %w", path, err)
	}

	w := bufio.NewWriter(file)
	for _, rec := range records {
		w.WriteString(rec.String())
		w.WriteByte('\n')
	}

	if err := w.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("cannot write output file: %s: %w", path, err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("cannot write output file: %s: %w", path, err)
	}

	return nil
}

// saveRun appends rec to the history database at dbPath
func saveRun(dbPath string, rec *history.Record, logger *log.Logger) error {
	store, err := history.Open(dbPath, logger)
	if err != nil {
		return fmt.Errorf("cannot open history database: %s: %w", dbPath, err)
	}
	defer store.Close()

	return store.Save(rec)
}
