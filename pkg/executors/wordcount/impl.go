package wordcount

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/long2k5-bit/ds2026/pkg/minireduce"
)

// Counts maps a normalized word to its number of occurrences
type Counts map[string]int

// Record is one line of word-count output
type Record struct {
	Word  string
	Count int
}

// String formats the record as "<word> <count>"
func (r Record) String() string {
	return r.Word + " " + strconv.Itoa(r.Count)
}

// WordCountWorker implements minireduce.Job over text partitions
type WordCountWorker struct{}

var _ minireduce.Job[string, string, int, Counts] = WordCountWorker{}

// Normalize keeps only ASCII letters of token, lowercased.
// It returns "" when nothing is left.
func Normalize(token string) string {
	var b strings.Builder
	for i := 0; i < len(token); i++ {
		c := token[i]
		switch {
		case 'a' <= c && c <= 'z':
			b.WriteByte(c)
		case 'A' <= c && c <= 'Z':
			b.WriteByte(c + ('a' - 'A'))
		}
	}
	return b.String()
}

// Tokens returns the normalized, non-empty tokens of text in order
func Tokens(text string) []string {
	var words []string
	for _, field := range strings.FieldsFunc(text, minireduce.IsSpace) {
		if w := Normalize(field); w != "" {
			words = append(words, w)
		}
	}
	return words
}

// Map counts the words of one partition locally and emits (word, count)
// in first-seen order.
func (w WordCountWorker) Map(_ context.Context, partition string, emit minireduce.Emitter[string, int]) error {
	local := make(Counts)
	var order []string

	for _, word := range Tokens(partition) {
		if _, seen := local[word]; !seen {
			order = append(order, word)
		}
		local[word]++
	}

	for _, word := range order {
		emit(minireduce.Pair[string, int]{Key: word, Value: local[word]})
	}

	return nil
}

// Hash routes a word with FNV-1a
func (w WordCountWorker) Hash(word string) uint32 {
	return minireduce.HashString(word)
}

// Reduce sums the partial counts of one bucket
func (w WordCountWorker) Reduce(_ context.Context, _ int, pairs []minireduce.Pair[string, int]) (Counts, error) {
	counts := make(Counts)
	for _, kv := range pairs {
		counts[kv.Key] += kv.Value
	}
	return counts, nil
}

// Merge unions the bucket counts. A word only ever lives in one bucket,
// but summing keeps the merge correct regardless.
func (w WordCountWorker) Merge(results []Counts) (Counts, error) {
	final := make(Counts)
	for _, res := range results {
		for word, n := range res {
			final[word] += n
		}
	}
	return final, nil
}

func (w WordCountWorker) Description() string {
	return "Counts normalized (letters only, lowercase) words, sorted by word"
}

// Records returns counts sorted ascending by word (byte-wise)
func Records(counts Counts) []Record {
	records := make([]Record, 0, len(counts))
	for word, n := range counts {
		records = append(records, Record{Word: word, Count: n})
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Word < records[j].Word
	})

	return records
}

// Count runs the full word-count pipeline over text. Text with no word left
// after normalization fails with minireduce.ErrEmptyInput.
func Count(ctx context.Context, text string, cfg minireduce.Config) ([]Record, minireduce.Stats, error) {
	cfg, err := cfg.WithDefaults()
	if err != nil {
		return nil, minireduce.Stats{}, err
	}

	partitions, err := minireduce.SplitText(text, cfg.Mappers)
	if err != nil {
		return nil, minireduce.Stats{}, err
	}

	counts, stats, err := minireduce.Run[string, string, int, Counts](ctx, WordCountWorker{}, partitions, cfg)
	if err != nil {
		return nil, stats, err
	}
	if len(counts) == 0 {
		return nil, stats, fmt.Errorf("%w: no token contains a letter", minireduce.ErrEmptyInput)
	}

	return Records(counts), stats, nil
}
