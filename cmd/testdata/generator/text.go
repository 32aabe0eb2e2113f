package generator

import (
	"io"
	"math/rand/v2"
	"strings"
)

// TextGenerator writes prose-like lines with mixed case and punctuation,
// so word normalization has something to do.
type TextGenerator struct {
	WordsPerLine int
	rand         *rand.Rand
}

var vocabulary = []string{
	"the", "The", "cat", "Cat", "sat", "on", "MAT", "mat", "dog", "ran",
	"quickly", "over", "fence", "and", "then", "slept", "map", "reduce",
	"shuffle", "bucket", "hash", "merge", "split", "worker",
}

var punctuation = []string{"", "", "", ",", ".", "!", "?", "'s", "--", "42"}

func (g *TextGenerator) Init(r *rand.Rand) {
	g.rand = r
}

func (g *TextGenerator) WriteLine(w io.Writer) error {
	var b strings.Builder
	n := 1 + g.rand.IntN(max(1, g.WordsPerLine))
	for i := range n {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(vocabulary[g.rand.IntN(len(vocabulary))])
		b.WriteString(punctuation[g.rand.IntN(len(punctuation))])
	}
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}

func (g *TextGenerator) Description() string {
	return "Free text: mixed-case words with punctuation and digits"
}

func (g *TextGenerator) DefaultCount() int64 {
	return 1e4 // 10,000 lines
}
