package generator

import (
	"io"
	"math/rand/v2"
	"strings"
)

// PathGenerator writes filesystem-like paths, one per line, with the
// occasional blank line.
type PathGenerator struct {
	MaxDepth int
	rand     *rand.Rand
}

var segments = []string{
	"usr", "local", "bin", "var", "log", "home", "src", "pkg", "internal",
	"cmd", "etc", "opt", "tmp", "data", "cache", "lib",
}

var extensions = []string{"", ".go", ".txt", ".log", ".json", ".tar.gz"}

func (g *PathGenerator) Init(r *rand.Rand) {
	g.rand = r
}

func (g *PathGenerator) WriteLine(w io.Writer) error {
	if g.rand.IntN(50) == 0 {
		_, err := io.WriteString(w, "\n")
		return err
	}

	var b strings.Builder
	depth := 1 + g.rand.IntN(max(1, g.MaxDepth))
	for range depth {
		b.WriteByte('/')
		b.WriteString(segments[g.rand.IntN(len(segments))])
	}
	b.WriteString(extensions[g.rand.IntN(len(extensions))])
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}

func (g *PathGenerator) Description() string {
	return "Paths: /seg/seg/.../file.ext per line, some blank lines"
}

func (g *PathGenerator) DefaultCount() int64 {
	return 5e3 // 5,000 lines
}
