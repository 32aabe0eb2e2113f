package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"

	"github.com/long2k5-bit/ds2026/cmd/testdata/generator"
)

/* generates input files for the wordcount and longestpath tools */

var (
	Kind       = flag.String("kind", "wordcount", "Generator to use (see -list)")
	TotalCount = flag.Int64("count", 0, "Number of lines to generate (0 = generator default)")
	OutputPath = flag.String("output", "var/testdata.txt", "Output file path")
	Seed       = flag.Uint64("seed", 0, "Random seed (0 = time based)")
	List       = flag.Bool("list", false, "List generators and exit")
)

const progressStep = 1000

func main() {
	flag.Parse()

	if *List {
		for _, name := range generator.List() {
			g, _ := generator.Get(name)
			fmt.Printf("%-12s %s\n", name, g.Description())
		}
		return
	}

	gen, err := generator.Get(*Kind)
	if err != nil {
		log.Fatalf("[TESTDATA] %v", err)
	}

	seed := *Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	gen.Init(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))

	count := *TotalCount
	if count <= 0 {
		count = gen.DefaultCount()
	}

	if err := os.MkdirAll(filepath.Dir(*OutputPath), 0755); err != nil {
		log.Fatalf("[TESTDATA] Failed to create output directory: %v", err)
	}
	file, err := os.Create(*OutputPath)
	if err != nil {
		log.Fatalf("[TESTDATA] Failed to create output file: %v", err)
	}
	defer file.Close()

	bar := progressbar.NewOptions64(count,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("generating "+*Kind),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(100*time.Millisecond),
	)

	w := bufio.NewWriter(file)
	for i := int64(0); i < count; i++ {
		if err := gen.WriteLine(w); err != nil {
			log.Fatalf("[TESTDATA] Write failed: %v", err)
		}
		if (i+1)%progressStep == 0 {
			bar.Add(progressStep)
		}
	}
	bar.Add(int(count % progressStep))
	bar.Finish()

	if err := w.Flush(); err != nil {
		log.Fatalf("[TESTDATA] Flush failed: %v", err)
	}

	info, err := file.Stat()
	if err != nil {
		log.Fatalf("[TESTDATA] Stat failed: %v", err)
	}

	fmt.Fprintf(os.Stderr, "\nWrote %s lines (%s) to %s\n",
		humanize.Comma(count), humanize.Bytes(uint64(info.Size())), *OutputPath)
}
