package generator

import (
	"fmt"
	"sort"

	"github.com/long2k5-bit/ds2026/pkg/executors"
)

// Registry maps workload names to generator factories
var Registry = map[string]func() Generator{
	executors.WordCount:   func() Generator { return &TextGenerator{WordsPerLine: 12} },
	executors.LongestPath: func() Generator { return &PathGenerator{MaxDepth: 8} },
}

// Get returns the generator for a registered workload
func Get(name string) (Generator, error) {
	if !executors.IsValidExecutor(name) {
		return nil, fmt.Errorf("%w: %s", executors.ErrUnknownExecutor, name)
	}

	factory, exists := Registry[name]
	if !exists {
		return nil, fmt.Errorf("no generator for executor: %s", name)
	}
	return factory(), nil
}

// List returns all available generator names, sorted
func List() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
