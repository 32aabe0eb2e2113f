package executors

import (
	"errors"
	"sort"

	"github.com/long2k5-bit/ds2026/pkg/executors/longestpath"
	"github.com/long2k5-bit/ds2026/pkg/executors/wordcount"
)

var ErrUnknownExecutor = errors.New("unknown executor")

// Executor is the part of a workload the registry needs to know about
type Executor interface {
	Description() string
}

const (
	WordCount   = "wordcount"
	LongestPath = "longestpath"
)

var Executors = map[string]Executor{
	WordCount:   wordcount.WordCountWorker{},
	LongestPath: longestpath.LongestPathWorker{},
}

func IsValidExecutor(name string) bool {
	_, exists := Executors[name]
	return exists
}

// ListExecutors returns the registered names in sorted order
func ListExecutors() []string {
	names := make([]string, 0, len(Executors))
	for name := range Executors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func GetDescription(name string) (string, error) {
	if ex, exists := Executors[name]; exists {
		return ex.Description(), nil
	}
	return "", ErrUnknownExecutor
}
