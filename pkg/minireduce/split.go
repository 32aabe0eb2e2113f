package minireduce

import "sort"

// IsSpace reports whether r is ASCII whitespace (the C-locale set).
// Splitting and tokenizing share it so a boundary never lands inside a token.
func IsSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// wordEnds returns the exclusive end offset of every whitespace-delimited token.
func wordEnds(text string) []int {
	var ends []int
	inWord := false
	for i := 0; i < len(text); i++ {
		if IsSpace(rune(text[i])) {
			if inWord {
				ends = append(ends, i)
			}
			inWord = false
			continue
		}
		inWord = true
	}
	if inWord {
		ends = append(ends, len(text))
	}
	return ends
}

// SplitText divides text into at most k contiguous partitions without cutting a
// token. Each internal boundary starts len(text)/k bytes after the previous one
// and is pushed forward to the next whitespace byte; the last partition absorbs
// the rest. k is clamped to the token count, and boundaries are nudged so that
// every partition holds at least one token. Concatenating the partitions gives
// back text exactly.
func SplitText(text string, k int) ([]string, error) {
	if k <= 0 {
		return nil, ErrInvalidMappers
	}

	ends := wordEnds(text)
	if len(ends) == 0 {
		return nil, ErrEmptyInput
	}

	if k > len(ends) {
		k = len(ends)
	}

	chunkSize := len(text) / k
	parts := make([]string, 0, k)
	prev, prevWords := 0, 0

	for i := 1; i < k; i++ {
		pos := min(prev+chunkSize, len(text))
		for pos < len(text) && !IsSpace(rune(text[pos])) {
			pos++
		}

		// Tokens fully contained in text[:pos]
		words := sort.SearchInts(ends, pos+1)

		// Leave at least one token here and one for each remaining partition
		lo, hi := prevWords+1, len(ends)-(k-i)
		switch {
		case words < lo:
			words = lo
			pos = ends[words-1]
		case words > hi:
			words = hi
			pos = ends[words-1]
		}

		parts = append(parts, text[prev:pos])
		prev, prevWords = pos, words
	}

	parts = append(parts, text[prev:])
	return parts, nil
}

// SplitLines divides items into at most k contiguous slices of len/k items,
// the first len%k slices taking one extra. Order is preserved and k is
// clamped to len(items), so no slice is empty. The returned slices alias items.
func SplitLines[T any](items []T, k int) ([][]T, error) {
	if k <= 0 {
		return nil, ErrInvalidMappers
	}
	if len(items) == 0 {
		return nil, ErrEmptyInput
	}

	if k > len(items) {
		k = len(items)
	}

	base, extra := len(items)/k, len(items)%k
	parts := make([][]T, 0, k)
	start := 0

	for i := range k {
		size := base
		if i < extra {
			size++
		}
		end := start + size
		parts = append(parts, items[start:end:end])
		start = end
	}

	return parts, nil
}
