package quizgen

import (
	"strconv"
	"strings"
)

// EnsureFive normalizes an arbitrary list of candidate options into exactly
// five unique, non-empty options. It keeps the first occurrence of each
// distinct trimmed value in input order, truncates past five, and pads any
// shortfall with small random integers that never collide with kept values.
// It always succeeds.
func EnsureFive(r Rand, options []string) []string {
	kept := make([]string, 0, 5)
	seen := make(map[string]bool, len(options))

	for _, o := range options {
		s := strings.TrimSpace(o)
		if s != "" && !seen[s] {
			kept = append(kept, s)
			seen[s] = true
		}
		if len(kept) == 5 {
			break
		}
	}

	for len(kept) < 5 {
		filler := strconv.Itoa(r.IntN(99) + 1)
		if !seen[filler] {
			kept = append(kept, filler)
			seen[filler] = true
		}
	}

	return kept[:5]
}
