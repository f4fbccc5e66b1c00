// Package similarity provides fuzzy string matching for free-text input,
// e.g. to suggest an existing recipient for a misspelled name.
package similarity

import (
	"strings"
	"unicode/utf8"
)

// Ratio returns the similarity of two strings as a value in [0, 1], where 1
// means the strings are equal. Comparison is case-insensitive and based on
// the Levenshtein edit distance over runes.
func Ratio(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))

	if a == b {
		return 1
	}

	longest := utf8.RuneCountInString(a)
	if l := utf8.RuneCountInString(b); l > longest {
		longest = l
	}
	if longest == 0 {
		return 1
	}

	return 1 - float64(distance(a, b))/float64(longest)
}

// distance computes the Levenshtein edit distance between two strings using
// a single-row dynamic program.
func distance(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	row := make([]int, len(rb)+1)
	for j := range row {
		row[j] = j
	}

	for i, ca := range ra {
		prev := row[0]
		row[0] = i + 1

		for j, cb := range rb {
			cost := 1
			if ca == cb {
				cost = 0
			}

			current := min(row[j+1]+1, row[j]+1, prev+cost)
			prev = row[j+1]
			row[j+1] = current
		}
	}

	return row[len(rb)]
}

// Closest returns the candidate most similar to the input together with its
// ratio. An empty candidate list returns an empty string and 0.
func Closest(input string, candidates []string) (string, float64) {
	best := ""
	bestRatio := 0.0

	for _, candidate := range candidates {
		if r := Ratio(input, candidate); r > bestRatio {
			best = candidate
			bestRatio = r
		}
	}

	return best, bestRatio
}
