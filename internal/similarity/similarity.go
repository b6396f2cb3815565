// Package similarity provides Levenshtein-based fuzzy string matching for
// title and author comparison.
package similarity

import "strings"

// Score calculates the similarity between two strings as a value in [0, 1].
// Comparison is case-insensitive. Two empty strings are considered identical.
func Score(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))

	if a == b {
		return 1.0
	}

	maxLen := max(len(a), len(b))
	if maxLen == 0 {
		return 1.0
	}

	distance := Levenshtein(a, b)
	return float64(maxLen-distance) / float64(maxLen)
}

// Levenshtein calculates the edit distance between two strings. Insertions,
// deletions, and substitutions all cost 1.
func Levenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	matrix := make([][]int, len(a)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(b)+1)
		matrix[i][0] = i
	}
	for j := range matrix[0] {
		matrix[0][j] = j
	}

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			matrix[i][j] = min(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[len(a)][len(b)]
}
