// Package matching holds the pure fuzzy-matching core: trigram similarity
// for search-style lookups, an integer word-overlap score for candidate
// matching, the best-match selection over a scraped-product pool, and the
// field-level enrichment detector. Nothing in this package touches storage
// or holds mutable state, so every function is safe to call concurrently.
package matching

import "strings"

// fuzzyThreshold is calibrated for short product names like
// "Mickey's Stuffed Animals"; it is a fixed constant, not derived.
const fuzzyThreshold = 0.28

// trigramSet extracts the set of all length-3 substrings of the lowercased
// input padded with one leading and one trailing space.
func trigramSet(s string) map[string]struct{} {
	runes := []rune(" " + strings.ToLower(s) + " ")
	set := make(map[string]struct{}, len(runes))
	for i := 0; i+3 <= len(runes); i++ {
		set[string(runes[i:i+3])] = struct{}{}
	}
	return set
}

// Similarity scores two strings in [0,1] as the trigram-set overlap divided
// by the larger set size. Either side empty scores 0.
func Similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	setA := trigramSet(a)
	setB := trigramSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}
	shared := 0
	for t := range setA {
		if _, ok := setB[t]; ok {
			shared++
		}
	}
	denom := len(setA)
	if len(setB) > denom {
		denom = len(setB)
	}
	return float64(shared) / float64(denom)
}

// FuzzyIncludes reports whether haystack contains needle literally
// (case-insensitive) or is trigram-similar enough to count as a hit.
func FuzzyIncludes(haystack, needle string) bool {
	h := strings.ToLower(haystack)
	n := strings.ToLower(strings.TrimSpace(needle))
	if strings.Contains(h, n) {
		return true
	}
	return Similarity(haystack, needle) > fuzzyThreshold
}
