// Package suggest finds the closest match to a missed key among a set of
// candidates, for "did you mean" diagnostics.
package suggest

import "github.com/agext/levenshtein"

// Closest returns the candidate within edit distance of key, or "" if none
// is close enough to be a useful suggestion. The distance budget scales
// with key's length so short keys don't match everything.
func Closest(key string, candidates []string) string {
	best := ""
	bestDist := len(key)/2 + 1
	for _, c := range candidates {
		d := levenshtein.Distance(key, c, nil)
		if d < bestDist {
			bestDist = d
			best = c
		}
	}
	return best
}
