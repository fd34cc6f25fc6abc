package extract

import "strings"

// Strategy is a single extraction heuristic over a tech-info block. A
// strategy that finds nothing returns "".
type Strategy func(Block) string

// FirstMatch runs strategies in order and returns the first non-empty result.
// The cascade is the unit of extraction: individual strategies are brittle
// against retailer markup, the ordered combination is not.
func FirstMatch(b Block, strategies ...Strategy) string {
	for _, s := range strategies {
		if v := strings.TrimSpace(s(b)); v != "" {
			return v
		}
	}
	return ""
}
