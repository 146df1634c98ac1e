package util

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// ScoreCompletions ranks candidates against input and keeps at most n of them
// (all when n <= 0). A candidate equal to input ignoring case always ranks
// first. An empty input returns the candidates in catalog order.
func ScoreCompletions(input string, candidates []string, n int) []string {
	if input == "" {
		return capped(candidates, n)
	}
	matches := fuzzy.Find(input, candidates)
	if len(matches) == 0 {
		return nil
	}

	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if strings.EqualFold(m.Str, input) {
			out = append([]string{m.Str}, out...)
			continue
		}
		out = append(out, m.Str)
	}
	return capped(out, n)
}

func capped(s []string, n int) []string {
	if n > 0 && n < len(s) {
		return s[:n]
	}
	return s
}
