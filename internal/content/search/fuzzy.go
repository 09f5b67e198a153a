package search

import (
	"sort"

	"github.com/pmezard/go-difflib/difflib"
)

type scored struct {
	score float64
	title string
}

// closeMatches returns up to n candidates whose similarity ratio with word is
// at least cutoff, best first; equal scores order by title descending.
// Ratios are computed over characters, not bytes.
func closeMatches(word string, candidates []string, n int, cutoff float64) []string {
	if n <= 0 || len(candidates) == 0 {
		return nil
	}

	matcher := difflib.NewMatcher(nil, runeSeq(word))
	var hits []scored
	for _, c := range candidates {
		matcher.SetSeq1(runeSeq(c))
		if matcher.RealQuickRatio() >= cutoff && matcher.QuickRatio() >= cutoff {
			if ratio := matcher.Ratio(); ratio >= cutoff {
				hits = append(hits, scored{score: ratio, title: c})
			}
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		return hits[i].title > hits[j].title
	})
	if len(hits) > n {
		hits = hits[:n]
	}

	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.title
	}
	return out
}

func runeSeq(s string) []string {
	seq := make([]string, 0, len(s))
	for _, r := range s {
		seq = append(seq, string(r))
	}
	return seq
}
