package search

import (
	"strings"

	"github.com/estla/skillserver/internal/config"
	"github.com/estla/skillserver/internal/domain/document"
)

// Tier names the most precise stage that produced a result.
type Tier string

const (
	TierNone      Tier = "none"
	TierExact     Tier = "exact"
	TierSubstring Tier = "substring"
	TierToken     Tier = "token"
	TierFuzzy     Tier = "fuzzy"
)

type Options struct {
	FuzzyCutoff        float64
	FuzzyMaxCandidates int
	// fuzzy matching only runs when earlier tiers found fewer results than this
	FuzzyTriggerBelow int
}

func DefaultOptions() Options {
	return Options{
		FuzzyCutoff:        config.FuzzyCutoff,
		FuzzyMaxCandidates: config.FuzzyMaxCandidates,
		FuzzyTriggerBelow:  config.FuzzyTriggerBelow,
	}
}

type Result struct {
	Records []document.Record
	Tier    Tier
}

// Normalize trims and lowercases a query.
func Normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

func Search(query string, records []document.Record) []document.Record {
	return DefaultOptions().Search(query, records).Records
}

// Search resolves query against records: exact title, then substring, then
// all-tokens, then fuzzy when too few results were found. Results never
// repeat a title and keep tier order, then index order.
func (o Options) Search(query string, records []document.Record) Result {
	q := Normalize(query)
	if q == "" {
		return Result{Tier: TierNone}
	}

	titles := make([]string, len(records))
	for i, r := range records {
		titles[i] = strings.ToLower(r.Title)
	}

	for i := range records {
		if titles[i] == q {
			return Result{Records: []document.Record{records[i]}, Tier: TierExact}
		}
	}

	acc := newAccumulator()
	for i := range records {
		if strings.Contains(titles[i], q) {
			acc.add(records[i], TierSubstring)
		}
	}

	if tokens := strings.Fields(q); len(tokens) > 1 {
		for i := range records {
			if containsAll(titles[i], tokens) {
				acc.add(records[i], TierToken)
			}
		}
	}

	if len(acc.records) < o.FuzzyTriggerBelow {
		raw := make([]string, len(records))
		for i, r := range records {
			raw[i] = r.Title
		}
		for _, match := range closeMatches(q, raw, o.FuzzyMaxCandidates, o.FuzzyCutoff) {
			for _, r := range records {
				if r.Title == match {
					acc.add(r, TierFuzzy)
				}
			}
		}
	}

	return Result{Records: acc.records, Tier: acc.tier}
}

// GetByCategory keeps index order and drops repeated titles.
func GetByCategory(category document.Category, records []document.Record) []document.Record {
	acc := newAccumulator()
	for _, r := range records {
		if r.Category == category {
			acc.add(r, TierNone)
		}
	}
	return acc.records
}

func containsAll(title string, tokens []string) bool {
	for _, token := range tokens {
		if !strings.Contains(title, token) {
			return false
		}
	}
	return true
}

type accumulator struct {
	seen    map[string]bool
	records []document.Record
	tier    Tier
}

func newAccumulator() *accumulator {
	return &accumulator{seen: make(map[string]bool), tier: TierNone}
}

func (a *accumulator) add(r document.Record, tier Tier) {
	if a.seen[r.Title] {
		return
	}
	a.seen[r.Title] = true
	a.records = append(a.records, r)
	if a.tier == TierNone {
		a.tier = tier
	}
}
