package store

import (
	"context"
	"errors"
	"strconv"
)

var ErrCacheMiss = errors.New("cache miss")

// CachedSearch is a resolved query stored as positions into the index
// generation it was computed against.
type CachedSearch struct {
	Positions []int  `json:"positions"`
	Tier      string `json:"tier"`
}

type ResultCache interface {
	Get(ctx context.Context, key string) (CachedSearch, error)
	Set(ctx context.Context, key string, value CachedSearch) error
}

// SearchKey scopes a normalised query to one index generation.
func SearchKey(generation uint64, normalizedQuery string) string {
	return "search:" + strconv.FormatUint(generation, 10) + ":" + normalizedQuery
}
