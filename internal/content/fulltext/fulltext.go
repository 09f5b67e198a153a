package fulltext

import (
	"context"
	"fmt"
	"strconv"

	"github.com/blevesearch/bleve/v2"
	"github.com/estla/skillserver/internal/domain/document"
)

type indexedDoc struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Summary  string `json:"summary"`
}

// Hit points back into the record slice the index was built from.
type Hit struct {
	Position int
	Score    float64
}

// Index is an in-memory bleve index over record titles and summaries.
// Document ids are record positions, so an Index is only meaningful next to
// the slice it was built from.
type Index struct {
	idx bleve.Index
}

func New(records []document.Record) (*Index, error) {
	idx, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("create full-text index: %w", err)
	}

	batch := idx.NewBatch()
	for i, r := range records {
		doc := indexedDoc{Title: r.Title, Category: string(r.Category), Summary: r.Summary}
		if err := batch.Index(strconv.Itoa(i), doc); err != nil {
			_ = idx.Close()
			return nil, fmt.Errorf("index document %q: %w", r.Title, err)
		}
	}
	if err := idx.Batch(batch); err != nil {
		_ = idx.Close()
		return nil, fmt.Errorf("commit full-text batch: %w", err)
	}
	return &Index{idx: idx}, nil
}

func (i *Index) Search(ctx context.Context, query string, limit int) ([]Hit, error) {
	if query == "" || limit <= 0 {
		return nil, nil
	}
	req := bleve.NewSearchRequestOptions(bleve.NewMatchQuery(query), limit, 0, false)
	res, err := i.idx.SearchInContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("full-text search: %w", err)
	}

	hits := make([]Hit, 0, len(res.Hits))
	for _, h := range res.Hits {
		pos, err := strconv.Atoi(h.ID)
		if err != nil {
			continue
		}
		hits = append(hits, Hit{Position: pos, Score: h.Score})
	}
	return hits, nil
}

func (i *Index) DocCount() (uint64, error) {
	return i.idx.DocCount()
}

func (i *Index) Close() error {
	return i.idx.Close()
}
