package content

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/estla/skillserver/internal/config"
	"github.com/estla/skillserver/internal/content/fulltext"
	"github.com/estla/skillserver/internal/content/ingest"
	"github.com/estla/skillserver/internal/content/search"
	"github.com/estla/skillserver/internal/data/store"
	"github.com/estla/skillserver/internal/domain/document"
	"github.com/estla/skillserver/internal/metrics"
	"github.com/estla/skillserver/pkg/logger_i"
	"github.com/spf13/afero"
)

var (
	ErrNotReady         = errors.New("content index is not built yet")
	ErrDocumentNotFound = errors.New("document not found")
)

// Service is what handlers, the reload worker and MCP tools see of the index.
type Service interface {
	Reload(ctx context.Context) (ReloadResult, error)
	Search(ctx context.Context, query string) ([]document.Record, error)
	GetByCategory(ctx context.Context, category document.Category) ([]document.Record, error)
	SearchContent(ctx context.Context, query string, limit int) ([]ContentHit, error)
	ReadDocument(ctx context.Context, title string) (Document, error)
	Stats() IndexStats
	Close() error
}

type ReloadResult struct {
	Stats      ingest.Stats
	Generation uint64
}

type ContentHit struct {
	Record document.Record
	Score  float64
}

type IndexStats struct {
	Ready       bool
	Generation  uint64
	Documents   int
	Failed      int
	PerCategory map[document.Category]int
	BuiltAt     time.Time
	// FullTextDocuments is the number of records the full-text index holds.
	FullTextDocuments uint64
}

type ServiceConfig struct {
	Fs       afero.Fs
	Root     string
	Folders  []document.CategoryFolder
	HostBase string
	Workers  int
	Cache    store.ResultCache
	Search   search.Options
}

type service struct {
	builder ingest.Builder
	fs      afero.Fs
	cache   store.ResultCache
	options search.Options
	holder  *holder
	logger  *logger_i.Logger
}

func NewService(cfg ServiceConfig) Service {
	if cfg.Fs == nil {
		cfg.Fs = afero.NewOsFs()
	}
	if cfg.Folders == nil {
		cfg.Folders = document.DefaultCategoryFolders()
	}
	if cfg.Search == (search.Options{}) {
		cfg.Search = search.DefaultOptions()
	}
	return &service{
		builder: ingest.Builder{
			Fs:       cfg.Fs,
			Root:     cfg.Root,
			Folders:  cfg.Folders,
			HostBase: cfg.HostBase,
			Workers:  cfg.Workers,
		},
		fs:      cfg.Fs,
		cache:   cfg.Cache,
		options: cfg.Search,
		holder:  &holder{},
		logger:  logger_i.NewLogger("Content Service"),
	}
}

// Reload builds a complete new snapshot aside and swaps it in. On error the
// live snapshot is left untouched.
func (s *service) Reload(ctx context.Context) (ReloadResult, error) {
	s.holder.refreshMu.Lock()
	defer s.holder.refreshMu.Unlock()

	log := s.logger.WithTrace(ctx, config.TRACE_ID_KEY)
	records, stats := s.builder.Build(ctx)

	text, err := fulltext.New(records)
	if err != nil {
		return ReloadResult{Stats: stats}, fmt.Errorf("reload: %w", err)
	}

	generation := s.holder.generation.Add(1)
	old := s.holder.publish(newSnapshot(records, text, generation, stats))
	if old != nil {
		if err := old.close(); err != nil {
			log.Warn("Could not close replaced full-text index", "generation", old.generation, "error", err)
		}
	}

	perCategory := make(map[string]int, len(stats.PerCategory))
	for c, n := range stats.PerCategory {
		perCategory[string(c)] = n
	}
	metrics.CaptureIndex(generation, perCategory, stats.Failed, stats.Elapsed)
	log.Info("Index published", "generation", generation, "documents", stats.Total, "failed", stats.Failed)

	return ReloadResult{Stats: stats, Generation: generation}, nil
}

func (s *service) Search(ctx context.Context, query string) ([]document.Record, error) {
	snap := s.holder.load()
	if snap == nil {
		return nil, ErrNotReady
	}
	q := search.Normalize(query)
	if q == "" {
		metrics.CaptureSearch(string(search.TierNone))
		return nil, nil
	}

	log := s.logger.WithTrace(ctx, config.TRACE_ID_KEY)
	key := store.SearchKey(snap.generation, q)
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, key)
		switch {
		case err == nil:
			if records, ok := snap.pick(cached.Positions); ok {
				metrics.CaptureCacheLookup("hit")
				metrics.CaptureSearch(cached.Tier)
				return records, nil
			}
			metrics.CaptureCacheLookup("error")
		case errors.Is(err, store.ErrCacheMiss):
			metrics.CaptureCacheLookup("miss")
		default:
			metrics.CaptureCacheLookup("error")
			log.Warn("Search cache lookup failed", "error", err)
		}
	}

	res := s.options.Search(q, snap.records)
	metrics.CaptureSearch(string(res.Tier))

	if s.cache != nil {
		entry := store.CachedSearch{Positions: snap.positions(res.Records), Tier: string(res.Tier)}
		if err := s.cache.Set(ctx, key, entry); err != nil {
			log.Warn("Could not cache search", "error", err)
		}
	}
	log.Debug("Search resolved", "query", q, "tier", res.Tier, "results", len(res.Records))
	return res.Records, nil
}

func (s *service) GetByCategory(ctx context.Context, category document.Category) ([]document.Record, error) {
	snap := s.holder.load()
	if snap == nil {
		return nil, ErrNotReady
	}
	return search.GetByCategory(category, snap.records), nil
}

func (s *service) SearchContent(ctx context.Context, query string, limit int) ([]ContentHit, error) {
	if limit <= 0 {
		limit = config.ContentSearchDefaultLimit
	}
	if limit > config.ContentSearchMaxLimit {
		limit = config.ContentSearchMaxLimit
	}

	snap, release := s.holder.acquireText()
	defer release()
	if snap == nil {
		return nil, ErrNotReady
	}

	hits, err := snap.text.Search(ctx, search.Normalize(query), limit)
	if err != nil {
		return nil, err
	}
	out := make([]ContentHit, 0, len(hits))
	for _, h := range hits {
		if h.Position < 0 || h.Position >= len(snap.records) {
			continue
		}
		out = append(out, ContentHit{Record: snap.records[h.Position], Score: h.Score})
	}
	return out, nil
}

func (s *service) Stats() IndexStats {
	snap, release := s.holder.acquireText()
	defer release()
	if snap == nil {
		return IndexStats{}
	}
	perCategory := make(map[document.Category]int, len(snap.stats.PerCategory))
	for c, n := range snap.stats.PerCategory {
		perCategory[c] = n
	}
	return IndexStats{
		Ready:       true,
		Generation:  snap.generation,
		Documents:   len(snap.records),
		Failed:      snap.stats.Failed,
		PerCategory: perCategory,
		BuiltAt:     snap.builtAt,

		FullTextDocuments: s.fullTextCount(snap),
	}
}

func (s *service) fullTextCount(snap *snapshot) uint64 {
	if snap.text == nil {
		return 0
	}
	n, err := snap.text.DocCount()
	if err != nil {
		s.logger.Error("Could not count full-text documents", "generation", snap.generation, "error", err)
		return 0
	}
	return n
}

func (s *service) Close() error {
	s.holder.refreshMu.Lock()
	defer s.holder.refreshMu.Unlock()
	old := s.holder.publish(nil)
	if old == nil {
		return nil
	}
	return old.close()
}
