package ingest

import (
	"context"
	"sync"
	"time"

	"github.com/estla/skillserver/internal/config"
	"github.com/estla/skillserver/internal/domain/document"
	"github.com/estla/skillserver/pkg/logger_i"
	"github.com/panjf2000/ants/v2"
	"github.com/spf13/afero"
)

// Stats describes one index build.
type Stats struct {
	Total       int
	Failed      int
	PerCategory map[document.Category]int
	Elapsed     time.Duration
}

// Builder turns a content tree into an ordered slice of records.
type Builder struct {
	Fs       afero.Fs
	Root     string
	Folders  []document.CategoryFolder
	HostBase string
	Workers  int
}

func BuildIndex(fsys afero.Fs, root string, folders []document.CategoryFolder, hostBase string) ([]document.Record, Stats) {
	b := Builder{Fs: fsys, Root: root, Folders: folders, HostBase: hostBase, Workers: config.DefaultExtractWorker}
	return b.Build(context.Background())
}

// Build never fails. Missing folders and broken documents are logged and
// reflected in Stats; ctx only carries the trace id.
func (b Builder) Build(ctx context.Context) ([]document.Record, Stats) {
	start := time.Now()
	log := logger_i.NewLogger("Index Builder").WithTrace(ctx, config.TRACE_ID_KEY)

	stats := Stats{PerCategory: make(map[document.Category]int)}
	for _, cf := range b.Folders {
		stats.PerCategory[cf.Category] = 0
	}

	found := discover(b.Fs, b.Root, b.Folders, log)
	records := make([]document.Record, len(found))
	failed := make([]bool, len(found))

	extractAll(found, b.Workers, log, func(i int) {
		records[i], failed[i] = b.toRecord(found[i], log)
	})

	for i, r := range records {
		stats.PerCategory[r.Category]++
		if failed[i] {
			stats.Failed++
		}
	}
	stats.Total = len(records)
	stats.Elapsed = time.Since(start)

	log.Info("Indexed documents", "documents", stats.Total, "failed", stats.Failed, "elapsed", stats.Elapsed)
	return records, stats
}

// extractAll runs fn for every slot on a bounded pool and waits for all of them.
func extractAll(found []discovered, workers int, log *logger_i.Logger, fn func(i int)) {
	if len(found) == 0 {
		return
	}
	if workers < 1 {
		workers = 1
	}
	pool, err := ants.NewPool(workers)
	if err != nil {
		log.Warn("Could not create extraction pool, extracting inline", "error", err)
		for i := range found {
			fn(i)
		}
		return
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i := range found {
		wg.Add(1)
		task := func() {
			defer wg.Done()
			fn(i)
		}
		if err := pool.Submit(task); err != nil {
			log.Warn("Pool rejected extraction, running inline", "error", err)
			task()
		}
	}
	wg.Wait()
}
