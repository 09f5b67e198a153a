package content

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/estla/skillserver/internal/content/fulltext"
	"github.com/estla/skillserver/internal/content/ingest"
	"github.com/estla/skillserver/internal/domain/document"
)

// snapshot is one immutable build of the index. Only the full-text index
// holds resources; mu guards it against being closed under a reader.
type snapshot struct {
	records    []document.Record
	firstByKey map[string]int
	text       *fulltext.Index
	generation uint64
	stats      ingest.Stats
	builtAt    time.Time

	mu     sync.RWMutex
	closed bool
}

func newSnapshot(records []document.Record, text *fulltext.Index, generation uint64, stats ingest.Stats) *snapshot {
	first := make(map[string]int, len(records))
	for i, r := range records {
		if _, ok := first[r.Title]; !ok {
			first[r.Title] = i
		}
	}
	return &snapshot{
		records:    records,
		firstByKey: first,
		text:       text,
		generation: generation,
		stats:      stats,
		builtAt:    time.Now(),
	}
}

// positions maps records back to the index of their first occurrence.
func (s *snapshot) positions(records []document.Record) []int {
	out := make([]int, 0, len(records))
	for _, r := range records {
		if pos, ok := s.firstByKey[r.Title]; ok {
			out = append(out, pos)
		}
	}
	return out
}

func (s *snapshot) pick(positions []int) ([]document.Record, bool) {
	out := make([]document.Record, 0, len(positions))
	for _, pos := range positions {
		if pos < 0 || pos >= len(s.records) {
			return nil, false
		}
		out = append(out, s.records[pos])
	}
	return out, true
}

func (s *snapshot) close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.text == nil {
		s.closed = true
		return nil
	}
	s.closed = true
	return s.text.Close()
}

// holder publishes snapshots with a single atomic swap. Reads never lock;
// refreshMu only serialises rebuilds.
type holder struct {
	current    atomic.Pointer[snapshot]
	refreshMu  sync.Mutex
	generation atomic.Uint64
}

func (h *holder) load() *snapshot {
	return h.current.Load()
}

// acquireText returns the live snapshot read-locked so its full-text index
// stays open until release is called.
func (h *holder) acquireText() (*snapshot, func()) {
	for {
		snap := h.current.Load()
		if snap == nil {
			return nil, func() {}
		}
		snap.mu.RLock()
		if !snap.closed {
			return snap, snap.mu.RUnlock
		}
		snap.mu.RUnlock()
	}
}

// publish swaps next in and returns the snapshot it replaced.
func (h *holder) publish(next *snapshot) *snapshot {
	return h.current.Swap(next)
}
