package dataset

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/hardeep652/sihhackathon/internal/index"
	"github.com/hardeep652/sihhackathon/internal/model"
	"github.com/hardeep652/sihhackathon/pkg/embedding"
	"github.com/hardeep652/sihhackathon/pkg/log"
)

// Snapshot is the read-only view the whole query path works against.
// Records, Descriptors and the index are positionally aligned and never
// mutated after construction, so a snapshot is safe to share across
// concurrent sessions without locking.
//
// Index is nil when the build failed or the table is empty; the chat
// service answers with a degraded message instead of searching.
type Snapshot struct {
	Records     []model.Record
	Descriptors []string
	Districts   []string
	Index       index.Index
}

// Store owns the lazily-built snapshot. Normalizing the table and embedding
// every descriptor are expensive, so they happen at most once per dataset
// behind a single-initialization guard; Reload swaps in a complete
// replacement snapshot while in-flight queries keep the old one.
type Store struct {
	source   RowSource
	embedder embedding.Client

	once     sync.Once
	reloadMu sync.Mutex
	snap     atomic.Pointer[Snapshot]
}

// NewStore creates a Store over the given source and embedding capability.
func NewStore(source RowSource, embedder embedding.Client) *Store {
	return &Store{source: source, embedder: embedder}
}

// Get returns the current snapshot, building it on first use. It never
// returns nil: an unavailable source yields an empty, fully degraded
// snapshot rather than an error.
func (s *Store) Get(ctx context.Context) *Snapshot {
	s.once.Do(func() {
		s.snap.Store(s.build(ctx))
	})
	return s.snap.Load()
}

// Reload builds a fresh snapshot from the source and atomically swaps it
// in. Used by the admin API after the backing dataset changes.
func (s *Store) Reload(ctx context.Context) *Snapshot {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	snap := s.build(ctx)
	// Make sure the once-guard is spent so Get never overwrites the
	// reloaded snapshot with a stale build.
	s.once.Do(func() {})
	s.snap.Store(snap)
	return snap
}

func (s *Store) build(ctx context.Context) *Snapshot {
	rows, err := s.source.Rows(ctx)
	if err != nil {
		log.Error("[DatasetStore] dataset source unavailable, serving degraded snapshot", err)
		return &Snapshot{}
	}

	records := Normalize(rows)
	descriptors := BuildDescriptors(records)
	districts := DistinctDistricts(records)
	log.Infof("[DatasetStore] normalized %d records, %d distinct districts", len(records), len(districts))

	snap := &Snapshot{
		Records:     records,
		Descriptors: descriptors,
		Districts:   districts,
	}
	if len(records) == 0 {
		return snap
	}

	idx, err := index.Build(ctx, s.embedder, descriptors)
	if err != nil {
		// Structured lookups still work without the index; only the
		// semantic fallback degrades.
		log.Error("[DatasetStore] index build failed, semantic fallback disabled", err)
		return snap
	}
	snap.Index = idx
	return snap
}
