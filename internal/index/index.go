// Package index wraps the embedded vector index used for semantic fallback.
package index

import (
	"context"
	"errors"
	"fmt"

	"github.com/hardeep652/sihhackathon/pkg/embedding"
	"github.com/hardeep652/sihhackathon/pkg/log"
	"github.com/hupe1980/vecgo"
)

// ErrModelUnavailable marks a failed or skipped index build. Queries that
// need the semantic fallback degrade to a fixed message instead.
var ErrModelUnavailable = errors.New("embedding index unavailable")

// Match is the nearest stored descriptor for a query. Ordinal is the
// position in the record table; Distance is squared Euclidean, which keeps
// the same arg-min as plain L2.
type Match struct {
	Ordinal  int
	Distance float32
}

// Index answers top-1 nearest-neighbor queries over the descriptor corpus.
type Index interface {
	Nearest(ctx context.Context, query string) (Match, error)
	Size() int
}

type flatIndex struct {
	db       *vecgo.Vecgo[int]
	embedder embedding.Client
	size     int
}

// Build embeds every descriptor and loads the vectors into a flat
// squared-L2 index. Position i of descriptors must correspond to record i;
// the ordinal travels with each vector so search results map straight back
// to the record table.
func Build(ctx context.Context, embedder embedding.Client, descriptors []string) (Index, error) {
	if len(descriptors) == 0 {
		return nil, fmt.Errorf("%w: no descriptors to index", ErrModelUnavailable)
	}

	log.Infof("[Index] embedding %d descriptors", len(descriptors))
	vectors, err := embedder.CreateEmbeddings(ctx, descriptors)
	if err != nil {
		return nil, fmt.Errorf("%w: embed descriptors: %v", ErrModelUnavailable, err)
	}

	dimension := len(vectors[0])
	db := vecgo.NewFlat[int]()

	items := make([]vecgo.VectorWithData[int], len(vectors))
	for i, vec := range vectors {
		if len(vec) != dimension {
			return nil, fmt.Errorf("%w: descriptor %d has dimension %d, want %d", ErrModelUnavailable, i, len(vec), dimension)
		}
		items[i] = vecgo.VectorWithData[int]{Vector: vec, Data: i}
	}

	for _, item := range items {
		if _, insErr := db.Insert(item); insErr != nil {
			return nil, fmt.Errorf("%w: insert vectors: %v", ErrModelUnavailable, insErr)
		}
	}

	log.Infof("[Index] flat index ready, %d vectors, dimension %d", len(items), dimension)
	return &flatIndex{db: db, embedder: embedder, size: len(items)}, nil
}

// Nearest embeds the query text and returns the closest stored descriptor.
func (ix *flatIndex) Nearest(ctx context.Context, query string) (Match, error) {
	vec, err := ix.embedder.CreateEmbedding(ctx, query)
	if err != nil {
		return Match{}, fmt.Errorf("embed query: %w", err)
	}

	results, err := ix.db.KNNSearch(vec, 1)
	if err != nil {
		return Match{}, fmt.Errorf("knn search: %w", err)
	}
	if len(results) == 0 {
		return Match{}, errors.New("knn search returned no results")
	}

	return Match{Ordinal: results[0].Data, Distance: results[0].Distance}, nil
}

func (ix *flatIndex) Size() int {
	return ix.size
}
