package index

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEmbedder maps each known text to a fixed vector, so nearest-neighbor
// results are fully deterministic.
type fakeEmbedder struct {
	vectors map[string][]float32
}

func (f *fakeEmbedder) CreateEmbedding(ctx context.Context, text string) ([]float32, error) {
	vec, ok := f.vectors[text]
	if !ok {
		return nil, errors.New("unknown text")
	}
	return vec, nil
}

func (f *fakeEmbedder) CreateEmbeddings(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, text := range texts {
		vec, err := f.CreateEmbedding(ctx, text)
		if err != nil {
			return nil, err
		}
		out[i] = vec
	}
	return out, nil
}

func TestBuildAndNearest(t *testing.T) {
	descriptors := []string{"alpha", "beta", "gamma"}
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		"alpha": {1, 0, 0},
		"beta":  {0, 1, 0},
		"gamma": {0, 0, 1},
	}}

	ix, err := Build(context.Background(), embedder, descriptors)
	require.NoError(t, err)
	assert.Equal(t, 3, ix.Size())

	// A query embedded identically to a stored descriptor comes back as
	// that descriptor's ordinal at distance zero.
	for want, text := range descriptors {
		match, err := ix.Nearest(context.Background(), text)
		require.NoError(t, err)
		assert.Equal(t, want, match.Ordinal)
		assert.Zero(t, match.Distance)
	}
}

func TestNearestPicksClosest(t *testing.T) {
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		"alpha": {1, 0, 0},
		"beta":  {0, 1, 0},
		"query": {0.1, 0.9, 0},
	}}

	ix, err := Build(context.Background(), embedder, []string{"alpha", "beta"})
	require.NoError(t, err)

	match, err := ix.Nearest(context.Background(), "query")
	require.NoError(t, err)
	assert.Equal(t, 1, match.Ordinal)
}

func TestBuildEmptyCorpus(t *testing.T) {
	_, err := Build(context.Background(), &fakeEmbedder{}, nil)
	assert.ErrorIs(t, err, ErrModelUnavailable)
}

func TestBuildEmbedderFailure(t *testing.T) {
	_, err := Build(context.Background(), &fakeEmbedder{}, []string{"alpha"})
	assert.ErrorIs(t, err, ErrModelUnavailable)
}

func TestNearestEmbedderFailure(t *testing.T) {
	embedder := &fakeEmbedder{vectors: map[string][]float32{"alpha": {1, 0}}}

	ix, err := Build(context.Background(), embedder, []string{"alpha"})
	require.NoError(t, err)

	_, err = ix.Nearest(context.Background(), "never embedded")
	assert.Error(t, err)
}
