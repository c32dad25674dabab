package dataset

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource serves in-memory rows and counts how often it is read.
type fakeSource struct {
	rows  []RawRow
	err   error
	calls int
}

func (f *fakeSource) Rows(ctx context.Context) ([]RawRow, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

// constEmbedder returns the same unit vector for every text. Good enough
// for the store, which only needs the index build to succeed.
type constEmbedder struct{}

func (constEmbedder) CreateEmbedding(ctx context.Context, text string) ([]float32, error) {
	return []float32{1, 0}, nil
}

func (constEmbedder) CreateEmbeddings(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = []float32{1, 0}
	}
	return out, nil
}

// failingEmbedder simulates an unreachable embedding endpoint.
type failingEmbedder struct{}

func (failingEmbedder) CreateEmbedding(ctx context.Context, text string) ([]float32, error) {
	return nil, errors.New("embedding endpoint down")
}

func (failingEmbedder) CreateEmbeddings(ctx context.Context, texts []string) ([][]float32, error) {
	return nil, errors.New("embedding endpoint down")
}

func sampleRows() []RawRow {
	return []RawRow{
		{"DISTRICT": "Guntur", "STATE": "Andhra Pradesh", "YEAR": "2020-21", "RECHARGE": "120.5", "AVAILABLE": "98.2", "EXTRACTION": "75.4", "STAGE (%)": "76.8"},
		{"DISTRICT": "Puri", "STATE": "Odisha", "YEAR": "2019", "RECHARGE": "80", "AVAILABLE": "66", "EXTRACTION": "30", "STAGE (%)": "45.5"},
	}
}

func TestStoreBuildsOnce(t *testing.T) {
	source := &fakeSource{rows: sampleRows()}
	store := NewStore(source, constEmbedder{})

	first := store.Get(context.Background())
	second := store.Get(context.Background())

	assert.Same(t, first, second)
	assert.Equal(t, 1, source.calls)

	require.Len(t, first.Records, 2)
	assert.Equal(t, []string{"GUNTUR", "PURI"}, first.Districts)
	require.NotNil(t, first.Index)
	assert.Equal(t, 2, first.Index.Size())
}

func TestStoreDegradesWhenSourceUnavailable(t *testing.T) {
	store := NewStore(&fakeSource{err: errors.New("disk gone")}, constEmbedder{})

	snap := store.Get(context.Background())
	require.NotNil(t, snap)
	assert.Empty(t, snap.Records)
	assert.Nil(t, snap.Index)
}

func TestStoreKeepsRecordsWhenIndexBuildFails(t *testing.T) {
	store := NewStore(&fakeSource{rows: sampleRows()}, failingEmbedder{})

	snap := store.Get(context.Background())
	assert.Len(t, snap.Records, 2)
	assert.Nil(t, snap.Index)
}

func TestStoreReloadSwapsSnapshot(t *testing.T) {
	source := &fakeSource{rows: sampleRows()}
	store := NewStore(source, constEmbedder{})

	old := store.Get(context.Background())

	source.rows = append(sampleRows(), RawRow{
		"DISTRICT": "Kurnool", "STATE": "Andhra Pradesh", "YEAR": "2020-21",
		"RECHARGE": "88.1", "AVAILABLE": "70.3", "EXTRACTION": "71.2", "STAGE (%)": "101.3",
	})

	fresh := store.Reload(context.Background())
	assert.NotSame(t, old, fresh)
	assert.Len(t, fresh.Records, 3)

	// Subsequent reads see the reloaded snapshot.
	assert.Same(t, fresh, store.Get(context.Background()))
	assert.Equal(t, 2, source.calls)
}
