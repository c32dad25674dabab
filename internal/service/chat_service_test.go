package service

import (
	"context"
	"strings"
	"testing"

	"github.com/hardeep652/sihhackathon/internal/dataset"
	"github.com/hardeep652/sihhackathon/internal/index"
	"github.com/hardeep652/sihhackathon/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProvider serves a fixed snapshot.
type stubProvider struct {
	snap *dataset.Snapshot
}

func (p *stubProvider) Get(ctx context.Context) *dataset.Snapshot {
	return p.snap
}

// panicProvider fails the test if the dataset is touched at all.
type panicProvider struct{ t *testing.T }

func (p *panicProvider) Get(ctx context.Context) *dataset.Snapshot {
	p.t.Fatal("dataset must not be touched for conversational queries")
	return nil
}

// stubIndex always returns the same ordinal.
type stubIndex struct {
	ordinal  int
	distance float32
}

func (ix *stubIndex) Nearest(ctx context.Context, query string) (index.Match, error) {
	return index.Match{Ordinal: ix.ordinal, Distance: ix.distance}, nil
}

func (ix *stubIndex) Size() int { return 1 }

// captureRepo records appended exchanges.
type captureRepo struct {
	sessionID string
	question  string
	answer    string
}

func (r *captureRepo) AppendExchange(ctx context.Context, sessionID, question, answer string) error {
	r.sessionID, r.question, r.answer = sessionID, question, answer
	return nil
}

func (r *captureRepo) GetHistory(ctx context.Context, sessionID string) ([]model.ChatMessage, error) {
	return nil, nil
}

func (r *captureRepo) ListSessionIDs(ctx context.Context) ([]string, error) {
	return nil, nil
}

// capturePublisher records the last published event.
type capturePublisher struct {
	event model.QueryEvent
}

func (p *capturePublisher) PublishQueryEvent(ctx context.Context, event model.QueryEvent) error {
	p.event = event
	return nil
}

func testSnapshot() *dataset.Snapshot {
	records := []model.Record{
		{District: "GUNTUR", State: "ANDHRA PRADESH", Year: "2020-21", Recharge: 120.5, Available: 98.2, Extraction: 75.4, StagePct: 76.8},
		{District: "KURNOOL", State: "ANDHRA PRADESH", Year: "2020-21", Recharge: 88.1, Available: 70.3, Extraction: 71.2, StagePct: 101.3},
	}
	return &dataset.Snapshot{
		Records:     records,
		Descriptors: dataset.BuildDescriptors(records),
		Districts:   dataset.DistinctDistricts(records),
	}
}

func TestAnswerGreetingSkipsDataset(t *testing.T) {
	svc := NewChatService(&panicProvider{t: t}, nil, nil)
	assert.Equal(t, greetingReply, svc.Answer(context.Background(), "", "hello"))
}

func TestAnswerStructuredMatch(t *testing.T) {
	publisher := &capturePublisher{}
	svc := NewChatService(&stubProvider{snap: testSnapshot()}, nil, publisher)

	answer := svc.Answer(context.Background(), "s1", "Guntur 2020-21")

	assert.Contains(t, answer, "GUNTUR (ANDHRA PRADESH)")
	assert.Contains(t, answer, "Year: 2020-21")
	assert.Contains(t, answer, "Recharge: 120.5 MCM")
	assert.Contains(t, answer, "Available: 98.2 MCM")
	assert.Contains(t, answer, "Extraction: 75.4 MCM")
	assert.Contains(t, answer, "Stage: 76.8% (Semi-Critical)")
	assert.False(t, strings.Contains(answer, "closest data"))

	assert.Equal(t, model.PathStructured, publisher.event.Path)
	assert.Equal(t, "GUNTUR", publisher.event.District)
}

func TestAnswerSemanticFallback(t *testing.T) {
	snap := testSnapshot()
	snap.Index = &stubIndex{ordinal: 1}
	publisher := &capturePublisher{}
	svc := NewChatService(&stubProvider{snap: snap}, nil, publisher)

	// No known district name and no year: falls through to the
	// nearest-neighbor path and carries the approximate disclaimer.
	answer := svc.Answer(context.Background(), "", "groundwater usage somewhere dry")

	require.Contains(t, answer, "I couldn’t find an exact match")
	assert.Contains(t, answer, "KURNOOL")
	assert.Contains(t, answer, "Over-Exploited")
	assert.Equal(t, model.PathSemantic, publisher.event.Path)
}

func TestAnswerEmptyDataset(t *testing.T) {
	svc := NewChatService(&stubProvider{snap: &dataset.Snapshot{}}, nil, nil)
	assert.Equal(t, dataUnavailableMsg, svc.Answer(context.Background(), "", "Guntur 2020"))
}

func TestAnswerIndexUnavailable(t *testing.T) {
	// Non-empty table but no index: structured lookups still work, only
	// the fallback path degrades.
	svc := NewChatService(&stubProvider{snap: testSnapshot()}, nil, nil)

	assert.Contains(t, svc.Answer(context.Background(), "", "Guntur please"), "GUNTUR")
	assert.Equal(t, modelUnavailableMsg, svc.Answer(context.Background(), "", "unknown place"))
}

func TestAnswerRecordsSessionHistory(t *testing.T) {
	repo := &captureRepo{}
	svc := NewChatService(&stubProvider{snap: testSnapshot()}, repo, nil)

	answer := svc.Answer(context.Background(), "session-42", "Kurnool 2020")

	assert.Equal(t, "session-42", repo.sessionID)
	assert.Equal(t, "Kurnool 2020", repo.question)
	assert.Equal(t, answer, repo.answer)
}
