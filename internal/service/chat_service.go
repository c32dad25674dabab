// Package service contains the application's business logic.
package service

import (
	"context"
	"time"

	"github.com/hardeep652/sihhackathon/internal/dataset"
	"github.com/hardeep652/sihhackathon/internal/model"
	"github.com/hardeep652/sihhackathon/internal/repository"
	"github.com/hardeep652/sihhackathon/pkg/log"
)

// Fixed degraded responses. A bad dataset or a missing index must never
// surface as an error to the caller of Answer.
const (
	dataUnavailableMsg  = "Sorry, the groundwater dataset is currently unavailable. Please try again later."
	modelUnavailableMsg = "Sorry, I couldn’t match a district in your question and semantic search is currently unavailable."
)

// EventPublisher publishes query analytics events. Implementations must be
// safe for fire-and-forget use; the answer path ignores publish failures.
type EventPublisher interface {
	PublishQueryEvent(ctx context.Context, event model.QueryEvent) error
}

// SnapshotProvider hands out the shared read-only dataset snapshot.
// *dataset.Store is the production implementation.
type SnapshotProvider interface {
	Get(ctx context.Context) *dataset.Snapshot
}

// ChatService resolves one free-text query into one answer string.
type ChatService interface {
	Answer(ctx context.Context, sessionID, query string) string
}

type chatService struct {
	store            SnapshotProvider
	conversationRepo repository.ConversationRepository
	publisher        EventPublisher
}

// NewChatService creates a ChatService over the shared dataset store.
// conversationRepo and publisher may be nil; history and analytics are then
// skipped.
func NewChatService(store SnapshotProvider, conversationRepo repository.ConversationRepository, publisher EventPublisher) ChatService {
	return &chatService{
		store:            store,
		conversationRepo: conversationRepo,
		publisher:        publisher,
	}
}

// Answer resolves a query synchronously: smalltalk short-circuit, then
// entity extraction and structured row selection, then the embedding
// nearest-neighbor fallback. It always returns a user-facing string and
// never an error.
func (s *chatService) Answer(ctx context.Context, sessionID, query string) string {
	start := time.Now()
	event := model.QueryEvent{
		SessionID: sessionID,
		Query:     query,
		Timestamp: start,
	}

	// 1. Conversational queries bypass the dataset entirely.
	if reply, ok := SmalltalkReply(query); ok {
		event.Path = model.PathSmalltalk
		s.finish(sessionID, query, reply, event, start)
		return reply
	}

	// 2. An empty table is a valid, fully degraded state.
	snap := s.store.Get(ctx)
	if len(snap.Records) == 0 {
		event.Path = model.PathDegraded
		s.finish(sessionID, query, dataUnavailableMsg, event, start)
		return dataUnavailableMsg
	}

	// 3. Structured path: district matched in the query.
	entities := ExtractEntities(query, snap.Districts)
	if entities.District != "" {
		row := SelectRow(snap.Records, entities.District, entities.Year)
		answer := FormatStructured(row)
		event.Path = model.PathStructured
		event.District = row.District
		event.Year = row.Year
		s.finish(sessionID, query, answer, event, start)
		return answer
	}

	// 4. Semantic fallback: nearest descriptor by embedding distance.
	if snap.Index == nil {
		event.Path = model.PathDegraded
		s.finish(sessionID, query, modelUnavailableMsg, event, start)
		return modelUnavailableMsg
	}

	match, err := snap.Index.Nearest(ctx, query)
	if err != nil {
		log.Errorf("[ChatService] nearest-neighbor search failed: %v", err)
		event.Path = model.PathDegraded
		s.finish(sessionID, query, modelUnavailableMsg, event, start)
		return modelUnavailableMsg
	}

	row := snap.Records[match.Ordinal]
	answer := FormatClosest(row)
	log.Infof("[ChatService] semantic fallback matched record %d (%s, %s), distance %f",
		match.Ordinal, row.District, row.Year, match.Distance)
	event.Path = model.PathSemantic
	event.District = row.District
	event.Year = row.Year
	s.finish(sessionID, query, answer, event, start)
	return answer
}

// finish records the exchange and publishes the analytics event. Both are
// best effort: the answer is already computed and must still be delivered,
// so failures are logged and swallowed. A background context is used
// because the request context may already be done.
func (s *chatService) finish(sessionID, question, answer string, event model.QueryEvent, start time.Time) {
	ctx := context.Background()

	if s.conversationRepo != nil && sessionID != "" {
		if err := s.conversationRepo.AppendExchange(ctx, sessionID, question, answer); err != nil {
			log.Errorf("[ChatService] failed to save session history: %v", err)
		}
	}

	if s.publisher != nil {
		event.Latency = time.Since(start)
		if err := s.publisher.PublishQueryEvent(ctx, event); err != nil {
			log.Errorf("[ChatService] failed to publish query event: %v", err)
		}
	}
}
