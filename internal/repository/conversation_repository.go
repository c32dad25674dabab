package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/hardeep652/sihhackathon/internal/model"
)

// Conversation history is session-scoped: it lives only as long as the
// active session TTL and is never consulted when resolving a query.
const (
	sessionTTL        = 24 * time.Hour
	maxSessionHistory = 20
)

// ConversationRepository stores the Q/A history of active chat sessions.
type ConversationRepository interface {
	AppendExchange(ctx context.Context, sessionID, question, answer string) error
	GetHistory(ctx context.Context, sessionID string) ([]model.ChatMessage, error)
	ListSessionIDs(ctx context.Context) ([]string, error)
}

type redisConversationRepository struct {
	redisClient *redis.Client
}

// NewConversationRepository creates a ConversationRepository backed by Redis.
func NewConversationRepository(redisClient *redis.Client) ConversationRepository {
	return &redisConversationRepository{redisClient: redisClient}
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("chat:session:%s:history", sessionID)
}

// AppendExchange appends one question/answer pair to the session history,
// keeping only the most recent entries and refreshing the session TTL.
func (r *redisConversationRepository) AppendExchange(ctx context.Context, sessionID, question, answer string) error {
	history, err := r.GetHistory(ctx, sessionID)
	if err != nil {
		return err
	}

	now := time.Now()
	history = append(history,
		model.ChatMessage{Role: "user", Content: question, Timestamp: now},
		model.ChatMessage{Role: "assistant", Content: answer, Timestamp: now},
	)
	if len(history) > maxSessionHistory {
		history = history[len(history)-maxSessionHistory:]
	}

	jsonData, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("failed to marshal conversation history: %w", err)
	}
	if err := r.redisClient.Set(ctx, sessionKey(sessionID), jsonData, sessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to set conversation history: %w", err)
	}
	return nil
}

// GetHistory returns the session history, empty when the session is new.
func (r *redisConversationRepository) GetHistory(ctx context.Context, sessionID string) ([]model.ChatMessage, error) {
	jsonData, err := r.redisClient.Get(ctx, sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return []model.ChatMessage{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation history: %w", err)
	}

	var messages []model.ChatMessage
	if err := json.Unmarshal([]byte(jsonData), &messages); err != nil {
		return nil, fmt.Errorf("failed to unmarshal conversation history: %w", err)
	}
	return messages, nil
}

// ListSessionIDs returns the IDs of all sessions that still have history.
func (r *redisConversationRepository) ListSessionIDs(ctx context.Context) ([]string, error) {
	keys, err := r.redisClient.Keys(ctx, "chat:session:*:history").Result()
	if err != nil {
		return nil, fmt.Errorf("failed to scan session keys: %w", err)
	}

	sessionIDs := make([]string, 0, len(keys))
	for _, k := range keys {
		id := strings.TrimSuffix(strings.TrimPrefix(k, "chat:session:"), ":history")
		if id != "" {
			sessionIDs = append(sessionIDs, id)
		}
	}
	return sessionIDs, nil
}
