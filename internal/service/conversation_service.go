package service

import (
	"context"

	"github.com/hardeep652/sihhackathon/internal/model"
	"github.com/hardeep652/sihhackathon/internal/repository"
)

// ConversationService exposes session history to the API layer.
type ConversationService interface {
	GetHistory(ctx context.Context, sessionID string) ([]model.ChatMessage, error)
	ListSessions(ctx context.Context) ([]string, error)
}

type conversationService struct {
	conversationRepo repository.ConversationRepository
}

// NewConversationService creates a new ConversationService instance.
func NewConversationService(conversationRepo repository.ConversationRepository) ConversationService {
	return &conversationService{conversationRepo: conversationRepo}
}

func (s *conversationService) GetHistory(ctx context.Context, sessionID string) ([]model.ChatMessage, error) {
	return s.conversationRepo.GetHistory(ctx, sessionID)
}

func (s *conversationService) ListSessions(ctx context.Context) ([]string, error) {
	return s.conversationRepo.ListSessionIDs(ctx)
}
