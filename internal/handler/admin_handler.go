package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hardeep652/sihhackathon/internal/dataset"
	"github.com/hardeep652/sihhackathon/internal/model"
	"github.com/hardeep652/sihhackathon/internal/service"
	"github.com/hardeep652/sihhackathon/pkg/log"
)

// AdminHandler serves the JWT-guarded operational endpoints.
type AdminHandler struct {
	store               *dataset.Store
	conversationService service.ConversationService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(store *dataset.Store, conversationService service.ConversationService) *AdminHandler {
	return &AdminHandler{store: store, conversationService: conversationService}
}

// Stats handles GET /api/v1/admin/stats with dataset and index counters.
func (h *AdminHandler) Stats(c *gin.Context) {
	snap := h.store.Get(c.Request.Context())

	categories := map[model.StageCategory]int{}
	for _, r := range snap.Records {
		categories[service.ClassifyStageValue(r.StagePct)]++
	}

	indexSize := 0
	if snap.Index != nil {
		indexSize = snap.Index.Size()
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"message": "success",
		"data": gin.H{
			"records":    len(snap.Records),
			"districts":  len(snap.Districts),
			"indexReady": snap.Index != nil,
			"indexSize":  indexSize,
			"categories": categories,
		},
	})
}

// Reload handles POST /api/v1/admin/reload. A fresh snapshot is built from
// the backing source and swapped in atomically.
func (h *AdminHandler) Reload(c *gin.Context) {
	log.Info("[AdminHandler] dataset reload requested")
	snap := h.store.Reload(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"message": "success",
		"data": gin.H{
			"records":    len(snap.Records),
			"districts":  len(snap.Districts),
			"indexReady": snap.Index != nil,
		},
	})
}

// Conversations handles GET /api/v1/admin/conversations, returning the
// history of every active session.
func (h *AdminHandler) Conversations(c *gin.Context) {
	ctx := c.Request.Context()

	sessionIDs, err := h.conversationService.ListSessions(ctx)
	if err != nil {
		log.Errorf("[AdminHandler] failed to list sessions: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to list sessions", "data": nil})
		return
	}

	conversations := make(map[string][]model.ChatMessage, len(sessionIDs))
	for _, id := range sessionIDs {
		history, err := h.conversationService.GetHistory(ctx, id)
		if err != nil {
			log.Warnf("[AdminHandler] failed to load history for session '%s': %v", id, err)
			continue
		}
		conversations[id] = history
	}

	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "message": "success", "data": conversations})
}
