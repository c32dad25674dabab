package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hardeep652/sihhackathon/internal/service"
)

// ConversationHandler serves session history to the UI.
type ConversationHandler struct {
	service service.ConversationService
}

// NewConversationHandler creates a new ConversationHandler.
func NewConversationHandler(service service.ConversationService) *ConversationHandler {
	return &ConversationHandler{service: service}
}

// GetHistory handles GET /api/v1/chat/history?session=<id>.
func (h *ConversationHandler) GetHistory(c *gin.Context) {
	sessionID := c.Query("session")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"code": http.StatusBadRequest, "message": "session parameter is required", "data": nil})
		return
	}

	history, err := h.service.GetHistory(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to retrieve session history", "data": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "message": "success", "data": history})
}
