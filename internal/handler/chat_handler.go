// Package handler contains the HTTP controller logic.
package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/hardeep652/sihhackathon/internal/service"
	"github.com/hardeep652/sihhackathon/pkg/log"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ChatHandler serves the query endpoint and the WebSocket chat.
type ChatHandler struct {
	chatService service.ChatService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

type chatQueryRequest struct {
	Query string `json:"query" binding:"required"`
}

// Query handles POST /api/v1/chat/query. The optional X-Session-ID header
// groups exchanges into a session history.
func (h *ChatHandler) Query(c *gin.Context) {
	var req chatQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Query) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"code": http.StatusBadRequest, "message": "query must not be empty", "data": nil})
		return
	}

	sessionID := c.GetHeader("X-Session-ID")
	answer := h.chatService.Answer(c.Request.Context(), sessionID, req.Query)

	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"message": "success",
		"data":    gin.H{"answer": answer},
	})
}

type wsChatMessage struct {
	Query string `json:"query"`
}

type wsChatReply struct {
	Answer string `json:"answer"`
}

// HandleWS upgrades the connection and answers one query per message. The
// optional "session" query parameter plays the role of X-Session-ID.
func (h *ChatHandler) HandleWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error("WebSocket upgrade failed", err)
		return
	}
	defer conn.Close()

	sessionID := c.Query("session")
	log.Infof("WebSocket chat connected, session: %q", sessionID)

	for {
		var msg wsChatMessage
		if err := conn.ReadJSON(&msg); err != nil {
			log.Warnf("failed to read WebSocket message: %v", err)
			break
		}
		if strings.TrimSpace(msg.Query) == "" {
			continue
		}

		answer := h.chatService.Answer(c.Request.Context(), sessionID, msg.Query)
		if err := conn.WriteJSON(wsChatReply{Answer: answer}); err != nil {
			log.Warnf("failed to write WebSocket reply: %v", err)
			break
		}
	}
}
