// README: Chat handler; the main conversational endpoint.
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"concierge/internal/modules/conversation"
	"concierge/internal/modules/session"
)

type ChatHandler struct {
	chat *conversation.Service
}

func NewChatHandler(chat *conversation.Service) *ChatHandler {
	return &ChatHandler{chat: chat}
}

type chatReq struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

type chatResp struct {
	Reply     string `json:"reply"`
	SessionID string `json:"session_id"`
	Success   bool   `json:"success"`
}

// Chat handles POST /api/chat.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		writeError(c, http.StatusBadRequest, "missing message")
		return
	}
	if req.SessionID == "" {
		req.SessionID = session.NewID()
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	reply := h.chat.Respond(ctx, req.SessionID, req.Message)
	writeJSON(c, http.StatusOK, chatResp{Reply: reply, SessionID: req.SessionID, Success: true})
}
