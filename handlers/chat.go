// File: handlers/chat.go
package handlers

import (
	"net/http"

	"dinebot/models"
	"dinebot/services/dialogue"
	"dinebot/utils"

	"github.com/gin-gonic/gin"
)

// ChatHandler serves the conversational endpoint. Whatever happens inside a
// turn, the client gets a 200 with a usable reply — the only non-200 is a
// structurally invalid request.
type ChatHandler struct {
	svc dialogue.Service
}

func NewChatHandler(svc dialogue.Service) *ChatHandler {
	return &ChatHandler{svc: svc}
}

// HandleChat processes one chat turn. The pending state in the response is
// authoritative: clients must resend it verbatim on the next call.
func (h *ChatHandler) HandleChat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid chat request", err.Error())
		return
	}
	if req.Message == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid chat request", "message is required")
		return
	}

	resp := h.svc.ProcessTurn(c.Request.Context(), req)
	c.JSON(http.StatusOK, resp)
}
