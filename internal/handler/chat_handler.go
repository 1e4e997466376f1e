package handler

import (
	"errors"
	"net/http"

	"github.com/campuslink/campuslink-backend/internal/middleware"
	"github.com/campuslink/campuslink-backend/internal/response"
	"github.com/campuslink/campuslink-backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ChatHandler handles the REST side of class chats; live messaging goes
// through the WebSocket handler.
type ChatHandler struct {
	chatService *service.ChatService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// Mine godoc
// GET /api/v1/chats
// Returns the chats the caller is a member of.
func (h *ChatHandler) Mine(c *gin.Context) {
	claims := middleware.GetClaims(c)

	chats, err := h.chatService.ListMyChats(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"chats": chats})
}

// History godoc
// GET /api/v1/chats/:id/messages
// Returns recent messages of a chat, newest first. Members only.
func (h *ChatHandler) History(c *gin.Context) {
	claims := middleware.GetClaims(c)

	chatID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	messages, err := h.chatService.History(c.Request.Context(), chatID, claims.UserID)
	if err != nil {
		if errors.Is(err, service.ErrNotChatMember) {
			response.Fail(c, http.StatusForbidden, response.ErrNotChatMember)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"messages": messages})
}
