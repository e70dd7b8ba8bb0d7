package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zhahittya/encrypto-backend/internal/infrastructure/realtime"
	chat "github.com/zhahittya/encrypto-backend/internal/pkg/chat/application/domain"
	"github.com/zhahittya/encrypto-backend/internal/pkg/chat/application/usecase"
	"github.com/zhahittya/encrypto-backend/internal/pkg/chat/persistence/repository/adapter"
)

// SendMessageController handles the send-message endpoint only (one controller per endpoint).
// The message is persisted first; the live push to the recipient is best-effort
// and does not influence the HTTP outcome.
type SendMessageController struct {
	UC     *usecase.SendMessageUseCase
	Router *realtime.Router
}

func NewSendMessageController(pool *pgxpool.Pool, router *realtime.Router) *SendMessageController {
	repo := adapter.NewPgChatRepository(pool)
	return &SendMessageController{
		UC:     usecase.NewSendMessageUseCase(repo),
		Router: router,
	}
}

// sendMessageRequest is the DTO for the HTTP request body
type sendMessageRequest struct {
	SenderID string `json:"sender_id" binding:"required"`
	Body     string `json:"body" binding:"required"`
}

func (h *SendMessageController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		chatID := c.Param("chatId")
		if chatID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "chatId is required"})
			return
		}

		var req sendMessageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		res, err := h.UC.Execute(ctx, usecase.SendMessageInput{
			ChatID:   chatID,
			SenderID: req.SenderID,
			Body:     req.Body,
		})
		if err != nil {
			status := http.StatusBadRequest
			switch {
			case errors.Is(err, usecase.ErrPersistence):
				status = http.StatusInternalServerError
			case errors.Is(err, chat.ErrChatNotFound):
				status = http.StatusNotFound
			case errors.Is(err, chat.ErrNotParticipant):
				status = http.StatusForbidden
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		delivered := h.Router.NotifyNewMessage(res.RecipientID, realtime.MessageNotice{
			ChatID:   res.Message.ChatID,
			SenderID: res.Message.SenderID,
			Body:     res.Message.Body,
		})

		c.JSON(http.StatusCreated, gin.H{
			"id":         res.Message.ID,
			"chat_id":    res.Message.ChatID,
			"sender_id":  res.Message.SenderID,
			"body":       res.Message.Body,
			"created_at": res.Message.CreatedAt,
			"delivered":  delivered,
		})
	}
}
