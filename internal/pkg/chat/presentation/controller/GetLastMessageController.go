package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zhahittya/encrypto-backend/internal/pkg/chat/application/usecase"
	"github.com/zhahittya/encrypto-backend/internal/pkg/chat/persistence/repository/adapter"
)

// GetLastMessageController returns the newest message of a chat (one controller per endpoint)
type GetLastMessageController struct {
	UC *usecase.GetLastMessageUseCase
}

func NewGetLastMessageController(pool *pgxpool.Pool) *GetLastMessageController {
	repo := adapter.NewPgChatRepository(pool)
	return &GetLastMessageController{UC: usecase.NewGetLastMessageUseCase(repo)}
}

func (h *GetLastMessageController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		chatID := c.Param("chatId")
		if chatID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "chatId is required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		msg, err := h.UC.Execute(ctx, usecase.GetLastMessageInput{ChatID: chatID})
		if err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, usecase.ErrPersistence) {
				status = http.StatusInternalServerError
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		if msg == nil {
			c.JSON(http.StatusOK, gin.H{"last_message": nil})
			return
		}

		c.JSON(http.StatusOK, gin.H{"last_message": gin.H{
			"id":         msg.ID,
			"chat_id":    msg.ChatID,
			"sender_id":  msg.SenderID,
			"body":       msg.Body,
			"created_at": msg.CreatedAt,
		}})
	}
}
