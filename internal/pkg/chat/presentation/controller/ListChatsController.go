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

// ListChatsController lists all chats a user participates in (one controller per endpoint)
type ListChatsController struct {
	UC *usecase.ListChatsUseCase
}

func NewListChatsController(pool *pgxpool.Pool) *ListChatsController {
	repo := adapter.NewPgChatRepository(pool)
	return &ListChatsController{UC: usecase.NewListChatsUseCase(repo)}
}

func (h *ListChatsController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Query("user_id")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		chats, err := h.UC.Execute(ctx, usecase.ListChatsInput{UserID: userID})
		if err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, usecase.ErrPersistence) {
				status = http.StatusInternalServerError
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		out := make([]gin.H, 0, len(chats))
		for _, ch := range chats {
			out = append(out, gin.H{
				"id":              ch.ID,
				"created_at":      ch.CreatedAt,
				"participant_ids": ch.ParticipantIDs(),
			})
		}

		c.JSON(http.StatusOK, gin.H{"chats": out, "count": len(out)})
	}
}
