package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	chat "github.com/zhahittya/encrypto-backend/internal/pkg/chat/application/domain"
	"github.com/zhahittya/encrypto-backend/internal/pkg/chat/application/usecase"
	"github.com/zhahittya/encrypto-backend/internal/pkg/chat/persistence/repository/adapter"
)

// FindChatController resolves the 1:1 chat for a participant pair (one controller per endpoint)
type FindChatController struct {
	UC *usecase.FindChatUseCase
}

func NewFindChatController(pool *pgxpool.Pool) *FindChatController {
	repo := adapter.NewPgChatRepository(pool)
	return &FindChatController{UC: usecase.NewFindChatUseCase(repo)}
}

type findChatRequest struct {
	User1ID string `json:"user1_id" binding:"required"`
	User2ID string `json:"user2_id" binding:"required"`
}

func (h *FindChatController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req findChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		found, err := h.UC.Execute(ctx, usecase.FindChatInput{User1ID: req.User1ID, User2ID: req.User2ID})
		if err != nil {
			status := http.StatusBadRequest
			switch {
			case errors.Is(err, usecase.ErrPersistence):
				status = http.StatusInternalServerError
			case errors.Is(err, chat.ErrChatNotFound):
				status = http.StatusNotFound
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"id":              found.ID,
			"created_at":      found.CreatedAt,
			"participant_ids": found.ParticipantIDs(),
		})
	}
}
