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

// CreateChatController handles the chat creation endpoint
// One controller per endpoint
type CreateChatController struct {
	UC     *usecase.CreateChatUseCase
	Router *realtime.Router
}

func NewCreateChatController(pool *pgxpool.Pool, router *realtime.Router) *CreateChatController {
	repo := adapter.NewPgChatRepository(pool)
	return &CreateChatController{
		UC:     usecase.NewCreateChatUseCase(repo),
		Router: router,
	}
}

type createChatRequest struct {
	User1ID string `json:"user1_id" binding:"required"`
	User2ID string `json:"user2_id" binding:"required"`
}

func (h *CreateChatController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		created, err := h.UC.Execute(ctx, usecase.CreateChatInput{User1ID: req.User1ID, User2ID: req.User2ID})
		if err != nil {
			status := http.StatusBadRequest
			switch {
			case errors.Is(err, usecase.ErrPersistence):
				status = http.StatusInternalServerError
			case errors.Is(err, chat.ErrChatExists):
				status = http.StatusConflict
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		// Push the new-chat notice to the other participant; user1 is the
		// creator so only user2 needs the live copy.
		if other, ok := created.Other(req.User1ID); ok {
			h.Router.NotifyNewChat(other, realtime.ChatNotice{
				ChatID:         created.ID,
				ParticipantIDs: created.ParticipantIDs(),
			})
		}

		c.JSON(http.StatusCreated, gin.H{
			"id":              created.ID,
			"created_at":      created.CreatedAt,
			"participant_ids": created.ParticipantIDs(),
		})
	}
}
