package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	user "github.com/zhahittya/encrypto-backend/internal/pkg/user/application/domain"
	"github.com/zhahittya/encrypto-backend/internal/pkg/user/application/usecase"
	"github.com/zhahittya/encrypto-backend/internal/pkg/user/persistence/repository/adapter"
)

// GetAvatarController serves the stored profile picture bytes
// (one controller per endpoint)
type GetAvatarController struct {
	UC *usecase.GetAvatarUseCase
}

func NewGetAvatarController(pool *pgxpool.Pool) *GetAvatarController {
	repo := adapter.NewPgUserRepository(pool)
	return &GetAvatarController{UC: usecase.NewGetAvatarUseCase(repo)}
}

func (h *GetAvatarController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userId")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		a, err := h.UC.Execute(ctx, usecase.GetAvatarInput{UserID: userID})
		if err != nil {
			status := http.StatusBadRequest
			switch {
			case errors.Is(err, usecase.ErrPersistence):
				status = http.StatusInternalServerError
			case errors.Is(err, user.ErrUserNotFound):
				status = http.StatusNotFound
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		c.Data(http.StatusOK, a.ContentType, a.Data)
	}
}
