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

// ChangePasswordController completes the forgot-password flow (one controller per endpoint)
type ChangePasswordController struct {
	UC *usecase.ChangePasswordUseCase
}

func NewChangePasswordController(pool *pgxpool.Pool) *ChangePasswordController {
	repo := adapter.NewPgUserRepository(pool)
	return &ChangePasswordController{UC: usecase.NewChangePasswordUseCase(repo)}
}

func (h *ChangePasswordController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Email       string `json:"email" binding:"required"`
			NewPassword string `json:"new_password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		err := h.UC.Execute(ctx, usecase.ChangePasswordInput{Email: body.Email, NewPassword: body.NewPassword})
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

		c.JSON(http.StatusOK, gin.H{"status": "password changed"})
	}
}
