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

// publicUser shapes an account for API responses, without the password hash.
func publicUser(u *user.User) gin.H {
	return gin.H{
		"id":         u.ID,
		"email":      u.Email,
		"user_name":  u.UserName,
		"first_name": u.FirstName,
		"last_name":  u.LastName,
		"created_at": u.CreatedAt,
	}
}

// GetUserController fetches a profile by id (one controller per endpoint)
type GetUserController struct {
	UC *usecase.GetUserUseCase
}

func NewGetUserController(pool *pgxpool.Pool) *GetUserController {
	repo := adapter.NewPgUserRepository(pool)
	return &GetUserController{UC: usecase.NewGetUserUseCase(repo)}
}

func (h *GetUserController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userId")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		u, err := h.UC.Execute(ctx, usecase.GetUserInput{UserID: userID})
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

		c.JSON(http.StatusOK, gin.H{"user": publicUser(u)})
	}
}
