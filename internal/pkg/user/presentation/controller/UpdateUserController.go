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

// UpdateUserController edits profile fields (one controller per endpoint)
type UpdateUserController struct {
	UC *usecase.UpdateProfileUseCase
}

func NewUpdateUserController(pool *pgxpool.Pool) *UpdateUserController {
	repo := adapter.NewPgUserRepository(pool)
	return &UpdateUserController{UC: usecase.NewUpdateProfileUseCase(repo)}
}

func (h *UpdateUserController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userId")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
			return
		}

		var body struct {
			FirstName string `json:"first_name"`
			LastName  string `json:"last_name"`
			UserName  string `json:"user_name" binding:"required"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		err := h.UC.Execute(ctx, usecase.UpdateProfileInput{
			UserID:    userID,
			FirstName: body.FirstName,
			LastName:  body.LastName,
			UserName:  body.UserName,
		})
		if err != nil {
			status := http.StatusBadRequest
			switch {
			case errors.Is(err, usecase.ErrPersistence):
				status = http.StatusInternalServerError
			case errors.Is(err, user.ErrUserNotFound):
				status = http.StatusNotFound
			case errors.Is(err, user.ErrUserNameTaken):
				status = http.StatusConflict
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "profile updated"})
	}
}
