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

// SignupController creates an account (one controller per endpoint)
type SignupController struct {
	UC *usecase.SignupUseCase
}

func NewSignupController(pool *pgxpool.Pool) *SignupController {
	repo := adapter.NewPgUserRepository(pool)
	return &SignupController{UC: usecase.NewSignupUseCase(repo)}
}

func (h *SignupController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Email     string `json:"email" binding:"required"`
			UserName  string `json:"user_name" binding:"required"`
			FirstName string `json:"first_name"`
			LastName  string `json:"last_name"`
			Password  string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		u, err := h.UC.Execute(ctx, usecase.SignupInput{
			Email:     body.Email,
			UserName:  body.UserName,
			FirstName: body.FirstName,
			LastName:  body.LastName,
			Password:  body.Password,
		})
		if err != nil {
			status := http.StatusBadRequest
			switch {
			case errors.Is(err, usecase.ErrPersistence):
				status = http.StatusInternalServerError
			case errors.Is(err, user.ErrEmailTaken), errors.Is(err, user.ErrUserNameTaken):
				status = http.StatusConflict
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"user": publicUser(u)})
	}
}
