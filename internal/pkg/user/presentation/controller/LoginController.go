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

// LoginController authenticates by email or username (one controller per endpoint)
type LoginController struct {
	UC *usecase.LoginUseCase
}

func NewLoginController(pool *pgxpool.Pool) *LoginController {
	repo := adapter.NewPgUserRepository(pool)
	return &LoginController{UC: usecase.NewLoginUseCase(repo)}
}

func (h *LoginController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Login    string `json:"login" binding:"required"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		u, err := h.UC.Execute(ctx, usecase.LoginInput{Login: body.Login, Password: body.Password})
		if err != nil {
			status := http.StatusBadRequest
			switch {
			case errors.Is(err, usecase.ErrPersistence):
				status = http.StatusInternalServerError
			case errors.Is(err, user.ErrInvalidCredentials):
				status = http.StatusUnauthorized
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": publicUser(u)})
	}
}
