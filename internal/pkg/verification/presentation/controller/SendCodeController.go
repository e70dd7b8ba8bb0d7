package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	cacheport "github.com/zhahittya/encrypto-backend/internal/infrastructure/cache/port"
	queueport "github.com/zhahittya/encrypto-backend/internal/infrastructure/queue/port"
	verification "github.com/zhahittya/encrypto-backend/internal/pkg/verification/application/domain"
	"github.com/zhahittya/encrypto-backend/internal/pkg/verification/application/usecase"
	userrepo "github.com/zhahittya/encrypto-backend/internal/pkg/user/persistence/repository/port"
)

// SendCodeController issues a verification code for a fixed purpose
// (one controller per endpoint; signup and forgot get separate instances)
type SendCodeController struct {
	UC      *usecase.SendCodeUseCase
	Purpose verification.Purpose
}

func NewSendCodeController(cache cacheport.Cache, queue queueport.Client, users userrepo.UserRepository, purpose verification.Purpose) *SendCodeController {
	return &SendCodeController{
		UC:      usecase.NewSendCodeUseCase(cache, queue, users),
		Purpose: purpose,
	}
}

func (h *SendCodeController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Email string `json:"email" binding:"required"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		err := h.UC.Execute(ctx, usecase.SendCodeInput{Email: body.Email, Purpose: h.Purpose})
		if err != nil {
			status := http.StatusBadRequest
			switch {
			case errors.Is(err, usecase.ErrInfrastructure):
				status = http.StatusInternalServerError
			case errors.Is(err, verification.ErrUnknownEmail):
				status = http.StatusNotFound
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "code sent"})
	}
}
