package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	cacheport "github.com/zhahittya/encrypto-backend/internal/infrastructure/cache/port"
	verification "github.com/zhahittya/encrypto-backend/internal/pkg/verification/application/domain"
	"github.com/zhahittya/encrypto-backend/internal/pkg/verification/application/usecase"
)

// VerifyCodeController checks and consumes a verification code for a fixed
// purpose (one controller per endpoint)
type VerifyCodeController struct {
	UC      *usecase.VerifyCodeUseCase
	Purpose verification.Purpose
}

func NewVerifyCodeController(cache cacheport.Cache, purpose verification.Purpose) *VerifyCodeController {
	return &VerifyCodeController{
		UC:      usecase.NewVerifyCodeUseCase(cache),
		Purpose: purpose,
	}
}

func (h *VerifyCodeController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Email string `json:"email" binding:"required"`
			Code  string `json:"code" binding:"required"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		err := h.UC.Execute(ctx, usecase.VerifyCodeInput{Email: body.Email, Code: body.Code, Purpose: h.Purpose})
		if err != nil {
			status := http.StatusBadRequest
			switch {
			case errors.Is(err, usecase.ErrInfrastructure):
				status = http.StatusInternalServerError
			case errors.Is(err, verification.ErrWrongCode):
				status = http.StatusUnauthorized
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "verified"})
	}
}
