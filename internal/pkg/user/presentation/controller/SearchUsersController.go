package controller

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zhahittya/encrypto-backend/internal/pkg/user/application/usecase"
	"github.com/zhahittya/encrypto-backend/internal/pkg/user/persistence/repository/adapter"
)

// SearchUsersController prefix-searches usernames and full names (one controller per endpoint)
type SearchUsersController struct {
	UC *usecase.SearchUsersUseCase
}

func NewSearchUsersController(pool *pgxpool.Pool) *SearchUsersController {
	repo := adapter.NewPgUserRepository(pool)
	return &SearchUsersController{UC: usecase.NewSearchUsersUseCase(repo)}
}

func (h *SearchUsersController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		prefix := c.Query("search")
		if prefix == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "search query is required"})
			return
		}
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		users, err := h.UC.Execute(ctx, usecase.SearchUsersInput{Prefix: prefix, Limit: limit})
		if err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, usecase.ErrPersistence) {
				status = http.StatusInternalServerError
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		out := make([]gin.H, 0, len(users))
		for i := range users {
			out = append(out, publicUser(&users[i]))
		}
		c.JSON(http.StatusOK, gin.H{"users": out})
	}
}
