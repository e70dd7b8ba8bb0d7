package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	cacheport "github.com/zhahittya/encrypto-backend/internal/infrastructure/cache/port"
	qport "github.com/zhahittya/encrypto-backend/internal/infrastructure/queue/port"
	"github.com/zhahittya/encrypto-backend/internal/infrastructure/realtime"
	chatHTTP "github.com/zhahittya/encrypto-backend/internal/pkg/chat/presentation/http"
	userHTTP "github.com/zhahittya/encrypto-backend/internal/pkg/user/presentation/http"
	verificationHTTP "github.com/zhahittya/encrypto-backend/internal/pkg/verification/presentation/http"
)

// RegisterRoutes mounts all version 1 API routes under /api/v1
func RegisterRoutes(r *gin.Engine, pool *pgxpool.Pool, cache cacheport.Cache, queue qport.Client, presence *realtime.Presence, router *realtime.Router, logger zerolog.Logger) {
	v1 := r.Group("/api/v1")
	// Pass the shared infrastructure down to each package's HTTP layer
	userHTTP.RegisterRoutes(v1, pool)
	verificationHTTP.RegisterRoutes(v1, pool, cache, queue)
	chatHTTP.RegisterRoutes(v1, pool, presence, router, logger)
}
