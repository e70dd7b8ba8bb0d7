package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	v1 "github.com/zhahittya/encrypto-backend/cmd/api/router/v1"
	cacheadapter "github.com/zhahittya/encrypto-backend/internal/infrastructure/cache/adapter"
	"github.com/zhahittya/encrypto-backend/internal/infrastructure/database"
	mailadapter "github.com/zhahittya/encrypto-backend/internal/infrastructure/mail/adapter"
	queueadapter "github.com/zhahittya/encrypto-backend/internal/infrastructure/queue/adapter"
	"github.com/zhahittya/encrypto-backend/internal/infrastructure/realtime"
	"github.com/zhahittya/encrypto-backend/internal/pkg/verification/application/task"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg(".env file not found or could not be loaded")
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	logger := log.With().Str("service", "encrypto-api").Logger()
	if os.Getenv("GIN_MODE") == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to the database on startup and apply pending migrations
	connectCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	pool, err := database.NewPoolFromEnv(connectCtx)
	cancel()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	if err := database.RunMigrations(ctx, pool); err != nil {
		logger.Fatal().Err(err).Msg("failed to run database migrations")
	}

	cache, err := cacheadapter.NewRedisAdapter()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer cache.Close()

	queueClient, err := queueadapter.NewAsynqClientFromEnv()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create queue client")
	}
	defer queueClient.Close()

	// Background worker for verification email delivery
	queueServer, err := queueadapter.NewAsynqServer()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create queue server")
	}
	mailer, err := mailadapter.NewSMTPMailerFromEnv()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to configure mailer")
	}
	queueServer.Register(task.TypeVerificationEmail, task.NewVerificationEmailHandler(mailer, logger))
	go func() {
		if err := queueServer.Run(ctx); err != nil {
			logger.Error().Err(err).Msg("queue server stopped")
		}
	}()

	// Realtime presence and message routing shared by the socket and HTTP layers
	presence := realtime.NewPresence()
	router := realtime.NewRouter(presence, logger)

	r := gin.Default()
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})
	v1.RegisterRoutes(r, pool, cache, queueClient, presence, router, logger)

	addr := ":" + os.Getenv("PORT")
	if addr == ":" {
		addr = ":8080"
	}
	srv := &http.Server{Addr: addr, Handler: r}

	go func() {
		logger.Info().Str("addr", addr).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("http server shutdown failed")
	}
	if err := queueServer.Stop(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("queue server shutdown failed")
	}
}
