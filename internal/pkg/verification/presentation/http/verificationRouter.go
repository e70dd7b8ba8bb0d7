package http

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	cacheport "github.com/zhahittya/encrypto-backend/internal/infrastructure/cache/port"
	queueport "github.com/zhahittya/encrypto-backend/internal/infrastructure/queue/port"
	"github.com/zhahittya/encrypto-backend/internal/pkg/user/persistence/repository/adapter"
	verification "github.com/zhahittya/encrypto-backend/internal/pkg/verification/application/domain"
	"github.com/zhahittya/encrypto-backend/internal/pkg/verification/presentation/controller"
)

// RegisterRoutes registers the email verification endpoints under the given
// router group. Signup and forgot-password flows share the use cases but get
// distinct routes and cache keyspaces.
func RegisterRoutes(g *gin.RouterGroup, pool *pgxpool.Pool, cache cacheport.Cache, queue queueport.Client) {
	users := adapter.NewPgUserRepository(pool)

	sendSignupCtl := controller.NewSendCodeController(cache, queue, users, verification.PurposeSignup)
	verifySignupCtl := controller.NewVerifyCodeController(cache, verification.PurposeSignup)
	sendForgotCtl := controller.NewSendCodeController(cache, queue, users, verification.PurposeForgot)
	verifyForgotCtl := controller.NewVerifyCodeController(cache, verification.PurposeForgot)

	// POST /api/v1/auth/send-code -> issue a signup verification code
	g.POST("/auth/send-code", sendSignupCtl.Handle())

	// POST /api/v1/auth/verify-code -> check and consume a signup code
	g.POST("/auth/verify-code", verifySignupCtl.Handle())

	// POST /api/v1/auth/forgot/send-code -> issue a reset code to an existing account
	g.POST("/auth/forgot/send-code", sendForgotCtl.Handle())

	// POST /api/v1/auth/forgot/verify-code -> check and consume a reset code
	g.POST("/auth/forgot/verify-code", verifyForgotCtl.Handle())
}
