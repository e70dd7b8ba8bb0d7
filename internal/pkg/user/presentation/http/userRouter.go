package http

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zhahittya/encrypto-backend/internal/pkg/user/presentation/controller"
)

// RegisterRoutes registers account and profile endpoints under the given router group.
func RegisterRoutes(g *gin.RouterGroup, pool *pgxpool.Pool) {
	signupCtl := controller.NewSignupController(pool)
	loginCtl := controller.NewLoginController(pool)
	changePwCtl := controller.NewChangePasswordController(pool)
	getUserCtl := controller.NewGetUserController(pool)
	updateUserCtl := controller.NewUpdateUserController(pool)
	searchCtl := controller.NewSearchUsersController(pool)
	uploadAvatarCtl := controller.NewUploadAvatarController(pool)
	getAvatarCtl := controller.NewGetAvatarController(pool)

	// POST /api/v1/auth/signup -> create an account (email verified beforehand)
	g.POST("/auth/signup", signupCtl.Handle())

	// POST /api/v1/auth/login -> authenticate by email or username
	g.POST("/auth/login", loginCtl.Handle())

	// POST /api/v1/auth/change-password -> forgot-password completion
	g.POST("/auth/change-password", changePwCtl.Handle())

	// GET /api/v1/users?search= -> prefix search for usernames and full names
	g.GET("/users", searchCtl.Handle())

	// GET /api/v1/users/:userId -> public profile
	g.GET("/users/:userId", getUserCtl.Handle())

	// PUT /api/v1/users/:userId -> edit profile fields
	g.PUT("/users/:userId", updateUserCtl.Handle())

	// POST /api/v1/users/:userId/avatar -> multipart avatar upload
	g.POST("/users/:userId/avatar", uploadAvatarCtl.Handle())

	// GET /api/v1/users/:userId/avatar -> avatar bytes with stored content type
	g.GET("/users/:userId/avatar", getAvatarCtl.Handle())
}
