package http

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/zhahittya/encrypto-backend/internal/infrastructure/realtime"
	"github.com/zhahittya/encrypto-backend/internal/pkg/chat/persistence/repository/adapter"
	"github.com/zhahittya/encrypto-backend/internal/pkg/chat/presentation/controller"
)

// RegisterRoutes registers chat-related HTTP endpoints under the given router group.
// It constructs per-endpoint controllers and binds them directly to routes.
func RegisterRoutes(g *gin.RouterGroup, pool *pgxpool.Pool, presence *realtime.Presence, router *realtime.Router, logger zerolog.Logger) {
	createCtl := controller.NewCreateChatController(pool, router)
	findCtl := controller.NewFindChatController(pool)
	listCtl := controller.NewListChatsController(pool)
	sendMsgCtl := controller.NewSendMessageController(pool, router)
	getMsgCtl := controller.NewGetMessagesController(pool)
	lastMsgCtl := controller.NewGetLastMessageController(pool)
	socketCtl := controller.NewChatSocketController(adapter.NewPgChatRepository(pool), presence, router, logger)

	// POST /api/v1/chats -> create a chat (pushes new-chat to the other participant)
	g.POST("/chats", createCtl.Handle())

	// POST /api/v1/chats/find -> resolve the chat for a participant pair
	g.POST("/chats/find", findCtl.Handle())

	// GET /api/v1/chats?user_id= -> list a user's chats
	g.GET("/chats", listCtl.Handle())

	// POST /api/v1/chats/:chatId/messages -> persist a message, push receive-message
	g.POST("/chats/:chatId/messages", sendMsgCtl.Handle())

	// GET /api/v1/chats/:chatId/messages -> fetch message history
	g.GET("/chats/:chatId/messages", getMsgCtl.Handle())

	// GET /api/v1/chats/:chatId/messages/last -> chat list preview
	g.GET("/chats/:chatId/messages/last", lastMsgCtl.Handle())

	// GET /api/v1/ws -> realtime endpoint
	g.GET("/ws", socketCtl.Handle())
}
