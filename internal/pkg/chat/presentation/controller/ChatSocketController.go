package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/zhahittya/encrypto-backend/internal/infrastructure/realtime"
	chat "github.com/zhahittya/encrypto-backend/internal/pkg/chat/application/domain"
	"github.com/zhahittya/encrypto-backend/internal/pkg/chat/application/usecase"
	repository "github.com/zhahittya/encrypto-backend/internal/pkg/chat/persistence/repository/port"
)

// ChatSocketController drives the realtime endpoint: each websocket gets a
// fresh connection id, stays anonymous until the client announces its user id
// with a register frame, and is cleaned out of presence on disconnect.
type ChatSocketController struct {
	presence        *realtime.Presence
	router          *realtime.Router
	sendMessageUC   *usecase.SendMessageUseCase
	logger          zerolog.Logger
	inflightTimeout time.Duration
}

func NewChatSocketController(repo repository.ChatRepository, presence *realtime.Presence, router *realtime.Router, logger zerolog.Logger) *ChatSocketController {
	return &ChatSocketController{
		presence:        presence,
		router:          router,
		sendMessageUC:   usecase.NewSendMessageUseCase(repo),
		logger:          logger.With().Str("component", "ChatSocketController").Logger(),
		inflightTimeout: 5 * time.Second,
	}
}

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins for now; plug a proper checker when auth is added.
		return true
	},
}

type inboundFrame struct {
	Type   string `json:"type"`
	UserID string `json:"user_id,omitempty"`
	ChatID string `json:"chat_id,omitempty"`
	Body   string `json:"body,omitempty"`
}

const defaultReadTimeout = 60 * time.Second

// Handle upgrades HTTP connections to websocket and processes frames until the
// client disconnects.
func (ctl *ChatSocketController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		ws, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			// Upgrade already wrote the response; nothing else to do.
			return
		}

		conn := realtime.NewConnection(ws)
		conn.Start()
		defer func() {
			if userID, ok := ctl.presence.Unregister(conn.ID()); ok {
				ctl.logger.Info().Str("user", userID).Str("connection", conn.ID()).Msg("user disconnected")
			}
			conn.Close(websocket.CloseNormalClosure, "session closed")
		}()

		ws.SetReadLimit(1 << 20) // 1MB payload cap
		_ = ws.SetReadDeadline(time.Now().Add(defaultReadTimeout))
		ws.SetPongHandler(func(string) error {
			return ws.SetReadDeadline(time.Now().Add(defaultReadTimeout))
		})

		ctl.push(conn, "connected", gin.H{"connection_id": conn.ID()})

		var registeredAs string
		for {
			_, data, err := ws.ReadMessage()
			if err != nil {
				if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived) ||
					errors.Is(err, websocket.ErrCloseSent) {
					return
				}
				return
			}

			var frame inboundFrame
			if err := json.Unmarshal(data, &frame); err != nil {
				ctl.replyError(conn, "bad_request", "invalid payload")
				continue
			}

			switch frame.Type {
			case "register":
				registeredAs = ctl.handleRegister(conn, frame, registeredAs)
			case "send-message":
				ctl.handleSendMessage(c, conn, registeredAs, frame)
			default:
				ctl.replyError(conn, "unsupported_type", "unknown frame type")
			}
		}
	}
}

// handleRegister binds the announced identity to this connection. Announcing
// again is allowed and simply re-runs the last-wins overwrite.
func (ctl *ChatSocketController) handleRegister(conn *realtime.Connection, frame inboundFrame, current string) string {
	if frame.UserID == "" {
		ctl.logger.Warn().Str("connection", conn.ID()).Msg("register frame without user_id rejected")
		ctl.replyError(conn, "bad_request", "user_id is required")
		return current
	}

	ctl.presence.Register(frame.UserID, conn)
	ctl.logger.Info().Str("user", frame.UserID).Str("connection", conn.ID()).Msg("user registered")
	ctl.push(conn, "registered", gin.H{"user_id": frame.UserID})
	return frame.UserID
}

func (ctl *ChatSocketController) handleSendMessage(c *gin.Context, conn *realtime.Connection, senderID string, frame inboundFrame) {
	if senderID == "" {
		ctl.replyError(conn, "unregistered", "announce your user_id with a register frame first")
		return
	}
	if frame.ChatID == "" {
		ctl.replyError(conn, "bad_request", "chat_id is required")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), ctl.inflightTimeout)
	defer cancel()

	res, err := ctl.sendMessageUC.Execute(ctx, usecase.SendMessageInput{
		ChatID:   frame.ChatID,
		SenderID: senderID,
		Body:     frame.Body,
	})
	if err != nil {
		ctl.handleUseCaseError(conn, err)
		return
	}

	delivered := ctl.router.NotifyNewMessage(res.RecipientID, realtime.MessageNotice{
		ChatID:   res.Message.ChatID,
		SenderID: res.Message.SenderID,
		Body:     res.Message.Body,
	})

	ctl.push(conn, "message-sent", gin.H{
		"message_id": res.Message.ID,
		"chat_id":    res.Message.ChatID,
		"delivered":  delivered,
	})
}

func (ctl *ChatSocketController) handleUseCaseError(conn *realtime.Connection, err error) {
	switch {
	case errors.Is(err, usecase.ErrPersistence):
		ctl.replyError(conn, "internal_error", "unexpected persistence error")
	case errors.Is(err, chat.ErrChatNotFound):
		ctl.replyError(conn, "not_found", "chat does not exist")
	case errors.Is(err, chat.ErrNotParticipant):
		ctl.replyError(conn, "forbidden", "sender is not a participant in this chat")
	default:
		ctl.replyError(conn, "bad_request", err.Error())
	}
}

func (ctl *ChatSocketController) replyError(conn *realtime.Connection, code string, message string) {
	ctl.push(conn, "error", gin.H{"code": code, "error": message})
}

func (ctl *ChatSocketController) push(conn *realtime.Connection, event string, data gin.H) {
	payload, err := json.Marshal(gin.H{"event": event, "data": data})
	if err != nil {
		return
	}
	_ = conn.Send(payload)
}
