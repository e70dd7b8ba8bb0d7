package repository

import (
	"context"

	chat "github.com/zhahittya/encrypto-backend/internal/pkg/chat/application/domain"
)

// ChatRepository defines persistence operations for the chat domain.
// Lookup methods return (nil, nil) when nothing matches; a non-nil error
// always means an infrastructure failure.
type ChatRepository interface {
	CreateChat(ctx context.Context, c chat.Chat) (string, error)
	GetChat(ctx context.Context, chatID string) (*chat.Chat, error)
	FindChatByParticipants(ctx context.Context, userA string, userB string) (*chat.Chat, error)
	ListChatsByUser(ctx context.Context, userID string) ([]chat.Chat, error)
	SaveMessage(ctx context.Context, m chat.Message) (string, error)
	GetMessagesByChat(ctx context.Context, chatID string, limit int, offset int) ([]chat.Message, error)
	GetLastMessage(ctx context.Context, chatID string) (*chat.Message, error)
}
