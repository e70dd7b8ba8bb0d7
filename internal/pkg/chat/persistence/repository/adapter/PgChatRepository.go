package adapter

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	chat "github.com/zhahittya/encrypto-backend/internal/pkg/chat/application/domain"
)

type PgChatRepository struct {
	pool *pgxpool.Pool
}

func NewPgChatRepository(pool *pgxpool.Pool) *PgChatRepository {
	return &PgChatRepository{pool: pool}
}

func (r *PgChatRepository) CreateChat(ctx context.Context, c chat.Chat) (string, error) {
	if r == nil || r.pool == nil {
		return "", errors.New("PgChatRepository: nil pool")
	}
	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO chats (user_a, user_b)
		VALUES ($1::uuid, $2::uuid)
		RETURNING id::text
	`, c.UserA, c.UserB).Scan(&id)
	return id, err
}

func (r *PgChatRepository) GetChat(ctx context.Context, chatID string) (*chat.Chat, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgChatRepository: nil pool")
	}
	var c chat.Chat
	err := r.pool.QueryRow(ctx, `
		SELECT id::text, created_at, user_a::text, user_b::text
		FROM chats
		WHERE id = $1::uuid
	`, chatID).Scan(&c.ID, &c.CreatedAt, &c.UserA, &c.UserB)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PgChatRepository) FindChatByParticipants(ctx context.Context, userA string, userB string) (*chat.Chat, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgChatRepository: nil pool")
	}
	var c chat.Chat
	err := r.pool.QueryRow(ctx, `
		SELECT id::text, created_at, user_a::text, user_b::text
		FROM chats
		WHERE user_a = $1::uuid AND user_b = $2::uuid
	`, userA, userB).Scan(&c.ID, &c.CreatedAt, &c.UserA, &c.UserB)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PgChatRepository) ListChatsByUser(ctx context.Context, userID string) ([]chat.Chat, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgChatRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, created_at, user_a::text, user_b::text
		FROM chats
		WHERE user_a = $1::uuid OR user_b = $1::uuid
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chats []chat.Chat
	for rows.Next() {
		var c chat.Chat
		if err := rows.Scan(&c.ID, &c.CreatedAt, &c.UserA, &c.UserB); err != nil {
			return nil, err
		}
		chats = append(chats, c)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return chats, nil
}

func (r *PgChatRepository) SaveMessage(ctx context.Context, m chat.Message) (string, error) {
	if r == nil || r.pool == nil {
		return "", errors.New("PgChatRepository: nil pool")
	}
	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO messages (chat_id, sender_id, body, created_at)
		VALUES ($1::uuid, $2::uuid, $3, $4)
		RETURNING id::text
	`, m.ChatID, m.SenderID, m.Body, m.CreatedAt).Scan(&id)
	return id, err
}

func (r *PgChatRepository) GetMessagesByChat(ctx context.Context, chatID string, limit int, offset int) ([]chat.Message, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgChatRepository: nil pool")
	}
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, chat_id::text, sender_id::text, body, created_at
		FROM messages
		WHERE chat_id = $1::uuid
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, chatID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []chat.Message
	for rows.Next() {
		var m chat.Message
		if err := rows.Scan(&m.ID, &m.ChatID, &m.SenderID, &m.Body, &m.CreatedAt); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return msgs, nil
}

func (r *PgChatRepository) GetLastMessage(ctx context.Context, chatID string) (*chat.Message, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgChatRepository: nil pool")
	}
	var m chat.Message
	err := r.pool.QueryRow(ctx, `
		SELECT id::text, chat_id::text, sender_id::text, body, created_at
		FROM messages
		WHERE chat_id = $1::uuid
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`, chatID).Scan(&m.ID, &m.ChatID, &m.SenderID, &m.Body, &m.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}
