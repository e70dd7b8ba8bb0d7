package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chat "github.com/zhahittya/encrypto-backend/internal/pkg/chat/application/domain"
)

// stubChatRepository backs the use cases with in-memory state.
type stubChatRepository struct {
	chats    map[string]chat.Chat // keyed by id
	messages []chat.Message
	nextID   int
	err      error
}

func newStubChatRepository() *stubChatRepository {
	return &stubChatRepository{chats: make(map[string]chat.Chat)}
}

func (s *stubChatRepository) CreateChat(ctx context.Context, c chat.Chat) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.nextID++
	c.ID = fmt.Sprintf("chat-%d", s.nextID)
	s.chats[c.ID] = c
	return c.ID, nil
}

func (s *stubChatRepository) GetChat(ctx context.Context, chatID string) (*chat.Chat, error) {
	if s.err != nil {
		return nil, s.err
	}
	c, ok := s.chats[chatID]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (s *stubChatRepository) FindChatByParticipants(ctx context.Context, userA, userB string) (*chat.Chat, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, c := range s.chats {
		if c.UserA == userA && c.UserB == userB {
			c := c
			return &c, nil
		}
	}
	return nil, nil
}

func (s *stubChatRepository) ListChatsByUser(ctx context.Context, userID string) ([]chat.Chat, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []chat.Chat
	for _, c := range s.chats {
		if c.HasParticipant(userID) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *stubChatRepository) SaveMessage(ctx context.Context, m chat.Message) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	m.ID = "msg-1"
	s.messages = append(s.messages, m)
	return m.ID, nil
}

func (s *stubChatRepository) GetMessagesByChat(ctx context.Context, chatID string, limit, offset int) ([]chat.Message, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []chat.Message
	for _, m := range s.messages {
		if m.ChatID == chatID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *stubChatRepository) GetLastMessage(ctx context.Context, chatID string) (*chat.Message, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i := len(s.messages) - 1; i >= 0; i-- {
		if s.messages[i].ChatID == chatID {
			m := s.messages[i]
			return &m, nil
		}
	}
	return nil, nil
}

func seedChat(t *testing.T, repo *stubChatRepository, u1, u2 string) *chat.Chat {
	t.Helper()
	c, err := chat.NewChat(u1, u2)
	require.NoError(t, err)
	id, err := repo.CreateChat(context.Background(), *c)
	require.NoError(t, err)
	c.ID = id
	return c
}

func TestSendMessageResolvesRecipient(t *testing.T) {
	repo := newStubChatRepository()
	c := seedChat(t, repo, "zoe", "adam")
	uc := NewSendMessageUseCase(repo)

	res, err := uc.Execute(context.Background(), SendMessageInput{
		ChatID:   c.ID,
		SenderID: "adam",
		Body:     "hello",
	})
	require.NoError(t, err)
	assert.Equal(t, "zoe", res.RecipientID)
	assert.Equal(t, "msg-1", res.Message.ID)
	assert.Equal(t, "hello", res.Message.Body)
	require.Len(t, repo.messages, 1)
}

func TestSendMessageRejectsNonParticipant(t *testing.T) {
	repo := newStubChatRepository()
	c := seedChat(t, repo, "zoe", "adam")
	uc := NewSendMessageUseCase(repo)

	_, err := uc.Execute(context.Background(), SendMessageInput{
		ChatID:   c.ID,
		SenderID: "mallory",
		Body:     "hi",
	})
	assert.ErrorIs(t, err, chat.ErrNotParticipant)
	assert.Empty(t, repo.messages)
}

func TestSendMessageUnknownChat(t *testing.T) {
	uc := NewSendMessageUseCase(newStubChatRepository())

	_, err := uc.Execute(context.Background(), SendMessageInput{
		ChatID:   "missing",
		SenderID: "adam",
		Body:     "hi",
	})
	assert.ErrorIs(t, err, chat.ErrChatNotFound)
}

func TestSendMessageWrapsPersistenceError(t *testing.T) {
	repo := newStubChatRepository()
	seedChat(t, repo, "zoe", "adam")
	repo.err = errors.New("connection refused")
	uc := NewSendMessageUseCase(repo)

	_, err := uc.Execute(context.Background(), SendMessageInput{
		ChatID:   "chat-1",
		SenderID: "adam",
		Body:     "hi",
	})
	assert.ErrorIs(t, err, ErrPersistence)
}

func TestCreateChatRejectsDuplicatePair(t *testing.T) {
	repo := newStubChatRepository()
	uc := NewCreateChatUseCase(repo)

	created, err := uc.Execute(context.Background(), CreateChatInput{User1ID: "zoe", User2ID: "adam"})
	require.NoError(t, err)
	assert.Equal(t, "adam", created.UserA)
	assert.Equal(t, "zoe", created.UserB)

	// Same pair in the opposite order maps to the same chat.
	_, err = uc.Execute(context.Background(), CreateChatInput{User1ID: "adam", User2ID: "zoe"})
	assert.ErrorIs(t, err, chat.ErrChatExists)
}

func TestFindChatNormalizesPairOrder(t *testing.T) {
	repo := newStubChatRepository()
	c := seedChat(t, repo, "zoe", "adam")
	uc := NewFindChatUseCase(repo)

	found, err := uc.Execute(context.Background(), FindChatInput{User1ID: "zoe", User2ID: "adam"})
	require.NoError(t, err)
	assert.Equal(t, c.ID, found.ID)

	_, err = uc.Execute(context.Background(), FindChatInput{User1ID: "zoe", User2ID: "nobody"})
	assert.ErrorIs(t, err, chat.ErrChatNotFound)
}
