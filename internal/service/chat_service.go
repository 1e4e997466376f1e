package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/campuslink/campuslink-backend/internal/config"
	"github.com/campuslink/campuslink-backend/internal/model"
	"github.com/campuslink/campuslink-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ErrNotChatMember rejects reads and writes from non-members.
var ErrNotChatMember = errors.New("not a member of this chat")

const chatHistoryLimit = 50

// ChatService handles class chat reads, message persistence and fan-out.
// Provisioning itself happens in the chat worker; this service only serves
// chats that already exist.
type ChatService struct {
	rdb   *redis.Client
	chats *repository.ChatRepository
	log   zerolog.Logger
}

// NewChatService creates a new ChatService.
func NewChatService(rdb *redis.Client, chats *repository.ChatRepository) *ChatService {
	return &ChatService{
		rdb:   rdb,
		chats: chats,
		log:   log.With().Str("component", "chat_service").Logger(),
	}
}

// ListMyChats returns the chats the user belongs to.
func (s *ChatService) ListMyChats(ctx context.Context, userID uuid.UUID) ([]model.ClassChat, error) {
	return s.chats.ListByUser(ctx, userID)
}

// History returns recent messages of a chat, newest first. Non-members are
// rejected.
func (s *ChatService) History(ctx context.Context, chatID, userID uuid.UUID) ([]model.ChatMessage, error) {
	if err := s.requireMember(ctx, chatID, userID); err != nil {
		return nil, err
	}
	return s.chats.ListRecentMessages(ctx, chatID, chatHistoryLimit)
}

// Send persists a message and publishes it to the chat's Redis channel so
// every connected WebSocket instance fans it out.
func (s *ChatService) Send(ctx context.Context, chatID, senderID uuid.UUID, body string) (*model.ChatMessage, error) {
	if err := s.requireMember(ctx, chatID, senderID); err != nil {
		return nil, err
	}

	msg := &model.ChatMessage{
		ChatID:   chatID,
		SenderID: senderID,
		Body:     body,
	}
	if err := s.chats.InsertMessage(ctx, msg); err != nil {
		return nil, fmt.Errorf("persist message: %w", err)
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return nil, err
	}
	if err := s.rdb.Publish(ctx, config.CacheKey.ChatChannel(chatID.String()), data).Err(); err != nil {
		// Message is durable; live listeners just miss the push.
		s.log.Warn().Err(err).Str("chat_id", chatID.String()).Msg("Publish failed")
	}
	return msg, nil
}

// IsMember reports chat membership, for the WebSocket subscribe check.
func (s *ChatService) IsMember(ctx context.Context, chatID, userID uuid.UUID) (bool, error) {
	return s.chats.IsMember(ctx, chatID, userID)
}

func (s *ChatService) requireMember(ctx context.Context, chatID, userID uuid.UUID) error {
	ok, err := s.chats.IsMember(ctx, chatID, userID)
	if err != nil {
		return fmt.Errorf("check membership: %w", err)
	}
	if !ok {
		return ErrNotChatMember
	}
	return nil
}
