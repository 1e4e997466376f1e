package repository

import (
	"context"

	"github.com/campuslink/campuslink-backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ChatRepository handles class chat provisioning, membership and messages.
type ChatRepository struct {
	pool *pgxpool.Pool
}

// NewChatRepository creates a new ChatRepository.
func NewChatRepository(pool *pgxpool.Pool) *ChatRepository {
	return &ChatRepository{pool: pool}
}

// Upsert provisions the chat for a (class, section) pair. Idempotent: a
// second call for the same pair returns the existing row. section_id uses a
// sentinel-free unique index with COALESCE so NULL sections collapse to one
// chat per class.
func (r *ChatRepository) Upsert(ctx context.Context, chat *model.ClassChat) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO class_chats (class_id, section_id, title)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (class_id, COALESCE(section_id, '00000000-0000-0000-0000-000000000000'::uuid))
		 DO UPDATE SET title = class_chats.title
		 RETURNING id, title, created_at`,
		chat.ClassID, chat.SectionID, chat.Title,
	).Scan(&chat.ID, &chat.Title, &chat.CreatedAt)
}

// GetByID retrieves one chat.
func (r *ChatRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.ClassChat, error) {
	chat := &model.ClassChat{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, class_id, section_id, title, created_at
		 FROM class_chats WHERE id = $1`, id,
	).Scan(&chat.ID, &chat.ClassID, &chat.SectionID, &chat.Title, &chat.CreatedAt)
	if err != nil {
		return nil, err
	}
	return chat, nil
}

// ListByUser returns the chats the user is a member of, newest first.
func (r *ChatRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.ClassChat, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT c.id, c.class_id, c.section_id, c.title, c.created_at
		 FROM class_chats c
		 JOIN chat_members m ON m.chat_id = c.id
		 WHERE m.user_id = $1
		 ORDER BY c.created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chats []model.ClassChat
	for rows.Next() {
		var c model.ClassChat
		if err := rows.Scan(&c.ID, &c.ClassID, &c.SectionID, &c.Title, &c.CreatedAt); err != nil {
			return nil, err
		}
		chats = append(chats, c)
	}
	return chats, rows.Err()
}

// AddMember enrolls a user into a chat. Re-adding is a no-op.
func (r *ChatRepository) AddMember(ctx context.Context, chatID, userID uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO chat_members (chat_id, user_id)
		 VALUES ($1, $2)
		 ON CONFLICT (chat_id, user_id) DO NOTHING`,
		chatID, userID)
	return err
}

// IsMember reports whether the user belongs to the chat.
func (r *ChatRepository) IsMember(ctx context.Context, chatID, userID uuid.UUID) (bool, error) {
	var ok bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (
		   SELECT 1 FROM chat_members WHERE chat_id = $1 AND user_id = $2
		 )`, chatID, userID).Scan(&ok)
	return ok, err
}

// InsertMessage persists one message and fills in its id and timestamp.
func (r *ChatRepository) InsertMessage(ctx context.Context, msg *model.ChatMessage) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO chat_messages (chat_id, sender_id, body)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		msg.ChatID, msg.SenderID, msg.Body,
	).Scan(&msg.ID, &msg.CreatedAt)
}

// ListRecentMessages returns up to limit messages, newest first.
func (r *ChatRepository) ListRecentMessages(ctx context.Context, chatID uuid.UUID, limit int) ([]model.ChatMessage, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, chat_id, sender_id, body, created_at
		 FROM chat_messages
		 WHERE chat_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`, chatID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []model.ChatMessage
	for rows.Next() {
		var m model.ChatMessage
		if err := rows.Scan(&m.ID, &m.ChatID, &m.SenderID, &m.Body, &m.CreatedAt); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}
