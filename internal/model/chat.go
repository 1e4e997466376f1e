package model

import (
	"time"

	"github.com/google/uuid"
)

// ClassChat is the group chat provisioned for a chat-eligible class section.
// One chat exists per (class_id, section_id); provisioning is idempotent.
type ClassChat struct {
	ID        uuid.UUID  `json:"id"`
	ClassID   uuid.UUID  `json:"class_id"`
	SectionID *uuid.UUID `json:"section_id,omitempty"`
	Title     string     `json:"title"`
	CreatedAt time.Time  `json:"created_at"`
}

// ChatMessage is a persisted message in a class chat.
type ChatMessage struct {
	ID        uuid.UUID `json:"id"`
	ChatID    uuid.UUID `json:"chat_id"`
	SenderID  uuid.UUID `json:"sender_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}
