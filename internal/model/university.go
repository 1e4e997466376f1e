package model

import (
	"time"

	"github.com/google/uuid"
)

// University is the tenant boundary for the shared course catalog. Users are
// attached to exactly one university, resolved from their email domain at
// registration time.
type University struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	EmailDomain string    `json:"email_domain"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
