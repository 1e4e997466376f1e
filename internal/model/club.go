package model

import (
	"time"

	"github.com/google/uuid"
)

// Club is a university-scoped student organization.
type Club struct {
	ID           uuid.UUID `json:"id"`
	UniversityID uuid.UUID `json:"university_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Category     string    `json:"category,omitempty"`
	CreatedBy    uuid.UUID `json:"created_by"`
	MemberCount  int       `json:"member_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ClubPost is an entry in a club's feed.
type ClubPost struct {
	ID        uuid.UUID `json:"id"`
	ClubID    uuid.UUID `json:"club_id"`
	AuthorID  uuid.UUID `json:"author_id"`
	Author    *Profile  `json:"author,omitempty"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateClubRequest is the payload for founding a club.
type CreateClubRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Description string `json:"description" binding:"omitempty,max=1000"`
	Category    string `json:"category" binding:"omitempty,max=50"`
}

// CreateClubPostRequest is the payload for posting to a club feed.
type CreateClubPostRequest struct {
	Body string `json:"body" binding:"required,min=1,max=2000"`
}
