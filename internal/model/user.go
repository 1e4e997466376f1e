package model

import (
	"time"

	"github.com/google/uuid"
)

// User is an authenticated member of a campus.
type User struct {
	ID             uuid.UUID  `json:"id"`
	Email          string     `json:"email"`
	Name           string     `json:"name"`
	PasswordHash   string     `json:"-"`
	UniversityID   *uuid.UUID `json:"university_id,omitempty"`
	Major          string     `json:"major,omitempty"`
	GraduationYear int        `json:"graduation_year,omitempty"`
	Bio            string     `json:"bio,omitempty"`
	AvatarURL      string     `json:"avatar_url,omitempty"`
	Onboarded      bool       `json:"onboarded"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// Profile is the subset of User safe to show to other members.
type Profile struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Major          string    `json:"major,omitempty"`
	GraduationYear int       `json:"graduation_year,omitempty"`
	AvatarURL      string    `json:"avatar_url,omitempty"`
}

// RegisterRequest is the payload for creating a new account.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email,max=254"`
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// LoginRequest is the payload for authentication.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// UpdateProfileRequest is the payload for editing the caller's own profile.
type UpdateProfileRequest struct {
	Name           string `json:"name" binding:"required,min=2,max=100"`
	Major          string `json:"major" binding:"omitempty,max=100"`
	GraduationYear int    `json:"graduation_year" binding:"omitempty,min=2000,max=2100"`
	Bio            string `json:"bio" binding:"omitempty,max=500"`
	AvatarURL      string `json:"avatar_url" binding:"omitempty,max=300"`
}
