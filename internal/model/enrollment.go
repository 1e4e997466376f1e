package model

import (
	"time"

	"github.com/google/uuid"
)

// Enrollment links a user to a class (and optionally a section) for a term.
// At most one active enrollment exists per (user, class, semester); the
// writer enforces this with a lookup before insert.
type Enrollment struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	ClassID   uuid.UUID  `json:"class_id"`
	SectionID *uuid.UUID `json:"section_id,omitempty"`
	Semester  string     `json:"semester"`
	TermCode  string     `json:"term_code"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// EnrollRequest is the payload for enrolling in a matched class.
// ChatEligible is decided by the client's preview (a course with at least one
// lecture component) and marks the class for group chat provisioning.
type EnrollRequest struct {
	ClassID      uuid.UUID  `json:"class_id" binding:"required"`
	SectionID    *uuid.UUID `json:"section_id" binding:"omitempty"`
	Semester     string     `json:"semester" binding:"omitempty,max=30"`
	TermCode     string     `json:"term_code" binding:"omitempty,max=10"`
	ChatEligible bool       `json:"chat_eligible"`
}

// EnrolledClass joins an enrollment to its catalog rows for schedule views.
type EnrolledClass struct {
	Enrollment Enrollment    `json:"enrollment"`
	Class      Class         `json:"class"`
	Section    *ClassSection `json:"section,omitempty"`
}
