package model

import (
	"github.com/google/uuid"
)

// SharedClass is one class a classmate has in common with the caller.
type SharedClass struct {
	ClassID   uuid.UUID  `json:"class_id"`
	ClassCode string     `json:"class_code"`
	ClassName string     `json:"class_name"`
	SectionID *uuid.UUID `json:"section_id,omitempty"`
}

// Classmate is a derived, never-persisted relation: another user sharing at
// least one active enrollment with the caller. Lifetime is query-scoped.
type Classmate struct {
	UserID        uuid.UUID     `json:"user_id"`
	Profile       Profile       `json:"profile"`
	SharedClasses []SharedClass `json:"shared_classes"`
}
