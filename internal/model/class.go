package model

import (
	"time"

	"github.com/google/uuid"
)

// Class is the canonical catalog entry for a course at a university,
// independent of section and semester. The row is shared: whoever inserts
// first owns the canonical code, later encounters may refresh the name.
type Class struct {
	ID           uuid.UUID `json:"id"`
	UniversityID uuid.UUID `json:"university_id"`
	ClassCode    string    `json:"class_code"`
	ClassName    string    `json:"class_name"`
	Department   string    `json:"department,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ClassSection is a scheduled offering of a Class for a specific
// professor and semester. Identity is (class_id, professor_name, semester);
// days/times/location are metadata and do not participate in dedup.
type ClassSection struct {
	ID            uuid.UUID `json:"id"`
	ClassID       uuid.UUID `json:"class_id"`
	ProfessorName string    `json:"professor_name"`
	Semester      string    `json:"semester"`
	DaysOfWeek    []string  `json:"days_of_week,omitempty"`
	StartTime     string    `json:"start_time,omitempty"`
	EndTime       string    `json:"end_time,omitempty"`
	Location      string    `json:"location,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// MatchClassRequest is the payload for finding or creating a catalog entry.
type MatchClassRequest struct {
	ClassCode string   `json:"class_code" binding:"required,min=2,max=20"`
	ClassName string   `json:"class_name" binding:"omitempty,max=200"`
	Professor string   `json:"professor" binding:"omitempty,max=100"`
	Semester  string   `json:"semester" binding:"omitempty,max=30"`
	Days      []string `json:"days" binding:"omitempty,dive,daycode"`
	StartTime string   `json:"start_time" binding:"omitempty,max=10"`
	EndTime   string   `json:"end_time" binding:"omitempty,max=10"`
	Location  string   `json:"location" binding:"omitempty,max=100"`
}
