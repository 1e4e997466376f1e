package model

import (
	"github.com/campuslink/campuslink-backend/internal/schedule"
)

// SchedulePreview is shown to the user between parsing and confirmation.
// SectionCourses are chat-eligible and will be enrolled with chat
// provisioning; MetadataCourses are retained for reference only.
type SchedulePreview struct {
	Source          string                 `json:"source"`
	SectionCourses  []schedule.CourseDraft `json:"section_courses"`
	MetadataCourses []schedule.CourseDraft `json:"metadata_courses"`
}

// ConfirmScheduleRequest is the payload for final schedule confirmation. The
// client sends back the (possibly edited) drafts from the preview.
type ConfirmScheduleRequest struct {
	Semester string                 `json:"semester" binding:"omitempty,max=30"`
	Courses  []schedule.CourseDraft `json:"courses" binding:"required,min=1,max=20,dive"`
}

// ConfirmedCourse is the per-course outcome of a confirmation.
type ConfirmedCourse struct {
	Code        string     `json:"code"`
	MatchResult *Class     `json:"class,omitempty"`
	Enrollment  Enrollment `json:"enrollment"`
	NewlyAdded  bool       `json:"newly_added"`
	ChatQueued  bool       `json:"chat_queued"`
}

// ConfirmScheduleResult summarizes a confirmation run.
type ConfirmScheduleResult struct {
	Courses   []ConfirmedCourse `json:"courses"`
	Onboarded bool              `json:"onboarded"`
}
