package service

import (
	"reflect"
	"testing"

	"github.com/campuslink/campuslink-backend/internal/schedule"
)

func TestMatchRequestFromDraft(t *testing.T) {
	lecture := schedule.ComponentDraft{
		Type:      schedule.ComponentLecture,
		Days:      []string{"Monday", "Wednesday"},
		StartTime: "10:10",
		EndTime:   "11:00",
		Location:  "Statler Hall 185",
	}
	lab := schedule.ComponentDraft{
		Type:      schedule.ComponentLab,
		Days:      []string{"Friday"},
		StartTime: "13:00",
		EndTime:   "15:00",
		Location:  "Phillips 318",
	}

	t.Run("lecture wins over earlier lab", func(t *testing.T) {
		draft := schedule.CourseDraft{
			Code:       "CS 2110",
			Name:       "Object-Oriented Programming",
			Professor:  "Gries",
			Components: []schedule.ComponentDraft{lab, lecture},
		}

		req := matchRequestFromDraft(draft, "Fall 2026")

		if req.ClassCode != "CS 2110" || req.Professor != "Gries" || req.Semester != "Fall 2026" {
			t.Errorf("course fields not carried over: %+v", req)
		}
		if !reflect.DeepEqual(req.Days, lecture.Days) || req.Location != lecture.Location {
			t.Errorf("expected lecture meeting details, got %+v", req)
		}
	})

	t.Run("falls back to first component without a lecture", func(t *testing.T) {
		draft := schedule.CourseDraft{
			Code:       "PHYS 1112L",
			Components: []schedule.ComponentDraft{lab},
		}

		req := matchRequestFromDraft(draft, "")

		if req.StartTime != lab.StartTime || req.Location != lab.Location {
			t.Errorf("expected lab meeting details, got %+v", req)
		}
	})

	t.Run("no components leaves meeting fields empty", func(t *testing.T) {
		draft := schedule.CourseDraft{Code: "HIST 1200"}

		req := matchRequestFromDraft(draft, "Spring 2026")

		if len(req.Days) != 0 || req.StartTime != "" || req.Location != "" {
			t.Errorf("expected empty meeting details, got %+v", req)
		}
	})
}
