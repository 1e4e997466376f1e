package schedule

import "strings"

// ComponentType classifies a course meeting component.
type ComponentType string

const (
	ComponentLecture    ComponentType = "lecture"
	ComponentLab        ComponentType = "lab"
	ComponentRecitation ComponentType = "recitation"
)

// ComponentDraft is one meeting component of a parsed course.
type ComponentDraft struct {
	Type      ComponentType `json:"type"`
	Days      []string      `json:"days,omitempty"`
	StartTime string        `json:"start_time,omitempty"`
	EndTime   string        `json:"end_time,omitempty"`
	Location  string        `json:"location,omitempty"`
}

// CourseDraft is the structured, user-facing representation of a parsed
// course: one draft per course+section, owning an ordered component list.
type CourseDraft struct {
	Code       string           `json:"code"`
	Name       string           `json:"name,omitempty"`
	Professor  string           `json:"professor,omitempty"`
	Section    string           `json:"section,omitempty"`
	Semester   string           `json:"semester,omitempty"`
	Components []ComponentDraft `json:"components"`
}

// ChatEligible reports whether the course qualifies for an automatic group
// chat: true iff at least one component is a lecture. Lab- or
// recitation-only courses are retained for reference but never create a chat.
func (d CourseDraft) ChatEligible() bool {
	for _, c := range d.Components {
		if c.Type == ComponentLecture {
			return true
		}
	}
	return false
}

// DraftsFromRecords converts flat legacy records into drafts, grouping by
// course code + section in input order. The component type is inferred from
// the record's name; file-imported rows are lectures unless the name says
// otherwise.
func DraftsFromRecords(records []ClassRecord) []CourseDraft {
	var drafts []CourseDraft
	index := make(map[string]int)

	for _, rec := range records {
		key := rec.ClassCode + "|" + rec.Section

		comp := ComponentDraft{
			Type:      inferComponentType(rec.ClassName),
			Days:      rec.DaysOfWeek,
			StartTime: rec.StartTime,
			EndTime:   rec.EndTime,
			Location:  rec.Location,
		}

		if i, ok := index[key]; ok {
			drafts[i].Components = append(drafts[i].Components, comp)
			if drafts[i].Professor == "" {
				drafts[i].Professor = rec.Professor
			}
			continue
		}

		index[key] = len(drafts)
		drafts = append(drafts, CourseDraft{
			Code:       rec.ClassCode,
			Name:       rec.ClassName,
			Professor:  rec.Professor,
			Section:    rec.Section,
			Semester:   rec.Semester,
			Components: []ComponentDraft{comp},
		})
	}

	return drafts
}

// inferComponentType guesses the component type from a course or event name.
func inferComponentType(name string) ComponentType {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "lab"):
		return ComponentLab
	case strings.Contains(lower, "recitation"), strings.Contains(lower, "discussion"):
		return ComponentRecitation
	default:
		return ComponentLecture
	}
}

// Partition splits drafts into the chat-eligible set (at least one lecture
// component) and the metadata-only set shown for reference in the
// confirmation step.
func Partition(drafts []CourseDraft) (sectionCourses, metadataCourses []CourseDraft) {
	for _, d := range drafts {
		if d.ChatEligible() {
			sectionCourses = append(sectionCourses, d)
		} else {
			metadataCourses = append(metadataCourses, d)
		}
	}
	return sectionCourses, metadataCourses
}
