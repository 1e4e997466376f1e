package schedule

import (
	"testing"
)

func TestDraftsFromRecords(t *testing.T) {
	records := []ClassRecord{
		{ClassCode: "CS 201", ClassName: "Data Structures", Professor: "Dr. Lee", Section: "0001"},
		{ClassCode: "CS 201", ClassName: "Data Structures Lab", Section: "0001"},
		{ClassCode: "CHEM 110", ClassName: "General Chemistry Lab", Section: "L01"},
	}

	drafts := DraftsFromRecords(records)
	if len(drafts) != 2 {
		t.Fatalf("got %d drafts, want 2", len(drafts))
	}

	cs := drafts[0]
	if len(cs.Components) != 2 {
		t.Fatalf("CS 201 has %d components, want 2", len(cs.Components))
	}
	if cs.Components[0].Type != ComponentLecture {
		t.Errorf("first component type = %q, want lecture", cs.Components[0].Type)
	}
	if cs.Components[1].Type != ComponentLab {
		t.Errorf("second component type = %q, want lab", cs.Components[1].Type)
	}
	if !cs.ChatEligible() {
		t.Error("course with a lecture component must be chat-eligible")
	}

	chem := drafts[1]
	if chem.ChatEligible() {
		t.Error("lab-only course must not be chat-eligible")
	}
}

func TestPartition(t *testing.T) {
	drafts := []CourseDraft{
		{Code: "CS 201", Components: []ComponentDraft{{Type: ComponentLecture}}},
		{Code: "CHEM 110L", Components: []ComponentDraft{{Type: ComponentLab}}},
		{Code: "MATH 221", Components: []ComponentDraft{{Type: ComponentRecitation}, {Type: ComponentLecture}}},
		{Code: "PHYS 205R", Components: []ComponentDraft{{Type: ComponentRecitation}}},
	}

	sectionCourses, metadataCourses := Partition(drafts)

	if len(sectionCourses) != 2 {
		t.Fatalf("section courses = %d, want 2", len(sectionCourses))
	}
	if sectionCourses[0].Code != "CS 201" || sectionCourses[1].Code != "MATH 221" {
		t.Errorf("section courses = %v", sectionCourses)
	}

	if len(metadataCourses) != 2 {
		t.Fatalf("metadata courses = %d, want 2", len(metadataCourses))
	}
	if metadataCourses[0].Code != "CHEM 110L" || metadataCourses[1].Code != "PHYS 205R" {
		t.Errorf("metadata courses = %v", metadataCourses)
	}
}
