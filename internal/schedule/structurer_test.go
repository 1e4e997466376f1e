package schedule

import (
	"reflect"
	"testing"
)

const sampleOCRText = `Fall 2025 Schedule
CS 201 Data Structures
Instructor: Dr. Lee
Section 0001
LEC MWF 9:00 AM - 10:15 AM Tyler 101
LAB R 2:00 PM - 4:00 PM Tyler 210

MATH-221: Linear Algebra
TR 11:00 AM - 12:15 PM Ross 305

CHEM 110 General Chemistry
LAB W 1:00 PM - 3:50 PM Beaumont 12
`

func TestStructureText(t *testing.T) {
	drafts := StructureText(sampleOCRText)
	if len(drafts) != 3 {
		t.Fatalf("got %d drafts, want 3: %+v", len(drafts), drafts)
	}

	cs := drafts[0]
	if cs.Code != "CS 201" {
		t.Errorf("code = %q, want CS 201", cs.Code)
	}
	if cs.Name != "Data Structures" {
		t.Errorf("name = %q, want Data Structures", cs.Name)
	}
	if cs.Professor != "Dr. Lee" {
		t.Errorf("professor = %q, want Dr. Lee", cs.Professor)
	}
	if cs.Section != "0001" {
		t.Errorf("section = %q, want 0001", cs.Section)
	}
	if len(cs.Components) != 2 {
		t.Fatalf("CS 201 components = %d, want 2", len(cs.Components))
	}
	lec := cs.Components[0]
	if lec.Type != ComponentLecture {
		t.Errorf("component[0] type = %q, want lecture", lec.Type)
	}
	if want := []string{"Monday", "Wednesday", "Friday"}; !reflect.DeepEqual(lec.Days, want) {
		t.Errorf("lecture days = %v, want %v", lec.Days, want)
	}
	if lec.StartTime != "09:00" || lec.EndTime != "10:15" {
		t.Errorf("lecture times = %q-%q, want 09:00-10:15", lec.StartTime, lec.EndTime)
	}
	if lec.Location != "Tyler 101" {
		t.Errorf("lecture location = %q, want Tyler 101", lec.Location)
	}
	lab := cs.Components[1]
	if lab.Type != ComponentLab {
		t.Errorf("component[1] type = %q, want lab", lab.Type)
	}
	if want := []string{"Thursday"}; !reflect.DeepEqual(lab.Days, want) {
		t.Errorf("lab days = %v, want %v", lab.Days, want)
	}

	math := drafts[1]
	if math.Code != "MATH 221" {
		t.Errorf("code = %q, want MATH 221", math.Code)
	}
	if !math.ChatEligible() {
		t.Error("MATH 221 has a lecture component and must be chat-eligible")
	}

	chem := drafts[2]
	if chem.ChatEligible() {
		t.Error("lab-only CHEM 110 must not be chat-eligible")
	}
}

func TestStructureTextEmpty(t *testing.T) {
	if drafts := StructureText(""); len(drafts) != 0 {
		t.Errorf("empty text produced %d drafts, want 0", len(drafts))
	}
	if drafts := StructureText("no course codes on any line\njust noise"); len(drafts) != 0 {
		t.Errorf("noise text produced %d drafts, want 0", len(drafts))
	}
}
