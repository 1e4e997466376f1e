package schedule

import (
	"reflect"
	"testing"
)

func TestParseCSVHeaderDetection(t *testing.T) {
	csv := "Code,Name\nCS201,Data Structures,Dr. Lee,MWF,9:00 AM,10:15 AM,Tyler 101,0001"

	records := ParseCSV(csv)
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}

	rec := records[0]
	if rec.ClassCode != "CS201" {
		t.Errorf("class_code = %q, want CS201", rec.ClassCode)
	}
	if rec.ClassName != "Data Structures" {
		t.Errorf("class_name = %q, want Data Structures", rec.ClassName)
	}
	if rec.Professor != "Dr. Lee" {
		t.Errorf("professor = %q, want Dr. Lee", rec.Professor)
	}
	if want := []string{"Monday", "Wednesday", "Friday"}; !reflect.DeepEqual(rec.DaysOfWeek, want) {
		t.Errorf("days = %v, want %v", rec.DaysOfWeek, want)
	}
	if rec.StartTime != "09:00" {
		t.Errorf("start_time = %q, want 09:00", rec.StartTime)
	}
	if rec.EndTime != "10:15" {
		t.Errorf("end_time = %q, want 10:15", rec.EndTime)
	}
	if rec.Location != "Tyler 101" {
		t.Errorf("location = %q, want Tyler 101", rec.Location)
	}
	if rec.Section != "0001" {
		t.Errorf("section = %q, want 0001", rec.Section)
	}
}

func TestParseCSV(t *testing.T) {
	tests := []struct {
		name string
		csv  string
		want int
	}{
		{
			name: "no header when first line lacks the marker",
			csv:  "CS201,Data Structures\nMATH221,Linear Algebra",
			want: 2,
		},
		{
			name: "bare code header skipped",
			csv:  "Code,Name\nCS201,Data Structures",
			want: 1,
		},
		{
			name: "quoted code header skipped",
			csv:  "\"Code\",\"Name\"\nCS201,Data Structures",
			want: 1,
		},
		{
			name: "empty code rows dropped",
			csv:  "Class Code,Name\n,Orphan Row\nCS201,Data Structures",
			want: 1,
		},
		{
			name: "blank lines skipped",
			csv:  "CS201,Data Structures\n\n\nMATH221,Linear Algebra\n",
			want: 2,
		},
		{
			name: "empty input",
			csv:  "",
			want: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseCSV(tt.csv); len(got) != tt.want {
				t.Errorf("ParseCSV() returned %d records, want %d", len(got), tt.want)
			}
		})
	}
}

func TestSplitCSVLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{
			name: "plain fields",
			line: "a,b,c",
			want: []string{"a", "b", "c"},
		},
		{
			name: "quoted comma",
			line: `CS201,"Algorithms, Advanced",Dr. Wu`,
			want: []string{"CS201", "Algorithms, Advanced", "Dr. Wu"},
		},
		{
			name: "trailing empty field",
			line: "a,b,",
			want: []string{"a", "b", ""},
		},
		{
			name: "single field",
			line: "solo",
			want: []string{"solo"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := splitCSVLine(tt.line); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitCSVLine(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}
