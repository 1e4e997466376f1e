package schedule

import (
	"reflect"
	"testing"
)

const sampleICS = "BEGIN:VCALENDAR\r\n" +
	"VERSION:2.0\r\n" +
	"BEGIN:VEVENT\r\n" +
	"SUMMARY:CS 201 Data Structures\r\n" +
	"DESCRIPTION:Instructor: Dr. Lee\\nRoom assignment may change\r\n" +
	"LOCATION:Tyler 101\r\n" +
	"DTSTART:20250902T090000\r\n" +
	"DTEND:20250902T101500\r\n" +
	"RRULE:FREQ=WEEKLY;BYDAY=MO,WE,FR\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"SUMMARY:MATH 221A Linear Algebra\r\n" +
	"DTSTART:20250903T110000\r\n" +
	"DTEND:20250903T121500\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"SUMMARY:Office Hours\r\n" +
	"DTSTART:20250904T140000\r\n" +
	"END:VEVENT\r\n" +
	"END:VCALENDAR\r\n"

func TestParseICal(t *testing.T) {
	records := ParseICal(sampleICS)

	// The code-less "Office Hours" event must be discarded.
	if len(records) != 2 {
		t.Fatalf("ParseICal returned %d records, want 2", len(records))
	}

	first := records[0]
	if first.ClassCode != "CS 201" {
		t.Errorf("class_code = %q, want %q", first.ClassCode, "CS 201")
	}
	if first.ClassName != "Data Structures" {
		t.Errorf("class_name = %q, want %q", first.ClassName, "Data Structures")
	}
	if first.Professor != "Dr. Lee" {
		t.Errorf("professor = %q, want %q", first.Professor, "Dr. Lee")
	}
	if first.Location != "Tyler 101" {
		t.Errorf("location = %q, want %q", first.Location, "Tyler 101")
	}
	if first.StartTime != "09:00" || first.EndTime != "10:15" {
		t.Errorf("times = %q-%q, want 09:00-10:15", first.StartTime, first.EndTime)
	}

	// DTSTART falls on a Tuesday, but BYDAY overwrites (not appends).
	wantDays := []string{"Monday", "Wednesday", "Friday"}
	if !reflect.DeepEqual(first.DaysOfWeek, wantDays) {
		t.Errorf("days_of_week = %v, want %v", first.DaysOfWeek, wantDays)
	}

	second := records[1]
	if second.ClassCode != "MATH 221A" {
		t.Errorf("class_code = %q, want %q", second.ClassCode, "MATH 221A")
	}
	// No RRULE: the derived weekday from DTSTART survives.
	if !reflect.DeepEqual(second.DaysOfWeek, []string{"Wednesday"}) {
		t.Errorf("days_of_week = %v, want [Wednesday]", second.DaysOfWeek)
	}
	if second.Professor != "" {
		t.Errorf("professor = %q, want empty", second.Professor)
	}
}

func TestParseICalMalformedDates(t *testing.T) {
	ics := "BEGIN:VEVENT\n" +
		"SUMMARY:BIO 150 Intro Biology\n" +
		"DTSTART:not-a-date\n" +
		"DTEND:20259999T999999\n" +
		"END:VEVENT\n"

	records := ParseICal(ics)
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	rec := records[0]
	if rec.StartTime != "" || rec.EndTime != "" || len(rec.DaysOfWeek) != 0 {
		t.Errorf("malformed dates must leave fields empty, got start=%q end=%q days=%v",
			rec.StartTime, rec.EndTime, rec.DaysOfWeek)
	}
}

func TestParseICalTZIDParameter(t *testing.T) {
	ics := "BEGIN:VEVENT\n" +
		"SUMMARY:HIST 300 Modern Europe\n" +
		"DTSTART;TZID=America/New_York:20250901T130000\n" +
		"END:VEVENT\n"

	records := ParseICal(ics)
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].StartTime != "13:00" {
		t.Errorf("start_time = %q, want 13:00", records[0].StartTime)
	}
	// 2025-09-01 is a Monday.
	if !reflect.DeepEqual(records[0].DaysOfWeek, []string{"Monday"}) {
		t.Errorf("days = %v, want [Monday]", records[0].DaysOfWeek)
	}
}

func TestParseByDayOverwriteIsExact(t *testing.T) {
	// Property: RRULE:BYDAY=MO,WE,FR on an event starting on a Tuesday
	// yields exactly [Monday Wednesday Friday].
	ics := "BEGIN:VEVENT\n" +
		"SUMMARY:CS 201 Data Structures\n" +
		"DTSTART:20250902T090000\n" + // a Tuesday
		"RRULE:FREQ=WEEKLY;BYDAY=MO,WE,FR\n" +
		"END:VEVENT\n"

	records := ParseICal(ics)
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	want := []string{"Monday", "Wednesday", "Friday"}
	if !reflect.DeepEqual(records[0].DaysOfWeek, want) {
		t.Errorf("days = %v, want %v", records[0].DaysOfWeek, want)
	}
}
