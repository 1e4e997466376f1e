package schedule

import (
	"regexp"
	"strings"
	"time"
)

// summaryCodeRe matches a department-prefixed course code inside an event
// summary, e.g. "CS 201" in "CS 201 Data Structures".
var summaryCodeRe = regexp.MustCompile(`[A-Z]{2,4}\s+\d{3}[A-Z]?`)

// ParseICal scans a full .ics body line by line and returns one ClassRecord
// per VEVENT whose SUMMARY yields a course code. Events without a parseable
// code are discarded whole; malformed dates are skipped silently, leaving
// the corresponding fields empty.
//
// If both a DTSTART-derived weekday and an RRULE BYDAY list are present, the
// BYDAY list overwrites the derived day; the single occurrence is treated
// as the anchor of the recurrence, not a meeting day in its own right.
func ParseICal(text string) []ClassRecord {
	var records []ClassRecord
	var cur *ClassRecord

	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimRight(rawLine, "\r")

		switch {
		case strings.HasPrefix(line, "BEGIN:VEVENT"):
			cur = &ClassRecord{}

		case strings.HasPrefix(line, "END:VEVENT"):
			if cur != nil && cur.ClassCode != "" {
				records = append(records, *cur)
			}
			cur = nil

		case cur == nil:
			// Outside an event; calendar headers and timezone blocks.

		case strings.HasPrefix(line, "SUMMARY"):
			summary := propertyValue(line)
			if code := summaryCodeRe.FindString(summary); code != "" {
				cur.ClassCode = code
				cur.ClassName = strings.TrimSpace(strings.Replace(summary, code, "", 1))
			} else {
				cur.ClassName = summary
			}

		case strings.HasPrefix(line, "DESCRIPTION"):
			desc := propertyValue(line)
			if idx := strings.Index(desc, "Instructor:"); idx >= 0 {
				prof := desc[idx+len("Instructor:"):]
				// iCal escapes embedded newlines as the literal \n.
				if end := strings.Index(prof, `\n`); end >= 0 {
					prof = prof[:end]
				}
				cur.Professor = strings.TrimSpace(prof)
			}

		case strings.HasPrefix(line, "LOCATION"):
			cur.Location = propertyValue(line)

		case strings.HasPrefix(line, "DTSTART"):
			if day, clock, ok := parseICalDateTime(propertyValue(line)); ok {
				cur.StartTime = clock
				if !containsDay(cur.DaysOfWeek, day) {
					cur.DaysOfWeek = append(cur.DaysOfWeek, day)
				}
			}

		case strings.HasPrefix(line, "DTEND"):
			if _, clock, ok := parseICalDateTime(propertyValue(line)); ok {
				cur.EndTime = clock
			}

		case strings.HasPrefix(line, "RRULE"):
			if days := parseByDay(propertyValue(line)); days != nil {
				// BYDAY overwrites any weekday derived from DTSTART.
				cur.DaysOfWeek = days
			}
		}
	}

	return records
}

// propertyValue returns the text after the first colon of an iCal content
// line, skipping any property parameters (e.g. "DTSTART;TZID=...").
func propertyValue(line string) string {
	if idx := strings.Index(line, ":"); idx >= 0 {
		return strings.TrimSpace(line[idx+1:])
	}
	return ""
}

// parseICalDateTime parses a YYYYMMDDTHHMMSS value, returning the weekday
// name of the date portion and the clock as "HH:MM". Trailing Z (UTC marker)
// is tolerated. Malformed values return ok=false.
func parseICalDateTime(v string) (day, clock string, ok bool) {
	v = strings.TrimSuffix(v, "Z")
	if len(v) < 15 || v[8] != 'T' {
		return "", "", false
	}

	t, err := time.Parse("20060102T150405", v[:15])
	if err != nil {
		return "", "", false
	}

	return t.Weekday().String(), t.Format("15:04"), true
}

// parseByDay extracts the BYDAY code list from an RRULE value and maps it to
// weekday names. Returns nil when no BYDAY parameter is present.
func parseByDay(rrule string) []string {
	idx := strings.Index(rrule, "BYDAY=")
	if idx < 0 {
		return nil
	}

	list := rrule[idx+len("BYDAY="):]
	if end := strings.Index(list, ";"); end >= 0 {
		list = list[:end]
	}

	var days []string
	for _, code := range strings.Split(list, ",") {
		if name, ok := icalByDay[strings.TrimSpace(code)]; ok {
			days = append(days, name)
		}
	}
	return days
}

func containsDay(days []string, day string) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}
