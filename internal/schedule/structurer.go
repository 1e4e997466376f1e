package schedule

import (
	"regexp"
	"strings"
)

var (
	// courseLineRe matches a line opening a new course in OCR text, e.g.
	// "CS 201 Data Structures" or "MATH-221: Linear Algebra".
	courseLineRe = regexp.MustCompile(`^([A-Z]{2,4})[\s-]*(\d{3}[A-Z]?)\b[:\s-]*(.*)$`)

	// timeRangeRe matches "9:00 AM - 10:15 AM" style ranges anywhere in a line.
	timeRangeRe = regexp.MustCompile(`(\d{1,2}:\d{2}\s*(?:[AaPp][Mm])?)\s*[-–]\s*(\d{1,2}:\d{2}\s*(?:[AaPp][Mm])?)`)

	// dayTokenRe matches a contiguous day-letter token such as "MWF" or "TR".
	dayTokenRe = regexp.MustCompile(`\b[MTWRFSU]{1,7}\b`)

	// sectionTokenRe matches an explicit section marker, e.g. "Section 0001".
	sectionTokenRe = regexp.MustCompile(`(?i)\bsec(?:tion)?\.?\s*([0-9A-Z]{1,6})\b`)

	instructorRe = regexp.MustCompile(`(?i)\b(?:instructor|professor|prof\.?)[:\s]+(.+)$`)
)

// StructureText converts raw OCR text into course drafts. Lines opening with
// a course code start a new draft; subsequent lines attach meeting components
// (lecture by default, lab/recitation when the line says so), instructor
// names, and section markers until the next course line.
//
// OCR output is noisy, so everything here is best-effort: unparseable lines
// contribute nothing and are never an error.
func StructureText(raw string) []CourseDraft {
	var drafts []CourseDraft
	var cur *CourseDraft

	flush := func() {
		if cur == nil {
			return
		}
		if len(cur.Components) == 0 {
			// A course line with inline schedule info but no component lines.
			cur.Components = []ComponentDraft{{Type: ComponentLecture}}
		}
		drafts = append(drafts, *cur)
		cur = nil
	}

	for _, rawLine := range strings.Split(raw, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}

		if m := courseLineRe.FindStringSubmatch(line); m != nil {
			flush()
			cur = &CourseDraft{
				Code: m[1] + " " + m[2],
				Name: cleanCourseName(m[3]),
			}
			// Schedule details may sit on the course line itself.
			if comp, ok := extractComponent(m[3]); ok {
				cur.Components = append(cur.Components, comp)
			}
			continue
		}

		if cur == nil {
			continue
		}

		if m := instructorRe.FindStringSubmatch(line); m != nil {
			cur.Professor = strings.TrimSpace(m[1])
			continue
		}

		if m := sectionTokenRe.FindStringSubmatch(line); m != nil && cur.Section == "" {
			cur.Section = m[1]
		}

		if comp, ok := extractComponent(line); ok {
			cur.Components = append(cur.Components, comp)
		}
	}
	flush()

	return drafts
}

// extractComponent pulls a meeting component out of a line: a time range
// and/or day token, an optional LEC/LAB/REC marker, and a trailing location.
func extractComponent(line string) (ComponentDraft, bool) {
	times := timeRangeRe.FindStringSubmatchIndex(line)
	days := dayTokenRe.FindString(line)
	if times == nil && days == "" {
		return ComponentDraft{}, false
	}

	comp := ComponentDraft{Type: componentMarker(line)}
	if days != "" {
		comp.Days = ParseDays(days)
	}
	if times != nil {
		if start, ok := ParseTime(line[times[2]:times[3]]); ok {
			comp.StartTime = start
		}
		if end, ok := ParseTime(line[times[4]:times[5]]); ok {
			comp.EndTime = end
		}
		// Whatever trails the time range is taken as the location.
		tail := strings.Trim(strings.TrimSpace(line[times[1]:]), ",;")
		comp.Location = tail
	}

	return comp, true
}

// componentMarker maps LEC/LAB/REC/DIS markers to a component type,
// defaulting to lecture.
func componentMarker(line string) ComponentType {
	upper := strings.ToUpper(line)
	switch {
	case strings.Contains(upper, "LAB"):
		return ComponentLab
	case strings.Contains(upper, "REC"), strings.Contains(upper, "DIS"):
		return ComponentRecitation
	default:
		return ComponentLecture
	}
}

// cleanCourseName strips schedule noise (times, day tokens, section markers)
// from the remainder of a course line, keeping only the title.
func cleanCourseName(s string) string {
	s = timeRangeRe.ReplaceAllString(s, "")
	s = sectionTokenRe.ReplaceAllString(s, "")
	s = dayTokenRe.ReplaceAllString(s, "")
	return strings.Trim(strings.TrimSpace(s), ",;-")
}
