package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var clockRe = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*([AaPp][Mm])?$`)

// ParseTime converts a clock string into 24-hour "HH:MM" form.
// Accepted inputs: "H:MM" / "HH:MM" with an optional AM/PM suffix, or a
// range such as "9:00-10:30" (only the start is kept). Returns ok=false for
// anything unparseable; malformed times are a dropped field, not an error.
func ParseTime(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}

	// A range keeps only the start.
	if idx := strings.IndexAny(s, "-–"); idx >= 0 {
		s = strings.TrimSpace(s[:idx])
	}

	m := clockRe.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil || hour > 23 {
		return "", false
	}
	minute, err := strconv.Atoi(m[2])
	if err != nil || minute > 59 {
		return "", false
	}

	switch strings.ToUpper(m[3]) {
	case "PM":
		if hour < 12 {
			hour += 12
		}
	case "AM":
		if hour == 12 {
			hour = 0
		}
	}

	return fmt.Sprintf("%02d:%02d", hour, minute), true
}
