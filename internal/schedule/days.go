package schedule

import "strings"

// Weekday names in canonical output form.
var weekdayNames = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// icalByDay maps RRULE BYDAY two-letter codes to weekday names.
var icalByDay = map[string]string{
	"SU": "Sunday",
	"MO": "Monday",
	"TU": "Tuesday",
	"WE": "Wednesday",
	"TH": "Thursday",
	"FR": "Friday",
	"SA": "Saturday",
}

// letterDays maps single-character day codes used in contiguous strings like
// "MWF". The registration-system convention uses R for Thursday; a bare T is
// always Tuesday on this path. Callers that need Thursday must either use R
// or go through the named-token path with "TH"/"Thu".
var letterDays = map[byte]string{
	'M': "Monday",
	'T': "Tuesday",
	'W': "Wednesday",
	'R': "Thursday",
	'F': "Friday",
	'S': "Saturday",
	'U': "Sunday",
}

// namedDays resolves full names and 2-3 letter abbreviations, lower-cased.
var namedDays = map[string]string{
	"sunday": "Sunday", "sun": "Sunday", "su": "Sunday",
	"monday": "Monday", "mon": "Monday", "mo": "Monday",
	"tuesday": "Tuesday", "tues": "Tuesday", "tue": "Tuesday", "tu": "Tuesday",
	"wednesday": "Wednesday", "wed": "Wednesday", "we": "Wednesday",
	"thursday": "Thursday", "thurs": "Thursday", "thur": "Thursday", "thu": "Thursday", "th": "Thursday",
	"friday": "Friday", "fri": "Friday", "fr": "Friday",
	"saturday": "Saturday", "sat": "Saturday", "sa": "Saturday",
}

// ParseDays converts a day-of-week string into canonical weekday names.
// Accepted inputs:
//   - comma-separated full or abbreviated names: "Monday, Wed, Thu"
//   - a contiguous letter-code string: "MWF", "TR"
//
// Unrecognized tokens are dropped silently. Output order follows input order
// with duplicates removed.
func ParseDays(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	var days []string
	appendDay := func(name string) {
		for _, d := range days {
			if d == name {
				return
			}
		}
		days = append(days, name)
	}

	if strings.Contains(s, ",") {
		for _, part := range strings.Split(s, ",") {
			if name, ok := namedDays[strings.ToLower(strings.TrimSpace(part))]; ok {
				appendDay(name)
			}
		}
		return days
	}

	// A single token may still be a name or abbreviation ("Thursday", "TH").
	if name, ok := namedDays[strings.ToLower(s)]; ok {
		return []string{name}
	}

	// Letter-scan path: one day per character.
	upper := strings.ToUpper(s)
	for i := 0; i < len(upper); i++ {
		if name, ok := letterDays[upper[i]]; ok {
			appendDay(name)
		}
	}
	return days
}
