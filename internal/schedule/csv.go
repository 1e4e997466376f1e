package schedule

import "strings"

// CSV column order is fixed and positional.
const (
	colCode = iota
	colName
	colProfessor
	colDays
	colStart
	colEnd
	colLocation
	colSection
)

// ParseCSV parses schedule CSV text into ClassRecords. The first line is
// treated as a header and skipped when it contains "class" (case-insensitive)
// or when its code column is literally "code", which catches exports that
// label the column "Code" instead of "Class Code". Rows whose code column is
// empty after trimming are dropped silently.
func ParseCSV(text string) []ClassRecord {
	lines := strings.Split(text, "\n")

	var records []ClassRecord
	first := true
	for _, rawLine := range lines {
		line := strings.TrimRight(rawLine, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		if first {
			first = false
			if isHeaderLine(line) {
				continue
			}
		}

		fields := splitCSVLine(line)
		code := strings.TrimSpace(field(fields, colCode))
		if code == "" {
			continue
		}

		rec := ClassRecord{
			ClassCode: code,
			ClassName: strings.TrimSpace(field(fields, colName)),
			Professor: strings.TrimSpace(field(fields, colProfessor)),
			Location:  strings.TrimSpace(field(fields, colLocation)),
			Section:   strings.TrimSpace(field(fields, colSection)),
		}
		rec.DaysOfWeek = ParseDays(field(fields, colDays))
		if start, ok := ParseTime(field(fields, colStart)); ok {
			rec.StartTime = start
		}
		if end, ok := ParseTime(field(fields, colEnd)); ok {
			rec.EndTime = end
		}

		records = append(records, rec)
	}

	return records
}

func isHeaderLine(line string) bool {
	if strings.Contains(strings.ToLower(line), "class") {
		return true
	}
	fields := splitCSVLine(line)
	code := strings.ToLower(strings.TrimSpace(field(fields, colCode)))
	return code == "code"
}

// splitCSVLine splits one CSV line on commas, honoring double-quoted fields.
// Quotes toggle an in-quotes flag and are not emitted; escaped quotes ("")
// are not supported.
func splitCSVLine(line string) []string {
	var fields []string
	var cur strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	fields = append(fields, cur.String())

	return fields
}

func field(fields []string, idx int) string {
	if idx < len(fields) {
		return fields[idx]
	}
	return ""
}
