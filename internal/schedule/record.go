// Package schedule contains the pure parsing half of the schedule ingestion
// pipeline: file-format parsers (.ics, .csv), the OCR text structurer, and the
// day/time/code normalizers they share. Nothing in this package touches the
// network or the database.
package schedule

// ClassRecord is the flat, legacy record shape produced by the file parsers.
// Every field is optional except ClassCode, which is the dedup and lookup key
// once normalized. Records whose code ends up empty are discarded by the
// parsers themselves.
type ClassRecord struct {
	ClassCode  string   `json:"class_code"`
	ClassName  string   `json:"class_name"`
	Professor  string   `json:"professor"`
	DaysOfWeek []string `json:"days_of_week"`
	StartTime  string   `json:"start_time"`
	EndTime    string   `json:"end_time"`
	Location   string   `json:"location"`
	Semester   string   `json:"semester"`
	Section    string   `json:"section"`
}
