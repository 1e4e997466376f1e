package service

import (
	"testing"
	"time"
)

func TestCurrentSemester(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{
			name: "january is spring",
			date: time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC),
			want: "Spring 2026",
		},
		{
			name: "may is still spring",
			date: time.Date(2026, time.May, 31, 0, 0, 0, 0, time.UTC),
			want: "Spring 2026",
		},
		{
			name: "june starts summer",
			date: time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC),
			want: "Summer 2026",
		},
		{
			name: "august is still summer",
			date: time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC),
			want: "Summer 2026",
		},
		{
			name: "september starts fall",
			date: time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC),
			want: "Fall 2026",
		},
		{
			name: "december is fall of the same year",
			date: time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC),
			want: "Fall 2025",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CurrentSemester(tt.date); got != tt.want {
				t.Errorf("CurrentSemester(%v) = %q, want %q", tt.date, got, tt.want)
			}
		})
	}
}

func TestCurrentTermCode(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{
			name: "spring",
			date: time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
			want: "2026SP",
		},
		{
			name: "summer",
			date: time.Date(2026, time.July, 4, 0, 0, 0, 0, time.UTC),
			want: "2026SU",
		},
		{
			name: "fall",
			date: time.Date(2026, time.October, 20, 0, 0, 0, 0, time.UTC),
			want: "2026FA",
		},
		{
			name: "year comes from the date",
			date: time.Date(2031, time.February, 1, 0, 0, 0, 0, time.UTC),
			want: "2031SP",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CurrentTermCode(tt.date); got != tt.want {
				t.Errorf("CurrentTermCode(%v) = %q, want %q", tt.date, got, tt.want)
			}
		})
	}
}
