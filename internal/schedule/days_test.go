package schedule

import (
	"reflect"
	"testing"
)

func TestParseDays(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "letter codes",
			in:   "MWF",
			want: []string{"Monday", "Wednesday", "Friday"},
		},
		{
			name: "tuesday thursday letter codes",
			in:   "TR",
			want: []string{"Tuesday", "Thursday"},
		},
		{
			name: "comma separated full names",
			in:   "Monday, Wednesday, Friday",
			want: []string{"Monday", "Wednesday", "Friday"},
		},
		{
			name: "comma separated abbreviations",
			in:   "Mon, Tues, Thu",
			want: []string{"Monday", "Tuesday", "Thursday"},
		},
		{
			name: "single named token resolves before letter scan",
			in:   "TH",
			want: []string{"Thursday"},
		},
		{
			name: "single full name",
			in:   "Thursday",
			want: []string{"Thursday"},
		},
		{
			name: "duplicates removed",
			in:   "MMW",
			want: []string{"Monday", "Wednesday"},
		},
		{
			name: "unknown tokens dropped",
			in:   "Mon, Someday",
			want: []string{"Monday"},
		},
		{
			name: "empty",
			in:   "",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseDays(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseDays(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"2:30 PM", "14:30", true},
		{"9:00-10:30", "09:00", true},
		{"9:00 AM", "09:00", true},
		{"12:00 AM", "00:00", true},
		{"12:15 PM", "12:15", true},
		{"14:05", "14:05", true},
		{"garbage", "", false},
		{"25:00", "", false},
		{"9:75", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseTime(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseTime(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestNormalizeClassCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"cs - 201", "CS201"},
		{"CS 201", "CS201"},
		{"MATH221", "MATH221"},
		{"phys-101a", "PHYS101A"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := NormalizeClassCode(tt.in); got != tt.want {
				t.Errorf("NormalizeClassCode(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
