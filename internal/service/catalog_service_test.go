package service

import (
	"testing"

	"github.com/campuslink/campuslink-backend/internal/model"
)

func TestDepartmentForCode(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{
			name: "computer science",
			code: "CS201",
			want: "Computer Science",
		},
		{
			name: "multi letter prefix",
			code: "MATH2940",
			want: "Mathematics",
		},
		{
			name: "prefix with suffix letter",
			code: "PHYS1112L",
			want: "Physics",
		},
		{
			name: "unknown prefix passes through",
			code: "XYZZY101",
			want: "XYZZY",
		},
		{
			name: "no letter prefix",
			code: "1010",
			want: "",
		},
		{
			name: "empty",
			code: "",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DepartmentForCode(tt.code); got != tt.want {
				t.Errorf("DepartmentForCode(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestHasSectionIdentity(t *testing.T) {
	tests := []struct {
		name string
		req  model.MatchClassRequest
		want bool
	}{
		{
			name: "code only",
			req:  model.MatchClassRequest{ClassCode: "CS 201"},
			want: false,
		},
		{
			name: "professor",
			req:  model.MatchClassRequest{ClassCode: "CS 201", Professor: "Lee"},
			want: true,
		},
		{
			name: "semester",
			req:  model.MatchClassRequest{ClassCode: "CS 201", Semester: "Fall 2026"},
			want: true,
		},
		{
			name: "days",
			req:  model.MatchClassRequest{ClassCode: "CS 201", Days: []string{"Monday"}},
			want: true,
		},
		{
			name: "start time",
			req:  model.MatchClassRequest{ClassCode: "CS 201", StartTime: "09:00"},
			want: true,
		},
		{
			name: "end time alone",
			req:  model.MatchClassRequest{ClassCode: "CS 201", EndTime: "10:15"},
			want: true,
		},
		{
			name: "location",
			req:  model.MatchClassRequest{ClassCode: "CS 201", Location: "Tyler 101"},
			want: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hasSectionIdentity(&tt.req); got != tt.want {
				t.Errorf("hasSectionIdentity(%+v) = %v, want %v", tt.req, got, tt.want)
			}
		})
	}
}
