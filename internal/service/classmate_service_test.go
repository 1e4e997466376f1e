package service

import (
	"reflect"
	"testing"

	"github.com/google/uuid"

	"github.com/campuslink/campuslink-backend/internal/model"
	"github.com/campuslink/campuslink-backend/internal/repository"
)

func TestFoldClassmates(t *testing.T) {
	alice := model.Profile{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Name: "Alice"}
	bob := model.Profile{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Name: "Bob"}
	csID := uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa")
	mathID := uuid.MustParse("bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb")

	rows := []repository.ClassmateRow{
		{Profile: alice, ClassID: csID, ClassCode: "CS201", ClassName: "Data Structures"},
		{Profile: bob, ClassID: csID, ClassCode: "CS201", ClassName: "Data Structures"},
		{Profile: alice, ClassID: mathID, ClassCode: "MATH2940", ClassName: "Linear Algebra"},
	}

	got := foldClassmates(rows)

	want := []model.Classmate{
		{
			UserID:  alice.ID,
			Profile: alice,
			SharedClasses: []model.SharedClass{
				{ClassID: csID, ClassCode: "CS201", ClassName: "Data Structures"},
				{ClassID: mathID, ClassCode: "MATH2940", ClassName: "Linear Algebra"},
			},
		},
		{
			UserID:  bob.ID,
			Profile: bob,
			SharedClasses: []model.SharedClass{
				{ClassID: csID, ClassCode: "CS201", ClassName: "Data Structures"},
			},
		},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("foldClassmates() = %+v, want %+v", got, want)
	}
}

func TestFoldClassmatesEmpty(t *testing.T) {
	got := foldClassmates(nil)
	if len(got) != 0 {
		t.Errorf("expected no classmates, got %d", len(got))
	}
}
