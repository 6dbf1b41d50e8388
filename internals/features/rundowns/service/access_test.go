// file: internals/features/rundowns/service/access_test.go
package service

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/farazuga/podcast-stories-sub000/internals/constants"
	rundownModel "github.com/farazuga/podcast-stories-sub000/internals/features/rundowns/model"
)

// stubRoster answers class membership from in-memory maps, keeping the rule
// table tests free of any database.
type stubRoster struct {
	teacherOf map[uuid.UUID]uuid.UUID // teacher -> class they own
	enrolled  map[uuid.UUID]uuid.UUID // student -> class they joined
}

func (s stubRoster) IsTeacherOfClass(_ context.Context, teacherID, classID uuid.UUID) (bool, error) {
	return s.teacherOf[teacherID] == classID, nil
}

func (s stubRoster) IsStudentEnrolled(_ context.Context, studentID, classID uuid.UUID) (bool, error) {
	return s.enrolled[studentID] == classID, nil
}

func TestAccessRuleTable(t *testing.T) {
	t.Parallel()

	classID := uuid.New()
	otherClassID := uuid.New()

	creator := newTestActor(constants.RoleUser)
	admin := newTestActor(constants.RoleAdmin)
	classTeacher := newTestActor(constants.RoleTeacher)
	otherTeacher := newTestActor(constants.RoleTeacher)
	enrolledStudent := newTestActor(constants.RoleStudent)
	outsideStudent := newTestActor(constants.RoleStudent)
	stranger := newTestActor(constants.RoleUser)

	eval := NewRundownAccess(stubRoster{
		teacherOf: map[uuid.UUID]uuid.UUID{
			classTeacher.ID: classID,
			otherTeacher.ID: otherClassID,
		},
		enrolled: map[uuid.UUID]uuid.UUID{
			enrolledStudent.ID: classID,
			outsideStudent.ID:  otherClassID,
		},
	})

	shared := &rundownModel.RundownModel{
		RundownID:             uuid.New(),
		RundownCreatedBy:      creator.ID,
		RundownClassID:        &classID,
		RundownShareWithClass: true,
	}
	unshared := &rundownModel.RundownModel{
		RundownID:        uuid.New(),
		RundownCreatedBy: creator.ID,
		RundownClassID:   &classID,
	}
	classless := &rundownModel.RundownModel{
		RundownID:        uuid.New(),
		RundownCreatedBy: creator.ID,
	}

	cases := []struct {
		name     string
		rundown  *rundownModel.RundownModel
		actor    Actor
		wantView bool
		wantEdit bool
	}{
		{"admin edits anything", shared, admin, true, true},
		{"creator edits own", shared, creator, true, true},
		{"class teacher edits class rundown", unshared, classTeacher, true, true},
		{"other teacher denied", unshared, otherTeacher, false, false},
		{"teacher denied without class", classless, classTeacher, false, false},
		{"enrolled student views shared", shared, enrolledStudent, true, false},
		{"enrolled student denied unshared", unshared, enrolledStudent, false, false},
		{"outside student denied shared", shared, outsideStudent, false, false},
		{"stranger denied", shared, stranger, false, false},
	}

	ctx := context.Background()
	for _, tc := range cases {
		view, err := eval.CanView(ctx, tc.rundown, tc.actor)
		if err != nil {
			t.Fatalf("%s: CanView: %v", tc.name, err)
		}
		edit, err := eval.CanEdit(ctx, tc.rundown, tc.actor)
		if err != nil {
			t.Fatalf("%s: CanEdit: %v", tc.name, err)
		}
		if view != tc.wantView {
			t.Errorf("%s: CanView = %v, want %v", tc.name, view, tc.wantView)
		}
		if edit != tc.wantEdit {
			t.Errorf("%s: CanEdit = %v, want %v", tc.name, edit, tc.wantEdit)
		}
		// edit access always implies view access
		if edit && !view {
			t.Errorf("%s: edit granted without view", tc.name)
		}
	}
}

func TestFetchRundownReportsAbsenceBeforeAccess(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	svc := NewSegmentService(db)

	// an unknown rundown is NotFound for everyone, never AccessDenied
	_, err := svc.List(context.Background(), uuid.New(), newTestActor(constants.RoleUser))
	if err != ErrNotFound {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
