// file: internals/features/rundowns/service/ordering_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/farazuga/podcast-stories-sub000/internals/constants"
	rundownModel "github.com/farazuga/podcast-stories-sub000/internals/features/rundowns/model"
)

func TestCheckReorderSet(t *testing.T) {
	t.Parallel()

	a, b, c := uuid.New(), uuid.New(), uuid.New()

	cases := []struct {
		name     string
		current  []uuid.UUID
		supplied []uuid.UUID
		wantErr  bool
	}{
		{"identity", []uuid.UUID{a, b, c}, []uuid.UUID{a, b, c}, false},
		{"permutation", []uuid.UUID{a, b, c}, []uuid.UUID{c, a, b}, false},
		{"empty", nil, nil, false},
		{"missing member", []uuid.UUID{a, b, c}, []uuid.UUID{a, b}, true},
		{"extra member", []uuid.UUID{a, b}, []uuid.UUID{a, b, c}, true},
		{"duplicate", []uuid.UUID{a, b, c}, []uuid.UUID{a, b, b}, true},
		{"foreign id", []uuid.UUID{a, b, c}, []uuid.UUID{a, b, uuid.New()}, true},
	}

	for _, tc := range cases {
		err := checkReorderSet(tc.current, tc.supplied)
		if tc.wantErr && !errors.Is(err, ErrInvalidReorderSet) {
			t.Errorf("%s: want ErrInvalidReorderSet, got %v", tc.name, err)
		}
		if !tc.wantErr && err != nil {
			t.Errorf("%s: unexpected error %v", tc.name, err)
		}
	}
}

func TestAssignRanksBulkUpdate(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	ctx := context.Background()
	creator := newTestActor(constants.RoleTeacher)
	rundown := createTestRundown(t, db, creator)

	svc := NewTalentService(db)
	var ids []uuid.UUID
	for _, name := range []string{"Ana", "Ben", "Cleo"} {
		row, err := svc.Add(ctx, rundown.RundownID, creator, name, rundownModel.TalentRoleGuest)
		if err != nil {
			t.Fatalf("add %s: %v", name, err)
		}
		ids = append(ids, row.TalentID)
	}

	// reverse order in a single statement
	reversed := []uuid.UUID{ids[2], ids[1], ids[0]}
	if err := assignRanks(db, "rundown_talent", "talent_id", "talent_position", reversed); err != nil {
		t.Fatalf("assignRanks: %v", err)
	}

	var rows []rundownModel.TalentModel
	if err := db.Where("talent_rundown_id = ?", rundown.RundownID).
		Order("talent_position ASC").
		Find(&rows).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("want 3 rows, got %d", len(rows))
	}
	for i, row := range rows {
		if row.TalentID != reversed[i] {
			t.Errorf("slot %d: want %s, got %s", i, reversed[i], row.TalentID)
		}
		if row.TalentPosition != i {
			t.Errorf("slot %d: want position %d, got %d", i, i, row.TalentPosition)
		}
	}
}

func TestAssignRanksEmptyIsNoop(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	if err := assignRanks(db, "rundown_talent", "talent_id", "talent_position", nil); err != nil {
		t.Fatalf("empty assignRanks: %v", err)
	}
}
