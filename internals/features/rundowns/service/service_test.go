// file: internals/features/rundowns/service/service_test.go
package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	classModel "github.com/farazuga/podcast-stories-sub000/internals/features/classes/model"
	rundownModel "github.com/farazuga/podcast-stories-sub000/internals/features/rundowns/model"
	storyModel "github.com/farazuga/podcast-stories-sub000/internals/features/stories/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// a single in-memory connection; more would each get their own database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&rundownModel.RundownModel{},
		&rundownModel.SegmentModel{},
		&rundownModel.TalentModel{},
		&rundownModel.StoryLinkModel{},
		&classModel.ClassModel{},
		&classModel.ClassEnrollmentModel{},
		&storyModel.StoryModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTestActor(role string) Actor {
	return Actor{ID: uuid.New(), Role: role}
}

// createTestRundown creates a rundown (with its two pinned boundary segments)
// owned by the given actor.
func createTestRundown(t *testing.T, db *gorm.DB, actor Actor) *rundownModel.RundownModel {
	t.Helper()
	r, err := NewRundownService(db).Create(context.Background(), actor, CreateRundownInput{
		Title: "Morning Show",
	})
	if err != nil {
		t.Fatalf("create rundown: %v", err)
	}
	return r
}

func mustInsertSegment(t *testing.T, db *gorm.DB, rundownID uuid.UUID, actor Actor, title string) *rundownModel.SegmentModel {
	t.Helper()
	seg, err := NewSegmentService(db).Insert(context.Background(), rundownID, actor, InsertSegmentInput{Title: title})
	if err != nil {
		t.Fatalf("insert segment %q: %v", title, err)
	}
	return seg
}

func mustAddTalent(t *testing.T, db *gorm.DB, rundownID uuid.UUID, actor Actor, name, role string) *rundownModel.TalentModel {
	t.Helper()
	row, err := NewTalentService(db).Add(context.Background(), rundownID, actor, name, role)
	if err != nil {
		t.Fatalf("add talent %q: %v", name, err)
	}
	return row
}

// segmentPositions returns position → title for assertion convenience.
func segmentPositions(t *testing.T, db *gorm.DB, rundownID uuid.UUID) []rundownModel.SegmentModel {
	t.Helper()
	var segments []rundownModel.SegmentModel
	if err := db.Where("segment_rundown_id = ?", rundownID).
		Order("segment_position ASC").
		Find(&segments).Error; err != nil {
		t.Fatalf("load segments: %v", err)
	}
	return segments
}

// assertContiguous fails unless the ranks are exactly 0..N-1 in slice order.
func assertContiguous(t *testing.T, ranks []int) {
	t.Helper()
	for i, r := range ranks {
		if r != i {
			t.Fatalf("ranks not contiguous: got %v", ranks)
		}
	}
}

func segmentRanks(segments []rundownModel.SegmentModel) []int {
	out := make([]int, len(segments))
	for i, s := range segments {
		out[i] = s.SegmentPosition
	}
	return out
}
