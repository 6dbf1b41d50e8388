// file: internals/features/rundowns/service/segments_test.go
package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/farazuga/podcast-stories-sub000/internals/constants"
	classModel "github.com/farazuga/podcast-stories-sub000/internals/features/classes/model"
	rundownModel "github.com/farazuga/podcast-stories-sub000/internals/features/rundowns/model"
)

func createTestClass(t *testing.T, db *gorm.DB, teacherID uuid.UUID, code string) *classModel.ClassModel {
	t.Helper()
	cls := classModel.ClassModel{
		ClassName:      "Podcast Lab",
		ClassCode:      code,
		ClassTeacherID: teacherID,
	}
	if err := db.Create(&cls).Error; err != nil {
		t.Fatalf("create class: %v", err)
	}
	return &cls
}

func enrollStudent(t *testing.T, db *gorm.DB, classID, studentID uuid.UUID) {
	t.Helper()
	err := db.Create(&classModel.ClassEnrollmentModel{
		ClassEnrollmentClassID: classID,
		ClassEnrollmentUserID:  studentID,
	}).Error
	if err != nil {
		t.Fatalf("enroll student: %v", err)
	}
}

func TestCreateRundownSeedsBoundarySegments(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	rundown := createTestRundown(t, db, newTestActor(constants.RoleTeacher))

	segments := segmentPositions(t, db, rundown.RundownID)
	if len(segments) != 2 {
		t.Fatalf("want 2 boundary segments, got %d", len(segments))
	}
	intro, outro := segments[0], segments[1]
	if intro.SegmentType != rundownModel.SegmentTypeIntro || !intro.SegmentIsPinned || intro.SegmentPosition != 0 {
		t.Errorf("bad intro: type=%s pinned=%v pos=%d", intro.SegmentType, intro.SegmentIsPinned, intro.SegmentPosition)
	}
	if outro.SegmentType != rundownModel.SegmentTypeOutro || !outro.SegmentIsPinned || outro.SegmentPosition != 1 {
		t.Errorf("bad outro: type=%s pinned=%v pos=%d", outro.SegmentType, outro.SegmentIsPinned, outro.SegmentPosition)
	}
}

func TestInsertSegmentDefaultsBeforeOutro(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	ctx := context.Background()
	creator := newTestActor(constants.RoleTeacher)
	rundown := createTestRundown(t, db, creator)
	svc := NewSegmentService(db)

	created, err := svc.Insert(ctx, rundown.RundownID, creator, InsertSegmentInput{Title: "Headlines"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if created.SegmentPosition != 1 {
		t.Errorf("want position 1 (before outro), got %d", created.SegmentPosition)
	}
	if created.SegmentDurationSeconds != 60 {
		t.Errorf("want default duration 60, got %d", created.SegmentDurationSeconds)
	}
	if created.SegmentType != rundownModel.SegmentTypeSegment {
		t.Errorf("want default type %q, got %q", rundownModel.SegmentTypeSegment, created.SegmentType)
	}

	segments := segmentPositions(t, db, rundown.RundownID)
	assertContiguous(t, segmentRanks(segments))
	if segments[len(segments)-1].SegmentType != rundownModel.SegmentTypeOutro {
		t.Errorf("outro no longer last")
	}
}

func TestInsertSegmentAfterAnchor(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	ctx := context.Background()
	creator := newTestActor(constants.RoleTeacher)
	rundown := createTestRundown(t, db, creator)
	svc := NewSegmentService(db)

	first, err := svc.Insert(ctx, rundown.RundownID, creator, InsertSegmentInput{Title: "First"})
	if err != nil {
		t.Fatalf("insert first: %v", err)
	}

	intro := segmentPositions(t, db, rundown.RundownID)[0]
	second, err := svc.Insert(ctx, rundown.RundownID, creator, InsertSegmentInput{
		Title:                "Second",
		InsertAfterSegmentID: &intro.SegmentID,
	})
	if err != nil {
		t.Fatalf("insert after anchor: %v", err)
	}
	if second.SegmentPosition != 1 {
		t.Errorf("want position 1 right after intro, got %d", second.SegmentPosition)
	}

	segments := segmentPositions(t, db, rundown.RundownID)
	assertContiguous(t, segmentRanks(segments))
	if segments[1].SegmentID != second.SegmentID || segments[2].SegmentID != first.SegmentID {
		t.Errorf("unexpected order after anchored insert")
	}

	// unknown anchor is NotFound
	missing := uuid.New()
	if _, err := svc.Insert(ctx, rundown.RundownID, creator, InsertSegmentInput{
		Title:                "Third",
		InsertAfterSegmentID: &missing,
	}); err != ErrNotFound {
		t.Errorf("want ErrNotFound for unknown anchor, got %v", err)
	}
}

func TestInsertSegmentAnchoredOnOutroStaysInside(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	ctx := context.Background()
	creator := newTestActor(constants.RoleTeacher)
	rundown := createTestRundown(t, db, creator)
	svc := NewSegmentService(db)

	outro := segmentPositions(t, db, rundown.RundownID)[1]
	created, err := svc.Insert(ctx, rundown.RundownID, creator, InsertSegmentInput{
		Title:                "Wrap",
		InsertAfterSegmentID: &outro.SegmentID,
	})
	if err != nil {
		t.Fatalf("insert with outro anchor: %v", err)
	}
	if created.SegmentPosition != 1 {
		t.Errorf("want the slot ahead of the outro, got position %d", created.SegmentPosition)
	}

	segments := segmentPositions(t, db, rundown.RundownID)
	assertContiguous(t, segmentRanks(segments))
	last := segments[len(segments)-1]
	if last.SegmentType != rundownModel.SegmentTypeOutro || !last.SegmentIsPinned {
		t.Errorf("outro no longer last: %+v", last)
	}
}

func TestInsertSegmentValidation(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	ctx := context.Background()
	creator := newTestActor(constants.RoleTeacher)
	rundown := createTestRundown(t, db, creator)
	svc := NewSegmentService(db)

	if _, err := svc.Insert(ctx, rundown.RundownID, creator, InsertSegmentInput{Title: "   "}); err != ErrInvalidArgument {
		t.Errorf("blank title: want ErrInvalidArgument, got %v", err)
	}
	bad := -5
	if _, err := svc.Insert(ctx, rundown.RundownID, creator, InsertSegmentInput{Title: "X", DurationSeconds: &bad}); err != ErrInvalidArgument {
		t.Errorf("negative duration: want ErrInvalidArgument, got %v", err)
	}
}

func TestUpdateSegmentNeverMovesIt(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	ctx := context.Background()
	creator := newTestActor(constants.RoleTeacher)
	rundown := createTestRundown(t, db, creator)
	svc := NewSegmentService(db)

	seg, err := svc.Insert(ctx, rundown.RundownID, creator, InsertSegmentInput{Title: "Interview"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	title := "Interview (final)"
	duration := 300
	status := rundownModel.SegmentStatusReady
	expanded := true
	updated, err := svc.Update(ctx, seg.SegmentID, creator, UpdateSegmentInput{
		Title:           &title,
		DurationSeconds: &duration,
		Status:          &status,
		IsExpanded:      &expanded,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.SegmentTitle != title || updated.SegmentDurationSeconds != 300 {
		t.Errorf("patch not applied: %+v", updated)
	}
	if updated.SegmentStatus != rundownModel.SegmentStatusReady || !updated.SegmentIsExpanded {
		t.Errorf("status/expanded not applied: %+v", updated)
	}
	if updated.SegmentPosition != seg.SegmentPosition || updated.SegmentIsPinned {
		t.Errorf("update changed position or pinned flag: %+v", updated)
	}
}

func TestReorderSegmentsKeepsBoundaries(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	ctx := context.Background()
	creator := newTestActor(constants.RoleTeacher)
	rundown := createTestRundown(t, db, creator)
	svc := NewSegmentService(db)

	a := mustInsertSegment(t, db, rundown.RundownID, creator, "A")
	b := mustInsertSegment(t, db, rundown.RundownID, creator, "B")

	segments := segmentPositions(t, db, rundown.RundownID)
	intro, outro := segments[0], segments[3]

	out, err := svc.Reorder(ctx, rundown.RundownID, creator, []uuid.UUID{
		intro.SegmentID, b.SegmentID, a.SegmentID, outro.SegmentID,
	})
	if err != nil {
		t.Fatalf("reorder: %v", err)
	}
	assertContiguous(t, segmentRanks(out))
	if out[1].SegmentID != b.SegmentID || out[2].SegmentID != a.SegmentID {
		t.Errorf("middle segments not swapped")
	}
}

func TestReorderSegmentsRejectsBadSets(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	ctx := context.Background()
	creator := newTestActor(constants.RoleTeacher)
	rundown := createTestRundown(t, db, creator)
	svc := NewSegmentService(db)

	a := mustInsertSegment(t, db, rundown.RundownID, creator, "A")
	b := mustInsertSegment(t, db, rundown.RundownID, creator, "B")

	before := segmentPositions(t, db, rundown.RundownID)
	intro, outro := before[0], before[3]

	bad := [][]uuid.UUID{
		{intro.SegmentID, a.SegmentID, b.SegmentID},                  // missing outro
		{intro.SegmentID, a.SegmentID, a.SegmentID, outro.SegmentID}, // duplicate
		{intro.SegmentID, a.SegmentID, uuid.New(), outro.SegmentID},  // foreign id
		{a.SegmentID, intro.SegmentID, b.SegmentID, outro.SegmentID}, // intro off slot 0
		{intro.SegmentID, a.SegmentID, outro.SegmentID, b.SegmentID}, // outro off last slot
		{outro.SegmentID, a.SegmentID, b.SegmentID, intro.SegmentID}, // boundaries swapped
	}
	for i, ids := range bad {
		if _, err := svc.Reorder(ctx, rundown.RundownID, creator, ids); err != ErrInvalidReorderSet {
			t.Errorf("case %d: want ErrInvalidReorderSet, got %v", i, err)
		}
	}

	// a rejected reorder leaves every rank untouched
	after := segmentPositions(t, db, rundown.RundownID)
	for i := range before {
		if before[i].SegmentID != after[i].SegmentID || before[i].SegmentPosition != after[i].SegmentPosition {
			t.Fatalf("ranks changed after rejected reorder")
		}
	}
}

func TestDuplicateSegmentStartsOver(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	ctx := context.Background()
	creator := newTestActor(constants.RoleTeacher)
	rundown := createTestRundown(t, db, creator)
	svc := NewSegmentService(db)

	status := rundownModel.SegmentStatusReady
	expanded := true
	src, err := svc.Insert(ctx, rundown.RundownID, creator, InsertSegmentInput{Title: "Quiz", Status: &status})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if _, err := svc.Update(ctx, src.SegmentID, creator, UpdateSegmentInput{IsExpanded: &expanded}); err != nil {
		t.Fatalf("expand: %v", err)
	}

	dup, err := svc.Duplicate(ctx, src.SegmentID, creator)
	if err != nil {
		t.Fatalf("duplicate: %v", err)
	}
	if dup.SegmentTitle != "Quiz (Copy)" {
		t.Errorf("want title 'Quiz (Copy)', got %q", dup.SegmentTitle)
	}
	if dup.SegmentStatus != rundownModel.SegmentStatusDraft || dup.SegmentIsPinned || dup.SegmentIsExpanded {
		t.Errorf("copy should start over as collapsed draft: %+v", dup)
	}
	if dup.SegmentPosition != src.SegmentPosition+1 {
		t.Errorf("copy not adjacent to source: src=%d copy=%d", src.SegmentPosition, dup.SegmentPosition)
	}
	assertContiguous(t, segmentRanks(segmentPositions(t, db, rundown.RundownID)))
}

func TestDuplicateOutroKeepsBoundaryLast(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	ctx := context.Background()
	creator := newTestActor(constants.RoleTeacher)
	rundown := createTestRundown(t, db, creator)
	svc := NewSegmentService(db)

	outro := segmentPositions(t, db, rundown.RundownID)[1]
	dup, err := svc.Duplicate(ctx, outro.SegmentID, creator)
	if err != nil {
		t.Fatalf("duplicate outro: %v", err)
	}
	if dup.SegmentIsPinned {
		t.Errorf("copy must not be pinned")
	}
	if dup.SegmentPosition != 1 {
		t.Errorf("want copy ahead of the outro, got position %d", dup.SegmentPosition)
	}

	segments := segmentPositions(t, db, rundown.RundownID)
	assertContiguous(t, segmentRanks(segments))
	last := segments[len(segments)-1]
	if last.SegmentID != outro.SegmentID || !last.SegmentIsPinned {
		t.Errorf("pinned outro no longer last: %+v", last)
	}
}

func TestDeleteSegmentCompactsAndUnassignsLinks(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	ctx := context.Background()
	creator := newTestActor(constants.RoleTeacher)
	rundown := createTestRundown(t, db, creator)
	svc := NewSegmentService(db)

	a := mustInsertSegment(t, db, rundown.RundownID, creator, "A")
	b := mustInsertSegment(t, db, rundown.RundownID, creator, "B")

	link := rundownModel.StoryLinkModel{
		StoryLinkRundownID: rundown.RundownID,
		StoryLinkStoryID:   uuid.New(),
		StoryLinkSegmentID: &a.SegmentID,
		StoryLinkTitle:     "Attached idea",
		StoryLinkAddedBy:   creator.ID,
	}
	if err := db.Create(&link).Error; err != nil {
		t.Fatalf("seed link: %v", err)
	}

	if err := svc.Delete(ctx, a.SegmentID, creator); err != nil {
		t.Fatalf("delete: %v", err)
	}

	segments := segmentPositions(t, db, rundown.RundownID)
	if len(segments) != 3 {
		t.Fatalf("want 3 segments after delete, got %d", len(segments))
	}
	assertContiguous(t, segmentRanks(segments))
	if segments[1].SegmentID != b.SegmentID {
		t.Errorf("survivor not compacted into the gap")
	}

	var reloaded rundownModel.StoryLinkModel
	if err := db.First(&reloaded, "story_link_id = ?", link.StoryLinkID).Error; err != nil {
		t.Fatalf("reload link: %v", err)
	}
	if reloaded.StoryLinkSegmentID != nil {
		t.Errorf("link should fall back to unassigned, still points at %s", *reloaded.StoryLinkSegmentID)
	}
}

func TestDeletePinnedSegmentRejected(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	ctx := context.Background()
	creator := newTestActor(constants.RoleTeacher)
	rundown := createTestRundown(t, db, creator)
	svc := NewSegmentService(db)

	intro := segmentPositions(t, db, rundown.RundownID)[0]
	if err := svc.Delete(ctx, intro.SegmentID, creator); err != ErrPinnedSegment {
		t.Fatalf("want ErrPinnedSegment, got %v", err)
	}
	if got := len(segmentPositions(t, db, rundown.RundownID)); got != 2 {
		t.Errorf("pinned segment was removed, %d left", got)
	}
}

func TestDeletePinnedSegmentChecksAccessFirst(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	ctx := context.Background()
	creator := newTestActor(constants.RoleTeacher)
	stranger := newTestActor(constants.RoleUser)
	rundown := createTestRundown(t, db, creator)
	svc := NewSegmentService(db)

	// an outsider must not learn which segments are pinned
	intro := segmentPositions(t, db, rundown.RundownID)[0]
	if err := svc.Delete(ctx, intro.SegmentID, stranger); err != ErrAccessDenied {
		t.Fatalf("want ErrAccessDenied, got %v", err)
	}
}

func TestClassTeacherEditsSharedRundown(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	ctx := context.Background()
	owner := newTestActor(constants.RoleTeacher)
	classTeacher := newTestActor(constants.RoleTeacher)

	cls := createTestClass(t, db, classTeacher.ID, "CD34")
	shared, err := NewRundownService(db).Create(ctx, owner, CreateRundownInput{
		Title:          "Joint Show",
		ShareWithClass: true,
		ClassID:        &cls.ClassID,
	})
	if err != nil {
		t.Fatalf("create shared rundown: %v", err)
	}

	// the roster lookup runs inside the write transaction
	svc := NewSegmentService(db)
	seg, err := svc.Insert(ctx, shared.RundownID, classTeacher, InsertSegmentInput{Title: "Warmup"})
	if err != nil {
		t.Fatalf("class teacher insert: %v", err)
	}
	if seg.SegmentPosition != 1 {
		t.Errorf("want position 1 (before outro), got %d", seg.SegmentPosition)
	}
}

func TestSegmentAccessEnforcement(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	ctx := context.Background()
	teacher := newTestActor(constants.RoleTeacher)
	student := newTestActor(constants.RoleStudent)
	stranger := newTestActor(constants.RoleUser)

	cls := createTestClass(t, db, teacher.ID, "AB12")
	enrollStudent(t, db, cls.ClassID, student.ID)

	rundowns := NewRundownService(db)
	shared, err := rundowns.Create(ctx, teacher, CreateRundownInput{
		Title:          "Class Show",
		ShareWithClass: true,
		ClassID:        &cls.ClassID,
	})
	if err != nil {
		t.Fatalf("create shared rundown: %v", err)
	}

	svc := NewSegmentService(db)

	// enrolled student may look but not touch
	if _, err := svc.List(ctx, shared.RundownID, student); err != nil {
		t.Errorf("enrolled student should view segments: %v", err)
	}
	if _, err := svc.Insert(ctx, shared.RundownID, student, InsertSegmentInput{Title: "Hijack"}); err != ErrAccessDenied {
		t.Errorf("student insert: want ErrAccessDenied, got %v", err)
	}

	// a stranger gets nothing
	if _, err := svc.List(ctx, shared.RundownID, stranger); err != ErrAccessDenied {
		t.Errorf("stranger list: want ErrAccessDenied, got %v", err)
	}
}
