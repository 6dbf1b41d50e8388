// file: internals/features/rundowns/service/segments.go
package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	rundownModel "github.com/farazuga/podcast-stories-sub000/internals/features/rundowns/model"
)

// SegmentService owns the ordered segment list of a rundown. Every mutation
// that touches ordering locks the rundown row and runs in one transaction.
type SegmentService struct {
	DB *gorm.DB
}

func NewSegmentService(db *gorm.DB) *SegmentService {
	return &SegmentService{DB: db}
}

/* =========================================================
   LIST
   ========================================================= */

func (s *SegmentService) List(ctx context.Context, rundownID uuid.UUID, actor Actor) ([]rundownModel.SegmentModel, error) {
	r, err := fetchRundown(ctx, s.DB, rundownID)
	if err != nil {
		return nil, err
	}
	if err := requireView(ctx, s.DB, r, actor); err != nil {
		return nil, err
	}

	var segments []rundownModel.SegmentModel
	if err := s.DB.WithContext(ctx).
		Where("segment_rundown_id = ?", rundownID).
		Order("segment_position ASC").
		Find(&segments).Error; err != nil {
		return nil, err
	}
	return segments, nil
}

/* =========================================================
   INSERT
   ========================================================= */

type InsertSegmentInput struct {
	Title                string
	DurationSeconds      *int
	Type                 string
	Status               *string
	Content              datatypes.JSON
	InsertAfterSegmentID *uuid.UUID
}

// Insert places a new segment after the given anchor, or — without an anchor —
// at the end of the editable region: a pinned trailing segment always stays
// last.
func (s *SegmentService) Insert(ctx context.Context, rundownID uuid.UUID, actor Actor, in InsertSegmentInput) (*rundownModel.SegmentModel, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, ErrInvalidArgument
	}
	segType := strings.TrimSpace(in.Type)
	if segType == "" {
		segType = rundownModel.SegmentTypeSegment
	}
	duration := 60
	if in.DurationSeconds != nil {
		if *in.DurationSeconds < 0 {
			return nil, ErrInvalidArgument
		}
		duration = *in.DurationSeconds
	}
	status := rundownModel.SegmentStatusDraft
	if in.Status != nil && strings.TrimSpace(*in.Status) != "" {
		status = strings.TrimSpace(*in.Status)
	}

	var created rundownModel.SegmentModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r, err := lockRundown(tx, rundownID)
		if err != nil {
			return err
		}
		if err := requireEdit(ctx, tx, r, actor); err != nil {
			return err
		}

		siblings, err := loadSegments(tx, rundownID)
		if err != nil {
			return err
		}

		position := len(siblings)
		if in.InsertAfterSegmentID != nil {
			anchor := findSegment(siblings, *in.InsertAfterSegmentID)
			if anchor == nil {
				return ErrNotFound
			}
			position = anchor.SegmentPosition + 1
		}
		// a pinned trailing segment keeps the last slot, whatever the anchor
		if last := trailingPinned(siblings); last != nil && position > last.SegmentPosition {
			position = last.SegmentPosition
		}

		if err := shiftSegmentsUp(tx, rundownID, position); err != nil {
			return err
		}

		created = rundownModel.SegmentModel{
			SegmentRundownID:       rundownID,
			SegmentTitle:           title,
			SegmentDurationSeconds: duration,
			SegmentType:            segType,
			SegmentPosition:        position,
			SegmentStatus:          status,
			SegmentContent:         in.Content,
		}
		return tx.Create(&created).Error
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

/* =========================================================
   UPDATE (patch; position and pinned never change here)
   ========================================================= */

type UpdateSegmentInput struct {
	Title           *string
	DurationSeconds *int
	Type            *string
	Status          *string
	Content         datatypes.JSON
	IsExpanded      *bool
}

func (s *SegmentService) Update(ctx context.Context, segmentID uuid.UUID, actor Actor, in UpdateSegmentInput) (*rundownModel.SegmentModel, error) {
	var updated rundownModel.SegmentModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		seg, err := fetchSegment(tx, segmentID)
		if err != nil {
			return err
		}
		r, err := fetchRundown(ctx, tx, seg.SegmentRundownID)
		if err != nil {
			return err
		}
		if err := requireEdit(ctx, tx, r, actor); err != nil {
			return err
		}

		patch := map[string]interface{}{}
		if in.Title != nil {
			t := strings.TrimSpace(*in.Title)
			if t == "" {
				return ErrInvalidArgument
			}
			patch["segment_title"] = t
		}
		if in.DurationSeconds != nil {
			if *in.DurationSeconds < 0 {
				return ErrInvalidArgument
			}
			patch["segment_duration_seconds"] = *in.DurationSeconds
		}
		if in.Type != nil && strings.TrimSpace(*in.Type) != "" {
			patch["segment_type"] = strings.TrimSpace(*in.Type)
		}
		if in.Status != nil && strings.TrimSpace(*in.Status) != "" {
			patch["segment_status"] = strings.TrimSpace(*in.Status)
		}
		if in.Content != nil {
			patch["segment_content"] = in.Content
		}
		if in.IsExpanded != nil {
			patch["segment_is_expanded"] = *in.IsExpanded
		}

		if len(patch) > 0 {
			if err := tx.Model(&rundownModel.SegmentModel{}).
				Where("segment_id = ?", segmentID).
				Updates(patch).Error; err != nil {
				return err
			}
		}
		return tx.First(&updated, "segment_id = ?", segmentID).Error
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

/* =========================================================
   REORDER (full permutation)
   ========================================================= */

// Reorder applies a caller-supplied permutation of the full sibling set.
// Pinned boundary segments must keep their first/last slots.
func (s *SegmentService) Reorder(ctx context.Context, rundownID uuid.UUID, actor Actor, orderedIDs []uuid.UUID) ([]rundownModel.SegmentModel, error) {
	var out []rundownModel.SegmentModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r, err := lockRundown(tx, rundownID)
		if err != nil {
			return err
		}
		if err := requireEdit(ctx, tx, r, actor); err != nil {
			return err
		}

		siblings, err := loadSegments(tx, rundownID)
		if err != nil {
			return err
		}
		currentIDs := make([]uuid.UUID, len(siblings))
		byID := make(map[uuid.UUID]*rundownModel.SegmentModel, len(siblings))
		for i := range siblings {
			currentIDs[i] = siblings[i].SegmentID
			byID[siblings[i].SegmentID] = &siblings[i]
		}
		if err := checkReorderSet(currentIDs, orderedIDs); err != nil {
			return err
		}

		// pinned boundaries stay put: nothing may be reordered past them
		if len(siblings) > 0 {
			if first := &siblings[0]; first.SegmentIsPinned && orderedIDs[0] != first.SegmentID {
				return ErrInvalidReorderSet
			}
			if last := trailingPinned(siblings); last != nil && orderedIDs[len(orderedIDs)-1] != last.SegmentID {
				return ErrInvalidReorderSet
			}
			for i, id := range orderedIDs {
				if byID[id].SegmentIsPinned && i != 0 && i != len(orderedIDs)-1 {
					return ErrInvalidReorderSet
				}
			}
		}

		if err := assignRanks(tx, "segments", "segment_id", "segment_position", orderedIDs); err != nil {
			return err
		}

		return tx.Where("segment_rundown_id = ?", rundownID).
			Order("segment_position ASC").
			Find(&out).Error
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

/* =========================================================
   DUPLICATE
   ========================================================= */

// Duplicate clones a segment right after its source. The copy starts over:
// Draft status, never pinned, collapsed, title suffixed " (Copy)".
func (s *SegmentService) Duplicate(ctx context.Context, segmentID uuid.UUID, actor Actor) (*rundownModel.SegmentModel, error) {
	var copySeg rundownModel.SegmentModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		src, err := fetchSegment(tx, segmentID)
		if err != nil {
			return err
		}
		r, err := lockRundown(tx, src.SegmentRundownID)
		if err != nil {
			return err
		}
		if err := requireEdit(ctx, tx, r, actor); err != nil {
			return err
		}

		siblings, err := loadSegments(tx, src.SegmentRundownID)
		if err != nil {
			return err
		}
		position := src.SegmentPosition + 1
		// the copy may not land behind a pinned trailing segment
		if last := trailingPinned(siblings); last != nil && position > last.SegmentPosition {
			position = last.SegmentPosition
		}
		if err := shiftSegmentsUp(tx, src.SegmentRundownID, position); err != nil {
			return err
		}

		copySeg = rundownModel.SegmentModel{
			SegmentRundownID:       src.SegmentRundownID,
			SegmentTitle:           src.SegmentTitle + " (Copy)",
			SegmentDurationSeconds: src.SegmentDurationSeconds,
			SegmentType:            src.SegmentType,
			SegmentPosition:        position,
			SegmentStatus:          rundownModel.SegmentStatusDraft,
			SegmentContent:         src.SegmentContent,
			SegmentIsPinned:        false,
			SegmentIsExpanded:      false,
		}
		return tx.Create(&copySeg).Error
	})
	if err != nil {
		return nil, err
	}
	return &copySeg, nil
}

/* =========================================================
   DELETE (+ compaction)
   ========================================================= */

func (s *SegmentService) Delete(ctx context.Context, segmentID uuid.UUID, actor Actor) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		seg, err := fetchSegment(tx, segmentID)
		if err != nil {
			return err
		}
		r, err := lockRundown(tx, seg.SegmentRundownID)
		if err != nil {
			return err
		}
		// access first: callers without edit rights never learn pinned state
		if err := requireEdit(ctx, tx, r, actor); err != nil {
			return err
		}
		if seg.SegmentIsPinned {
			return ErrPinnedSegment
		}

		// story links pointing at this segment fall back to "unassigned"
		// instead of being silently orphaned
		if err := tx.Model(&rundownModel.StoryLinkModel{}).
			Where("story_link_segment_id = ?", segmentID).
			Update("story_link_segment_id", nil).Error; err != nil {
			return err
		}

		if err := tx.Delete(&rundownModel.SegmentModel{}, "segment_id = ?", segmentID).Error; err != nil {
			return err
		}

		// compact the remaining siblings back to 0..N-1
		remaining, err := loadSegments(tx, seg.SegmentRundownID)
		if err != nil {
			return err
		}
		ids := make([]uuid.UUID, len(remaining))
		for i := range remaining {
			ids[i] = remaining[i].SegmentID
		}
		return assignRanks(tx, "segments", "segment_id", "segment_position", ids)
	})
}

/* =========================================================
   internals
   ========================================================= */

func loadSegments(tx *gorm.DB, rundownID uuid.UUID) ([]rundownModel.SegmentModel, error) {
	var segments []rundownModel.SegmentModel
	err := tx.Where("segment_rundown_id = ?", rundownID).
		Order("segment_position ASC").
		Find(&segments).Error
	return segments, err
}

func fetchSegment(tx *gorm.DB, segmentID uuid.UUID) (*rundownModel.SegmentModel, error) {
	var seg rundownModel.SegmentModel
	if err := tx.First(&seg, "segment_id = ?", segmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &seg, nil
}

func findSegment(siblings []rundownModel.SegmentModel, id uuid.UUID) *rundownModel.SegmentModel {
	for i := range siblings {
		if siblings[i].SegmentID == id {
			return &siblings[i]
		}
	}
	return nil
}

// trailingPinned returns the pinned segment holding the last slot, if any.
func trailingPinned(siblings []rundownModel.SegmentModel) *rundownModel.SegmentModel {
	if len(siblings) == 0 {
		return nil
	}
	last := &siblings[len(siblings)-1]
	if last.SegmentIsPinned {
		return last
	}
	return nil
}

func shiftSegmentsUp(tx *gorm.DB, rundownID uuid.UUID, fromPosition int) error {
	return tx.Model(&rundownModel.SegmentModel{}).
		Where("segment_rundown_id = ? AND segment_position >= ?", rundownID, fromPosition).
		Update("segment_position", gorm.Expr("segment_position + 1")).Error
}
