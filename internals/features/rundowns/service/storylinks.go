// file: internals/features/rundowns/service/storylinks.go
package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	rundownModel "github.com/farazuga/podcast-stories-sub000/internals/features/rundowns/model"
	storyModel "github.com/farazuga/podcast-stories-sub000/internals/features/stories/model"
	storyService "github.com/farazuga/podcast-stories-sub000/internals/features/stories/service"
)

// StoryLookup is the slice of the story repository the linkage manager needs.
type StoryLookup interface {
	GetStory(ctx context.Context, storyID uuid.UUID) (*storyModel.StoryModel, error)
	ListVisible(ctx context.Context, viewerID uuid.UUID, isAdmin bool, f storyService.StoryFilters, offset, limit int) ([]storyModel.StoryModel, int64, error)
}

// StoryLinkService attaches point-in-time story snapshots to rundowns. Links
// are unordered (listed by attach time); the same source story may appear in
// many rundowns but only once per rundown.
type StoryLinkService struct {
	DB      *gorm.DB
	Stories StoryLookup
}

func NewStoryLinkService(db *gorm.DB) *StoryLinkService {
	return &StoryLinkService{
		DB:      db,
		Stories: storyService.NewStoryService(db),
	}
}

/* =========================================================
   BROWSE SOURCE STORIES
   ========================================================= */

func (s *StoryLinkService) ListAvailable(ctx context.Context, actor Actor, f storyService.StoryFilters, offset, limit int) ([]storyModel.StoryModel, int64, error) {
	return s.Stories.ListVisible(ctx, actor.ID, actor.IsAdmin(), f, offset, limit)
}

/* =========================================================
   LIST (per rundown)
   ========================================================= */

func (s *StoryLinkService) List(ctx context.Context, rundownID uuid.UUID, actor Actor) ([]rundownModel.StoryLinkModel, error) {
	r, err := fetchRundown(ctx, s.DB, rundownID)
	if err != nil {
		return nil, err
	}
	if err := requireView(ctx, s.DB, r, actor); err != nil {
		return nil, err
	}

	var links []rundownModel.StoryLinkModel
	if err := s.DB.WithContext(ctx).
		Where("story_link_rundown_id = ?", rundownID).
		Order("story_link_created_at ASC").
		Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

/* =========================================================
   ATTACH
   ========================================================= */

type AttachStoryInput struct {
	StoryID   uuid.UUID
	SegmentID *uuid.UUID
	Notes     string
}

func (s *StoryLinkService) Attach(ctx context.Context, rundownID uuid.UUID, actor Actor, in AttachStoryInput) (*rundownModel.StoryLinkModel, error) {
	if in.StoryID == uuid.Nil {
		return nil, ErrInvalidArgument
	}

	// resolve both aggregates before the ordering transaction starts; the
	// story read is snapshot-only and must not ride the rundown row lock
	if _, err := fetchRundown(ctx, s.DB, rundownID); err != nil {
		return nil, err
	}
	story, err := s.Stories.GetStory(ctx, in.StoryID)
	if err != nil {
		if errors.Is(err, storyService.ErrStoryNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !storyVisibleTo(story, actor) {
		return nil, ErrAccessDenied
	}

	var created rundownModel.StoryLinkModel
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r, err := lockRundown(tx, rundownID)
		if err != nil {
			return err
		}
		if err := requireEdit(ctx, tx, r, actor); err != nil {
			return err
		}

		var cnt int64
		if err := tx.Model(&rundownModel.StoryLinkModel{}).
			Where("story_link_rundown_id = ? AND story_link_story_id = ?", rundownID, in.StoryID).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return ErrDuplicateStory
		}

		if in.SegmentID != nil {
			if err := checkSegmentMembership(tx, rundownID, *in.SegmentID); err != nil {
				return err
			}
		}

		created = rundownModel.StoryLinkModel{
			StoryLinkRundownID:    rundownID,
			StoryLinkStoryID:      story.StoryID,
			StoryLinkSegmentID:    in.SegmentID,
			StoryLinkTitle:        story.StoryTitle,
			StoryLinkDescription:  story.StoryDescription,
			StoryLinkQuestions:    cloneJSON(story.StoryQuestions),
			StoryLinkInterviewees: append([]string(nil), story.StoryInterviewees...),
			StoryLinkTags:         append([]string(nil), story.StoryTags...),
			StoryLinkNotes:        strings.TrimSpace(in.Notes),
			StoryLinkAddedBy:      actor.ID,
		}
		return tx.Create(&created).Error
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

/* =========================================================
   UPDATE (notes / segment association / denormalized text)
   ========================================================= */

type UpdateStoryLinkInput struct {
	SegmentID     *uuid.UUID
	DetachSegment bool
	Notes         *string
	Title         *string
	Description   *string
	Questions     datatypes.JSON
}

func (s *StoryLinkService) Update(ctx context.Context, linkID uuid.UUID, actor Actor, in UpdateStoryLinkInput) (*rundownModel.StoryLinkModel, error) {
	var updated rundownModel.StoryLinkModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		link, err := fetchStoryLink(tx, linkID)
		if err != nil {
			return err
		}
		r, err := fetchRundown(ctx, tx, link.StoryLinkRundownID)
		if err != nil {
			return err
		}
		if err := requireEdit(ctx, tx, r, actor); err != nil {
			return err
		}

		patch := map[string]interface{}{}
		switch {
		case in.DetachSegment:
			patch["story_link_segment_id"] = nil
		case in.SegmentID != nil:
			if err := checkSegmentMembership(tx, link.StoryLinkRundownID, *in.SegmentID); err != nil {
				return err
			}
			patch["story_link_segment_id"] = *in.SegmentID
		}
		if in.Notes != nil {
			patch["story_link_notes"] = strings.TrimSpace(*in.Notes)
		}
		if in.Title != nil {
			t := strings.TrimSpace(*in.Title)
			if t == "" {
				return ErrInvalidArgument
			}
			patch["story_link_title"] = t
		}
		if in.Description != nil {
			patch["story_link_description"] = *in.Description
		}
		if in.Questions != nil {
			patch["story_link_questions"] = in.Questions
		}

		if len(patch) > 0 {
			if err := tx.Model(&rundownModel.StoryLinkModel{}).
				Where("story_link_id = ?", linkID).
				Updates(patch).Error; err != nil {
				return err
			}
		}
		return tx.First(&updated, "story_link_id = ?", linkID).Error
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

/* =========================================================
   REMOVE (no renumbering; links are unordered)
   ========================================================= */

func (s *StoryLinkService) Remove(ctx context.Context, linkID uuid.UUID, actor Actor) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		link, err := fetchStoryLink(tx, linkID)
		if err != nil {
			return err
		}
		r, err := fetchRundown(ctx, tx, link.StoryLinkRundownID)
		if err != nil {
			return err
		}
		if err := requireEdit(ctx, tx, r, actor); err != nil {
			return err
		}
		return tx.Delete(&rundownModel.StoryLinkModel{}, "story_link_id = ?", linkID).Error
	})
}

/* =========================================================
   internals
   ========================================================= */

// storyVisibleTo mirrors the browse rule: approved, own, or admin.
func storyVisibleTo(story *storyModel.StoryModel, actor Actor) bool {
	if actor.IsAdmin() {
		return true
	}
	if story.StoryUploadedBy == actor.ID {
		return true
	}
	return story.StoryApprovalStatus == storyModel.StoryApprovalApproved
}

func fetchStoryLink(tx *gorm.DB, linkID uuid.UUID) (*rundownModel.StoryLinkModel, error) {
	var link rundownModel.StoryLinkModel
	if err := tx.First(&link, "story_link_id = ?", linkID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &link, nil
}

func checkSegmentMembership(tx *gorm.DB, rundownID, segmentID uuid.UUID) error {
	var cnt int64
	if err := tx.Model(&rundownModel.SegmentModel{}).
		Where("segment_id = ? AND segment_rundown_id = ?", segmentID, rundownID).
		Count(&cnt).Error; err != nil {
		return err
	}
	if cnt == 0 {
		return ErrInvalidArgument
	}
	return nil
}

func cloneJSON(src datatypes.JSON) datatypes.JSON {
	if src == nil {
		return nil
	}
	out := make(datatypes.JSON, len(src))
	copy(out, src)
	return out
}
