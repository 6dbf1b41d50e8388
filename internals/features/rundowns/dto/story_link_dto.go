// file: internals/features/rundowns/dto/story_link_dto.go
package dto

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/farazuga/podcast-stories-sub000/internals/features/rundowns/service"
)

/* =========================================================
   REQUEST DTO
   ========================================================= */

type AttachStoryRequest struct {
	StoryID   uuid.UUID  `json:"story_link_story_id"   validate:"required"`
	SegmentID *uuid.UUID `json:"story_link_segment_id" validate:"omitempty"`
	Notes     string     `json:"story_link_notes"      validate:"omitempty"`
}

func (r AttachStoryRequest) ToInput() service.AttachStoryInput {
	return service.AttachStoryInput{
		StoryID:   r.StoryID,
		SegmentID: r.SegmentID,
		Notes:     r.Notes,
	}
}

type UpdateStoryLinkRequest struct {
	SegmentID     *uuid.UUID     `json:"story_link_segment_id"    validate:"omitempty"`
	DetachSegment bool           `json:"story_link_detach_segment" validate:"omitempty"`
	Notes         *string        `json:"story_link_notes"          validate:"omitempty"`
	Title         *string        `json:"story_link_title"          validate:"omitempty,max=255"`
	Description   *string        `json:"story_link_description"    validate:"omitempty"`
	Questions     datatypes.JSON `json:"story_link_questions"      validate:"omitempty"`
}

func (r UpdateStoryLinkRequest) ToInput() service.UpdateStoryLinkInput {
	return service.UpdateStoryLinkInput{
		SegmentID:     r.SegmentID,
		DetachSegment: r.DetachSegment,
		Notes:         r.Notes,
		Title:         r.Title,
		Description:   r.Description,
		Questions:     r.Questions,
	}
}
