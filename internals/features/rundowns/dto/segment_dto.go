// file: internals/features/rundowns/dto/segment_dto.go
package dto

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/farazuga/podcast-stories-sub000/internals/features/rundowns/service"
)

/* =========================================================
   REQUEST DTO
   ========================================================= */

type CreateSegmentRequest struct {
	Title                string         `json:"segment_title"            validate:"required,max=255"`
	DurationSeconds      *int           `json:"segment_duration_seconds" validate:"omitempty,min=0"`
	Type                 string         `json:"segment_type"             validate:"omitempty,max=20"`
	Status               *string        `json:"segment_status"           validate:"omitempty,max=20"`
	Content              datatypes.JSON `json:"segment_content"          validate:"omitempty"`
	InsertAfterSegmentID *uuid.UUID     `json:"insert_after_segment_id"  validate:"omitempty"`
}

func (r CreateSegmentRequest) ToInput() service.InsertSegmentInput {
	return service.InsertSegmentInput{
		Title:                r.Title,
		DurationSeconds:      r.DurationSeconds,
		Type:                 r.Type,
		Status:               r.Status,
		Content:              r.Content,
		InsertAfterSegmentID: r.InsertAfterSegmentID,
	}
}

type UpdateSegmentRequest struct {
	Title           *string        `json:"segment_title"            validate:"omitempty,max=255"`
	DurationSeconds *int           `json:"segment_duration_seconds" validate:"omitempty,min=0"`
	Type            *string        `json:"segment_type"             validate:"omitempty,max=20"`
	Status          *string        `json:"segment_status"           validate:"omitempty,max=20"`
	Content         datatypes.JSON `json:"segment_content"          validate:"omitempty"`
	IsExpanded      *bool          `json:"segment_is_expanded"      validate:"omitempty"`
}

func (r UpdateSegmentRequest) ToInput() service.UpdateSegmentInput {
	return service.UpdateSegmentInput{
		Title:           r.Title,
		DurationSeconds: r.DurationSeconds,
		Type:            r.Type,
		Status:          r.Status,
		Content:         r.Content,
		IsExpanded:      r.IsExpanded,
	}
}

type ReorderSegmentsRequest struct {
	OrderedIDs []uuid.UUID `json:"segment_ids" validate:"required,min=1,dive,required"`
}
