// file: internals/features/rundowns/dto/rundown_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/farazuga/podcast-stories-sub000/internals/features/rundowns/service"
)

/* =========================================================
   REQUEST DTO
   ========================================================= */

type CreateRundownRequest struct {
	Title                 string     `json:"rundown_title"                   validate:"required,max=255"`
	AirDate               *time.Time `json:"rundown_air_date"                validate:"omitempty"`
	TargetDurationSeconds *int       `json:"rundown_target_duration_seconds" validate:"omitempty,min=1"`
	ShareWithClass        bool       `json:"rundown_share_with_class"        validate:"omitempty"`
	ClassID               *uuid.UUID `json:"rundown_class_id"                validate:"omitempty"`
}

func (r CreateRundownRequest) ToInput() service.CreateRundownInput {
	return service.CreateRundownInput{
		Title:                 r.Title,
		AirDate:               r.AirDate,
		TargetDurationSeconds: r.TargetDurationSeconds,
		ShareWithClass:        r.ShareWithClass,
		ClassID:               r.ClassID,
	}
}

type UpdateRundownRequest struct {
	Title                 *string    `json:"rundown_title"                   validate:"omitempty,max=255"`
	AirDate               *time.Time `json:"rundown_air_date"                validate:"omitempty"`
	TargetDurationSeconds *int       `json:"rundown_target_duration_seconds" validate:"omitempty,min=1"`
	ShareWithClass        *bool      `json:"rundown_share_with_class"        validate:"omitempty"`
	ClassID               *uuid.UUID `json:"rundown_class_id"                validate:"omitempty"`
	DetachClass           bool       `json:"rundown_detach_class"            validate:"omitempty"`
	Status                *string    `json:"rundown_status"                  validate:"omitempty,oneof=draft in_progress archived"`
}

func (r UpdateRundownRequest) ToInput() service.UpdateRundownInput {
	return service.UpdateRundownInput{
		Title:                 r.Title,
		AirDate:               r.AirDate,
		TargetDurationSeconds: r.TargetDurationSeconds,
		ShareWithClass:        r.ShareWithClass,
		ClassID:               r.ClassID,
		DetachClass:           r.DetachClass,
		Status:                r.Status,
	}
}
