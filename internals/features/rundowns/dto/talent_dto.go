// file: internals/features/rundowns/dto/talent_dto.go
package dto

import (
	"github.com/google/uuid"

	"github.com/farazuga/podcast-stories-sub000/internals/features/rundowns/service"
)

/* =========================================================
   REQUEST DTO
   ========================================================= */

type AddTalentRequest struct {
	Name string `json:"talent_name" validate:"required,max=100"`
	Role string `json:"talent_role" validate:"required,oneof=host guest"`
}

type UpdateTalentRequest struct {
	Name     *string `json:"talent_name"     validate:"omitempty,max=100"`
	Role     *string `json:"talent_role"     validate:"omitempty,oneof=host guest"`
	Position *int    `json:"talent_position" validate:"omitempty,min=0"`
}

func (r UpdateTalentRequest) ToInput() service.UpdateTalentInput {
	return service.UpdateTalentInput{
		Name:     r.Name,
		Role:     r.Role,
		Position: r.Position,
	}
}

type ReorderTalentRequest struct {
	Role       string      `json:"talent_role" validate:"required,oneof=host guest"`
	OrderedIDs []uuid.UUID `json:"talent_ids"  validate:"required,min=1,dive,required"`
}
