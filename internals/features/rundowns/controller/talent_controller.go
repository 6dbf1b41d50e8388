// file: internals/features/rundowns/controller/talent_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/farazuga/podcast-stories-sub000/internals/features/rundowns/dto"
	"github.com/farazuga/podcast-stories-sub000/internals/features/rundowns/service"
	helper "github.com/farazuga/podcast-stories-sub000/internals/helpers"
)

type TalentController struct {
	DB      *gorm.DB
	Service *service.TalentService
}

func NewTalentController(db *gorm.DB) *TalentController {
	return &TalentController{DB: db, Service: service.NewTalentService(db)}
}

/*
=========================================================

	LIST (grouped by role)
	GET /rundowns/:id/talent

=========================================================
*/
func (h *TalentController) List(c *fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	rundownID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	roster, err := h.Service.List(c.UserContext(), rundownID, actor)
	if err != nil {
		return respondServiceError(c, err)
	}
	return helper.JsonOK(c, "", roster)
}

/*
=========================================================

	ADD (cap 4, unique name)
	POST /rundowns/:id/talent

=========================================================
*/
func (h *TalentController) Add(c *fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	rundownID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.AddTalentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFieldErrors(err))
	}

	talent, err := h.Service.Add(c.UserContext(), rundownID, actor, req.Name, req.Role)
	if err != nil {
		return respondServiceError(c, err)
	}
	return helper.JsonCreated(c, "talent added", talent)
}

/*
=========================================================

	UPDATE (name / role / position)
	PATCH /talent/:id

=========================================================
*/
func (h *TalentController) Update(c *fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	talentID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateTalentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFieldErrors(err))
	}

	talent, err := h.Service.Update(c.UserContext(), talentID, actor, req.ToInput())
	if err != nil {
		return respondServiceError(c, err)
	}
	return helper.JsonUpdated(c, "talent updated", talent)
}

/*
=========================================================

	REORDER WITHIN ROLE
	PUT /rundowns/:id/talent/reorder

=========================================================
*/
func (h *TalentController) Reorder(c *fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	rundownID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.ReorderTalentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFieldErrors(err))
	}

	roster, err := h.Service.ReorderWithinRole(c.UserContext(), rundownID, actor, req.Role, req.OrderedIDs)
	if err != nil {
		return respondServiceError(c, err)
	}
	return helper.JsonUpdated(c, "talent reordered", roster)
}

/*
=========================================================

	DELETE (+ role-group compaction)
	DELETE /talent/:id

=========================================================
*/
func (h *TalentController) Delete(c *fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	talentID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.Service.Delete(c.UserContext(), talentID, actor); err != nil {
		return respondServiceError(c, err)
	}
	return helper.JsonDeleted(c, "talent deleted", fiber.Map{"talent_id": talentID})
}
