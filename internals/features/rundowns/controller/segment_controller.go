// file: internals/features/rundowns/controller/segment_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/farazuga/podcast-stories-sub000/internals/features/rundowns/dto"
	"github.com/farazuga/podcast-stories-sub000/internals/features/rundowns/service"
	helper "github.com/farazuga/podcast-stories-sub000/internals/helpers"
)

type SegmentController struct {
	DB      *gorm.DB
	Service *service.SegmentService
}

func NewSegmentController(db *gorm.DB) *SegmentController {
	return &SegmentController{DB: db, Service: service.NewSegmentService(db)}
}

/*
=========================================================

	LIST
	GET /rundowns/:id/segments

=========================================================
*/
func (h *SegmentController) List(c *fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	rundownID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	segments, err := h.Service.List(c.UserContext(), rundownID, actor)
	if err != nil {
		return respondServiceError(c, err)
	}
	return helper.JsonOK(c, "", segments)
}

/*
=========================================================

	INSERT
	POST /rundowns/:id/segments

=========================================================
*/
func (h *SegmentController) Create(c *fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	rundownID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.CreateSegmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFieldErrors(err))
	}

	segment, err := h.Service.Insert(c.UserContext(), rundownID, actor, req.ToInput())
	if err != nil {
		return respondServiceError(c, err)
	}
	return helper.JsonCreated(c, "segment created", segment)
}

/*
=========================================================

	UPDATE (partial; never touches position or pinned)
	PATCH /segments/:id

=========================================================
*/
func (h *SegmentController) Update(c *fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	segmentID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateSegmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFieldErrors(err))
	}

	segment, err := h.Service.Update(c.UserContext(), segmentID, actor, req.ToInput())
	if err != nil {
		return respondServiceError(c, err)
	}
	return helper.JsonUpdated(c, "segment updated", segment)
}

/*
=========================================================

	REORDER (full permutation of siblings)
	PUT /rundowns/:id/segments/reorder

=========================================================
*/
func (h *SegmentController) Reorder(c *fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	rundownID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.ReorderSegmentsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFieldErrors(err))
	}

	segments, err := h.Service.Reorder(c.UserContext(), rundownID, actor, req.OrderedIDs)
	if err != nil {
		return respondServiceError(c, err)
	}
	return helper.JsonUpdated(c, "segments reordered", segments)
}

/*
=========================================================

	DUPLICATE
	POST /segments/:id/duplicate

=========================================================
*/
func (h *SegmentController) Duplicate(c *fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	segmentID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	segment, err := h.Service.Duplicate(c.UserContext(), segmentID, actor)
	if err != nil {
		return respondServiceError(c, err)
	}
	return helper.JsonCreated(c, "segment duplicated", segment)
}

/*
=========================================================

	DELETE (+ sibling compaction)
	DELETE /segments/:id

=========================================================
*/
func (h *SegmentController) Delete(c *fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	segmentID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.Service.Delete(c.UserContext(), segmentID, actor); err != nil {
		return respondServiceError(c, err)
	}
	return helper.JsonDeleted(c, "segment deleted", fiber.Map{"segment_id": segmentID})
}
