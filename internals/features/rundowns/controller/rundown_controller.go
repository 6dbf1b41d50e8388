// file: internals/features/rundowns/controller/rundown_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/farazuga/podcast-stories-sub000/internals/features/rundowns/dto"
	"github.com/farazuga/podcast-stories-sub000/internals/features/rundowns/service"
	helper "github.com/farazuga/podcast-stories-sub000/internals/helpers"
)

type RundownController struct {
	DB      *gorm.DB
	Service *service.RundownService
}

func NewRundownController(db *gorm.DB) *RundownController {
	return &RundownController{DB: db, Service: service.NewRundownService(db)}
}

/*
=========================================================

	LIST
	GET /rundowns

=========================================================
*/
func (h *RundownController) List(c *fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)
	filters := service.ListRundownsFilters{
		Status:          strings.TrimSpace(c.Query("status")),
		IncludeArchived: c.QueryBool("include_archived", false),
	}

	rows, total, err := h.Service.List(c.UserContext(), actor, filters, paging.Offset, paging.Limit)
	if err != nil {
		return respondServiceError(c, err)
	}
	return helper.JsonList(c, "", rows, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/*
=========================================================

	GET (composed view)
	GET /rundowns/:id

=========================================================
*/
func (h *RundownController) GetByID(c *fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	rundownID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	view, err := h.Service.Get(c.UserContext(), rundownID, actor)
	if err != nil {
		return respondServiceError(c, err)
	}
	return helper.JsonOK(c, "", view)
}

/*
=========================================================

	CREATE
	POST /rundowns

=========================================================
*/
func (h *RundownController) Create(c *fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}

	var req dto.CreateRundownRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFieldErrors(err))
	}

	rundown, err := h.Service.Create(c.UserContext(), actor, req.ToInput())
	if err != nil {
		return respondServiceError(c, err)
	}
	return helper.JsonCreated(c, "rundown created", rundown)
}

/*
=========================================================

	UPDATE (partial)
	PATCH /rundowns/:id

=========================================================
*/
func (h *RundownController) Update(c *fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	rundownID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateRundownRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFieldErrors(err))
	}

	rundown, err := h.Service.Update(c.UserContext(), rundownID, actor, req.ToInput())
	if err != nil {
		return respondServiceError(c, err)
	}
	return helper.JsonUpdated(c, "rundown updated", rundown)
}

/*
=========================================================

	ARCHIVE (soft delete)
	DELETE /rundowns/:id

=========================================================
*/
func (h *RundownController) Archive(c *fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	rundownID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	rundown, err := h.Service.Archive(c.UserContext(), rundownID, actor)
	if err != nil {
		return respondServiceError(c, err)
	}
	return helper.JsonDeleted(c, "rundown archived", rundown)
}

/*
=========================================================

	EXPORT (structured document for the renderer)
	GET /rundowns/:id/export

=========================================================
*/
func (h *RundownController) Export(c *fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	rundownID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	doc, err := h.Service.BuildDocument(c.UserContext(), rundownID, actor)
	if err != nil {
		return respondServiceError(c, err)
	}
	return helper.JsonOK(c, "", doc)
}
