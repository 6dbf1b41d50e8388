// file: internals/features/rundowns/controller/story_link_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/farazuga/podcast-stories-sub000/internals/features/rundowns/dto"
	"github.com/farazuga/podcast-stories-sub000/internals/features/rundowns/service"
	storyService "github.com/farazuga/podcast-stories-sub000/internals/features/stories/service"
	helper "github.com/farazuga/podcast-stories-sub000/internals/helpers"
)

type StoryLinkController struct {
	DB      *gorm.DB
	Service *service.StoryLinkService
}

func NewStoryLinkController(db *gorm.DB) *StoryLinkController {
	return &StoryLinkController{DB: db, Service: service.NewStoryLinkService(db)}
}

/*
=========================================================

	BROWSE SOURCE STORIES
	GET /story-links/available

=========================================================
*/
func (h *StoryLinkController) ListAvailable(c *fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)
	filters := storyService.StoryFilters{
		Keyword: strings.TrimSpace(c.Query("q")),
		Tag:     strings.TrimSpace(c.Query("tag")),
	}

	stories, total, err := h.Service.ListAvailable(c.UserContext(), actor, filters, paging.Offset, paging.Limit)
	if err != nil {
		return respondServiceError(c, err)
	}
	return helper.JsonList(c, "", stories, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/*
=========================================================

	LIST (per rundown, by attach time)
	GET /rundowns/:id/story-links

=========================================================
*/
func (h *StoryLinkController) List(c *fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	rundownID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	links, err := h.Service.List(c.UserContext(), rundownID, actor)
	if err != nil {
		return respondServiceError(c, err)
	}
	return helper.JsonOK(c, "", links)
}

/*
=========================================================

	ATTACH (snapshot at attach time)
	POST /rundowns/:id/story-links

=========================================================
*/
func (h *StoryLinkController) Attach(c *fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	rundownID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.AttachStoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFieldErrors(err))
	}

	link, err := h.Service.Attach(c.UserContext(), rundownID, actor, req.ToInput())
	if err != nil {
		return respondServiceError(c, err)
	}
	return helper.JsonCreated(c, "story attached", link)
}

/*
=========================================================

	UPDATE (notes / segment association / denormalized text)
	PATCH /story-links/:id

=========================================================
*/
func (h *StoryLinkController) Update(c *fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	linkID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateStoryLinkRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFieldErrors(err))
	}

	link, err := h.Service.Update(c.UserContext(), linkID, actor, req.ToInput())
	if err != nil {
		return respondServiceError(c, err)
	}
	return helper.JsonUpdated(c, "story link updated", link)
}

/*
=========================================================

	REMOVE (unordered collection, no renumbering)
	DELETE /story-links/:id

=========================================================
*/
func (h *StoryLinkController) Remove(c *fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	linkID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.Service.Remove(c.UserContext(), linkID, actor); err != nil {
		return respondServiceError(c, err)
	}
	return helper.JsonDeleted(c, "story link removed", fiber.Map{"story_link_id": linkID})
}
