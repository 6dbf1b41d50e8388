// file: internals/features/rundowns/controller/respond.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/farazuga/podcast-stories-sub000/internals/features/rundowns/service"
	helper "github.com/farazuga/podcast-stories-sub000/internals/helpers"
	helperAuth "github.com/farazuga/podcast-stories-sub000/internals/helpers/auth"
)

// actorFromCtx builds the engine actor from the JWT locals.
func actorFromCtx(c *fiber.Ctx) (service.Actor, error) {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return service.Actor{}, err
	}
	role, err := helperAuth.GetRoleFromToken(c)
	if err != nil {
		return service.Actor{}, err
	}
	return service.Actor{ID: userID, Role: role}, nil
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, helper.JsonError(c, fiber.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

// respondServiceError maps the engine taxonomy onto HTTP statuses and stable
// error codes. Anything unrecognized is a store failure → 500.
func respondServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrAccessDenied):
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrInvalidArgument),
		errors.Is(err, service.ErrShareRequiresClass):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrPinnedSegment),
		errors.Is(err, service.ErrDuplicateTalent),
		errors.Is(err, service.ErrDuplicateStory):
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, service.ErrTalentLimit):
		return helper.JsonErrorWithCode(c, fiber.StatusConflict, "LIMIT_REACHED", err.Error())
	case errors.Is(err, service.ErrInvalidReorderSet):
		return helper.JsonErrorWithCode(c, fiber.StatusConflict, "INVALID_REORDER_SET", err.Error())
	default:
		log.Printf("[ERROR] rundown engine: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "internal error")
	}
}
