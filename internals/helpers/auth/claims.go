// file: internals/helpers/auth/claims.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Locals keys populated by the JWT middleware. Must stay in sync with it.
const (
	LocUserID   = "user_id"
	LocUserRole = "userRole"
)

// GetUserIDFromToken returns the authenticated user's ID stored by the
// auth middleware, or 401 when it is missing/garbled.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals(LocUserID).(string)
	if !ok || strings.TrimSpace(raw) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - missing user ID")
	}
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - invalid user ID")
	}
	return id, nil
}

// GetRoleFromToken returns the role claim stored by the auth middleware.
func GetRoleFromToken(c *fiber.Ctx) (string, error) {
	role, ok := c.Locals(LocUserRole).(string)
	if !ok || strings.TrimSpace(role) == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - missing role information")
	}
	return strings.ToLower(strings.TrimSpace(role)), nil
}
