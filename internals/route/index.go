// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/farazuga/podcast-stories-sub000/internals/constants"
	rundownRoute "github.com/farazuga/podcast-stories-sub000/internals/features/rundowns/route"
	authMiddleware "github.com/farazuga/podcast-stories-sub000/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== PRIVATE (authenticated) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u", authMiddleware.AuthMiddleware())

	log.Println("[INFO] Mounting Rundown routes...")
	rundownRoute.RundownRoutes(private, db)

	// ===================== ADMIN (role-gated) =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("rundown administration"), constants.AdminOnly...),
	)

	log.Println("[INFO] Mounting Rundown admin routes...")
	rundownRoute.RundownAdminRoutes(admin, db)
}
