// file: internals/features/rundowns/route/rundown_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/farazuga/podcast-stories-sub000/internals/features/rundowns/controller"
)

// RundownRoutes mounts the rundown resource family on an authenticated group.
// Fine-grained view/edit rules are decided per rundown by the access
// evaluator, not by route-level role gates.
func RundownRoutes(r fiber.Router, db *gorm.DB) {
	rundownCtrl := controller.NewRundownController(db)
	segmentCtrl := controller.NewSegmentController(db)
	talentCtrl := controller.NewTalentController(db)
	storyLinkCtrl := controller.NewStoryLinkController(db)

	// rundowns
	rundowns := r.Group("/rundowns")
	rundowns.Get("/", rundownCtrl.List)
	rundowns.Post("/", rundownCtrl.Create)
	rundowns.Get("/:id", rundownCtrl.GetByID)
	rundowns.Patch("/:id", rundownCtrl.Update)
	rundowns.Delete("/:id", rundownCtrl.Archive)
	rundowns.Get("/:id/export", rundownCtrl.Export)

	// segments
	rundowns.Get("/:id/segments", segmentCtrl.List)
	rundowns.Post("/:id/segments", segmentCtrl.Create)
	rundowns.Put("/:id/segments/reorder", segmentCtrl.Reorder)

	segments := r.Group("/segments")
	segments.Patch("/:id", segmentCtrl.Update)
	segments.Delete("/:id", segmentCtrl.Delete)
	segments.Post("/:id/duplicate", segmentCtrl.Duplicate)

	// talent
	rundowns.Get("/:id/talent", talentCtrl.List)
	rundowns.Post("/:id/talent", talentCtrl.Add)
	rundowns.Put("/:id/talent/reorder", talentCtrl.Reorder)

	talent := r.Group("/talent")
	talent.Patch("/:id", talentCtrl.Update)
	talent.Delete("/:id", talentCtrl.Delete)

	// story links
	rundowns.Get("/:id/story-links", storyLinkCtrl.List)
	rundowns.Post("/:id/story-links", storyLinkCtrl.Attach)

	storyLinks := r.Group("/story-links")
	storyLinks.Get("/available", storyLinkCtrl.ListAvailable)
	storyLinks.Patch("/:id", storyLinkCtrl.Update)
	storyLinks.Delete("/:id", storyLinkCtrl.Remove)
}

// RundownAdminRoutes mounts the read-only oversight surface. The group is
// role-gated before these handlers run; the evaluator then grants admins
// access to every rundown.
func RundownAdminRoutes(r fiber.Router, db *gorm.DB) {
	rundownCtrl := controller.NewRundownController(db)

	rundowns := r.Group("/rundowns")
	rundowns.Get("/", rundownCtrl.List)
	rundowns.Get("/:id", rundownCtrl.GetByID)
	rundowns.Get("/:id/export", rundownCtrl.Export)
}
