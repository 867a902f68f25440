package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/content/announcements/controller"
)

// AnnouncementPublicRoutes: pengumuman published untuk publik & wali.
func AnnouncementPublicRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAnnouncementController(db)

	ann := router.Group("/announcements")
	ann.Get("/", ctrl.ListPublished)
}

// AnnouncementAdminRoutes: kelola pengumuman (admin).
func AnnouncementAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAnnouncementController(db)

	ann := router.Group("/announcements")
	ann.Get("/", ctrl.ListAll)
	ann.Post("/", ctrl.Create)
	ann.Put("/:id", ctrl.Update)
	ann.Delete("/:id", ctrl.Delete)
}
