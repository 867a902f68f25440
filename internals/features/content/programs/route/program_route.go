package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/content/programs/controller"
)

// ProgramPublicRoutes: program aktif untuk landing page.
func ProgramPublicRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewProgramController(db)

	programs := router.Group("/programs")
	programs.Get("/", ctrl.ListActive)
}

// ProgramAdminRoutes: kelola program (admin).
func ProgramAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewProgramController(db)

	programs := router.Group("/programs")
	programs.Get("/", ctrl.ListAll)
	programs.Post("/", ctrl.Create)
	programs.Put("/:id", ctrl.Update)
	programs.Delete("/:id", ctrl.Delete)
}
