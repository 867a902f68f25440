package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/santri/santri/controller"
)

// SantriAdminRoutes: CRUD data santri (admin).
func SantriAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSantriAdminController(db)

	santri := router.Group("/santri")
	santri.Post("/", ctrl.CreateSantri)
	santri.Get("/", ctrl.ListSantri)
	santri.Put("/:id", ctrl.UpdateSantri)
	santri.Delete("/:id", ctrl.DeleteSantri)
}
