package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/santri/santri/controller"
)

// SantriUserRoutes: wali melihat santri miliknya sendiri.
func SantriUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSantriUserController(db)

	santri := router.Group("/santri")
	santri.Get("/", ctrl.ListMine)
}
