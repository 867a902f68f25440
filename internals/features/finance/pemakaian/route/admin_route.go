package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/finance/pemakaian/controller"
)

// PemakaianAdminRoutes: CRUD pemakaian dana
func PemakaianAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPemakaianController(db)

	pemakaian := r.Group("/pemakaian")
	pemakaian.Post("/", ctrl.CreatePemakaian)
	pemakaian.Get("/", ctrl.ListPemakaian)
	pemakaian.Put("/:id", ctrl.UpdatePemakaian)
	pemakaian.Delete("/:id", ctrl.DeletePemakaian)
}
