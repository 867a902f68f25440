package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/finance/rekap/controller"
)

// RekapAdminRoutes: baca & refresh rekap keuangan (admin).
func RekapAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewRekapAdminController(db)

	rekap := router.Group("/rekap")
	rekap.Get("/", ctrl.ListRekap)
	rekap.Post("/refresh", ctrl.RefreshRekap)
}
