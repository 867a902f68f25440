package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/finance/syahriah/controller"
)

// SyahriahAdminRoutes: kelola tagihan + setoran tunai
func SyahriahAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSyahriahAdminController(db)

	syahriah := r.Group("/syahriah")
	syahriah.Post("/", ctrl.CreateSyahriah)
	syahriah.Post("/generate", ctrl.GenerateForPeriod)
	syahriah.Get("/", ctrl.ListSyahriah)
	syahriah.Post("/:id/pay", ctrl.MarkPaid)
}
