package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/finance/syahriah/controller"
)

// SyahriahUserRoutes: tagihan milik wali + pembayaran online
func SyahriahUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSyahriahUserController(db)

	syahriah := r.Group("/syahriah")
	syahriah.Get("/", ctrl.ListMine)
	syahriah.Post("/:id/pay", ctrl.PayOnline)
}

// SyahriahAllRoutes: webhook Midtrans (tanpa auth, dipanggil gateway)
func SyahriahAllRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSyahriahUserController(db)

	r.Post("/syahriah/notification", ctrl.HandleMidtransNotification)
}
