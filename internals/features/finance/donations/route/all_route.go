package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/finance/donations/controller"
)

// DonationAllRoutes: endpoint publik (donasi online + webhook Midtrans)
func DonationAllRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDonationController(db)

	donations := r.Group("/donations")
	donations.Post("/", ctrl.CreateDonation)
	donations.Post("/notification", ctrl.HandleMidtransNotification)
}
