package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/finance/donations/controller"
)

// DonationAdminRoutes: entri manual + daftar donasi
func DonationAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDonationAdminController(db)

	donations := r.Group("/donations")
	donations.Post("/manual", ctrl.CreateManualDonation)
	donations.Get("/", ctrl.ListDonations)
}
