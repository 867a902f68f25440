package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	announcementRoute "pesantrenku_backend/internals/features/content/announcements/route"
	programRoute "pesantrenku_backend/internals/features/content/programs/route"
	testimonialRoute "pesantrenku_backend/internals/features/content/testimonials/route"
	donationRoute "pesantrenku_backend/internals/features/finance/donations/route"
	syahriahRoute "pesantrenku_backend/internals/features/finance/syahriah/route"
	authRoute "pesantrenku_backend/internals/features/users/auth/route"
)

// PublicRoutes: tanpa autentikasi — landing page, donasi tamu,
// register/login, dan webhook notifikasi Midtrans.
func PublicRoutes(r fiber.Router, db *gorm.DB) {
	authRoute.AuthPublicRoutes(r, db)

	announcementRoute.AnnouncementPublicRoutes(r, db)
	programRoute.ProgramPublicRoutes(r, db)
	testimonialRoute.TestimonialPublicRoutes(r, db)

	// Donasi tamu + webhook Midtrans (donasi & syahriah)
	donationRoute.DonationAllRoutes(r, db)
	syahriahRoute.SyahriahAllRoutes(r, db)
}
