package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	announcementRoute "pesantrenku_backend/internals/features/content/announcements/route"
	programRoute "pesantrenku_backend/internals/features/content/programs/route"
	testimonialRoute "pesantrenku_backend/internals/features/content/testimonials/route"
	donationRoute "pesantrenku_backend/internals/features/finance/donations/route"
	ledgerRoute "pesantrenku_backend/internals/features/finance/ledger/route"
	pemakaianRoute "pesantrenku_backend/internals/features/finance/pemakaian/route"
	rekapRoute "pesantrenku_backend/internals/features/finance/rekap/route"
	syahriahRoute "pesantrenku_backend/internals/features/finance/syahriah/route"
	santriRoute "pesantrenku_backend/internals/features/santri/santri/route"
	authRoute "pesantrenku_backend/internals/features/users/auth/route"
	userRoute "pesantrenku_backend/internals/features/users/user/route"
)

// AdminRoutes: seluruh pengelolaan pesantren — akun, santri,
// keuangan (syahriah, donasi, pemakaian, rekap, dashboard), konten.
func AdminRoutes(r fiber.Router, db *gorm.DB) {
	authRoute.AuthProtectedRoutes(r, db)
	userRoute.UserAdminRoutes(r, db)
	santriRoute.SantriAdminRoutes(r, db)

	syahriahRoute.SyahriahAdminRoutes(r, db)
	donationRoute.DonationAdminRoutes(r, db)
	pemakaianRoute.PemakaianAdminRoutes(r, db)
	rekapRoute.RekapAdminRoutes(r, db)
	ledgerRoute.LedgerAdminRoutes(r, db)

	announcementRoute.AnnouncementAdminRoutes(r, db)
	programRoute.ProgramAdminRoutes(r, db)
	testimonialRoute.TestimonialAdminRoutes(r, db)
}
