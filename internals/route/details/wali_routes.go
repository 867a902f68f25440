package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	testimonialRoute "pesantrenku_backend/internals/features/content/testimonials/route"
	ledgerRoute "pesantrenku_backend/internals/features/finance/ledger/route"
	syahriahRoute "pesantrenku_backend/internals/features/finance/syahriah/route"
	santriRoute "pesantrenku_backend/internals/features/santri/santri/route"
	authRoute "pesantrenku_backend/internals/features/users/auth/route"
)

// WaliRoutes: dashboard keuangan anak, tagihan syahriah, profil.
func WaliRoutes(r fiber.Router, db *gorm.DB) {
	authRoute.AuthProtectedRoutes(r, db)

	santriRoute.SantriUserRoutes(r, db)
	syahriahRoute.SyahriahUserRoutes(r, db)
	ledgerRoute.LedgerUserRoutes(r, db)

	testimonialRoute.TestimonialUserRoutes(r, db)
}
