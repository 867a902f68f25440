package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/finance/ledger/controller"
)

// LedgerUserRoutes: dashboard keuangan wali (live, scoped)
func LedgerUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewLedgerUserController(db)

	ledger := r.Group("/ledger")
	ledger.Get("/dashboard", ctrl.GetDashboard)
}
