package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/finance/ledger/controller"
)

// LedgerAdminRoutes: dashboard admin + alat cek konsistensi rekap
func LedgerAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewLedgerAdminController(db)

	ledger := r.Group("/ledger")
	ledger.Get("/dashboard", ctrl.GetDashboard)
	ledger.Get("/reconcile", ctrl.CheckReconciliation)
}
