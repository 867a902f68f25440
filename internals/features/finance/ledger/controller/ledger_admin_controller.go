// 📁 controller/ledger_admin_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/finance/ledger/dto"
	ledger "pesantrenku_backend/internals/features/finance/ledger/service"
	helper "pesantrenku_backend/internals/helpers"
)

type LedgerAdminController struct {
	DB         *gorm.DB
	Aggregator *ledger.Aggregator
	Reconciler *ledger.Reconciler
}

func NewLedgerAdminController(db *gorm.DB) *LedgerAdminController {
	return &LedgerAdminController{
		DB:         db,
		Aggregator: ledger.NewAggregator(db),
		Reconciler: ledger.NewReconciler(db),
	}
}

// 🟢 GET /api/a/ledger/dashboard?period=YYYY-MM
// Dashboard admin: rekap + hitung ulang + flag freshness. Selisih pada
// periode tertutup tampil sebagai warning integritas data.
func (ctrl *LedgerAdminController) GetDashboard(c *fiber.Ctx) error {
	period, err := ledger.ParsePeriodFilter(c.Query("period"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format periode harus YYYY-MM")
	}

	// "all" tidak punya baris rekap tunggal → langsung hitung live
	if period.IsAll() {
		res, err := ctrl.Aggregator.Aggregate(c.UserContext(), ledger.PeriodAll, ledger.Scope{})
		if err != nil {
			return mapLedgerError(c, err)
		}
		return helper.Success(c, "Ringkasan seluruh periode berhasil diambil", dto.WaliDashboardResponse{
			Period:    string(ledger.PeriodAll),
			Freshness: string(ledger.FreshnessLive),
			Summary:   res,
		})
	}

	rep, err := ctrl.Reconciler.CheckPeriod(c.UserContext(), period)
	if err != nil {
		return mapLedgerError(c, err)
	}
	return helper.Success(c, "Dashboard keuangan berhasil diambil", dto.NewAdminDashboardResponse(rep))
}

// 🟢 GET /api/a/ledger/reconcile?period=YYYY-MM
// Cek konsistensi rekap vs hitung ulang untuk satu periode (alat audit).
func (ctrl *LedgerAdminController) CheckReconciliation(c *fiber.Ctx) error {
	period, err := ledger.ParsePeriod(c.Query("period"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format periode harus YYYY-MM")
	}

	rep, err := ctrl.Reconciler.CheckPeriod(c.UserContext(), period)
	if err != nil {
		return mapLedgerError(c, err)
	}
	return helper.Success(c, "Pemeriksaan rekap selesai", dto.NewAdminDashboardResponse(rep))
}

func mapLedgerError(c *fiber.Ctx, err error) error {
	if errors.Is(err, ledger.ErrSourceUnavailable) {
		return helper.Error(c, fiber.StatusServiceUnavailable, "Sumber data keuangan sedang tidak bisa diakses")
	}
	if errors.Is(err, ledger.ErrInvalidTimestamp) {
		return helper.Error(c, fiber.StatusBadRequest, "Format periode tidak valid")
	}
	return helper.Error(c, fiber.StatusInternalServerError, err.Error())
}
