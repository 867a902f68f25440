// 📁 controller/ledger_user_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/finance/ledger/dto"
	ledger "pesantrenku_backend/internals/features/finance/ledger/service"
	helper "pesantrenku_backend/internals/helpers"
)

type LedgerUserController struct {
	DB         *gorm.DB
	Aggregator *ledger.Aggregator
}

func NewLedgerUserController(db *gorm.DB) *LedgerUserController {
	return &LedgerUserController{DB: db, Aggregator: ledger.NewAggregator(db)}
}

// 🟢 GET /api/w/ledger/dashboard?period=YYYY-MM|all
// Dashboard keuangan wali: selalu hitung live, syahriah di-scope ke santri
// milik wali yang login. Donasi & pemakaian tetap angka lembaga.
func (ctrl *LedgerUserController) GetDashboard(c *fiber.Ctx) error {
	userIDStr, _ := c.Locals("user_id").(string)
	waliID, err := uuid.Parse(userIDStr)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User ID tidak valid")
	}

	period, err := ledger.ParsePeriodFilter(c.Query("period"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format periode harus YYYY-MM atau all")
	}

	// Ambil santri milik wali untuk scope syahriah
	var santriIDs []uuid.UUID
	if err := ctrl.DB.WithContext(c.UserContext()).
		Table("santri").
		Where("santri_wali_user_id = ? AND santri_deleted_at IS NULL", waliID).
		Pluck("santri_id", &santriIDs).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data santri")
	}
	if len(santriIDs) == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Belum ada santri yang terhubung dengan akun ini")
	}

	res, err := ctrl.Aggregator.Aggregate(c.UserContext(), period, ledger.Scope{SantriIDs: santriIDs})
	if err != nil {
		if errors.Is(err, ledger.ErrSourceUnavailable) {
			return helper.Error(c, fiber.StatusServiceUnavailable, "Sumber data keuangan sedang tidak bisa diakses")
		}
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	return helper.Success(c, "Ringkasan keuangan berhasil diambil", dto.NewWaliDashboardResponse(period, res))
}
