package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ledger "pesantrenku_backend/internals/features/finance/ledger/service"
	"pesantrenku_backend/internals/features/finance/rekap/model"
	"pesantrenku_backend/internals/features/finance/rekap/service"
	helper "pesantrenku_backend/internals/helpers"
)

type RekapAdminController struct {
	DB *gorm.DB
}

func NewRekapAdminController(db *gorm.DB) *RekapAdminController {
	return &RekapAdminController{DB: db}
}

// 📄 GET /api/a/rekap?period=2025-07&category=total
// Tanpa period: semua baris, terbaru dulu. Category opsional.
func (ctrl *RekapAdminController) ListRekap(c *fiber.Ctx) error {
	tx := ctrl.DB.WithContext(c.Context()).Model(&model.RekapModel{})

	if raw := c.Query("period"); raw != "" {
		period, err := ledger.ParsePeriod(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Format periode tidak valid (YYYY-MM)")
		}
		tx = tx.Where("rekap_period = ?", string(period))
	}
	if cat := c.Query("category"); cat != "" {
		if !ledger.Category(cat).Valid() {
			return helper.Error(c, fiber.StatusBadRequest, "Kategori tidak dikenal (dues|donation|total)")
		}
		tx = tx.Where("rekap_category = ?", cat)
	}

	var rows []model.RekapModel
	if err := tx.Order("rekap_period DESC, rekap_category ASC").Find(&rows).Error; err != nil {
		log.Printf("[ERROR] Gagal ambil rekap: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data rekap")
	}

	return helper.Success(c, "Data rekap berhasil diambil", rows)
}

// 🔄 POST /api/a/rekap/refresh?period=2025-07
// Tanpa period: refresh semua periode yang pernah ada transaksinya.
func (ctrl *RekapAdminController) RefreshRekap(c *fiber.Ctx) error {
	raw := c.Query("period")

	if raw == "" {
		if err := service.RefreshAll(c.Context(), ctrl.DB); err != nil {
			log.Printf("[ERROR] Refresh semua rekap gagal: %v", err)
			return mapRefreshError(c, err)
		}
		return helper.Success(c, "Semua rekap berhasil diperbarui", nil)
	}

	period, err := ledger.ParsePeriod(raw)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format periode tidak valid (YYYY-MM)")
	}
	if err := service.RefreshPeriod(c.Context(), ctrl.DB, period); err != nil {
		log.Printf("[ERROR] Refresh rekap %s gagal: %v", period, err)
		return mapRefreshError(c, err)
	}

	return helper.Success(c, "Rekap periode "+string(period)+" berhasil diperbarui", nil)
}

func mapRefreshError(c *fiber.Ctx, err error) error {
	if errors.Is(err, ledger.ErrSourceUnavailable) {
		return helper.Error(c, fiber.StatusServiceUnavailable, "Sumber data keuangan sedang tidak tersedia")
	}
	return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui rekap")
}
