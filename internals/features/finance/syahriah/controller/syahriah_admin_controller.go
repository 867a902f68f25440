// 📁 controller/syahriah_admin_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	ledger "pesantrenku_backend/internals/features/finance/ledger/service"
	"pesantrenku_backend/internals/features/finance/syahriah/dto"
	"pesantrenku_backend/internals/features/finance/syahriah/model"
	"pesantrenku_backend/internals/features/finance/syahriah/service"
	helper "pesantrenku_backend/internals/helpers"
)

var validate = validator.New()

type SyahriahAdminController struct {
	DB       *gorm.DB
	Payments *service.PaymentService
}

func NewSyahriahAdminController(db *gorm.DB) *SyahriahAdminController {
	return &SyahriahAdminController{DB: db, Payments: service.NewPaymentService(db)}
}

// 🟢 CREATE: satu tagihan untuk satu santri
func (ctrl *SyahriahAdminController) CreateSyahriah(c *fiber.Ctx) error {
	var body dto.CreateSyahriahRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	santriID, err := uuid.Parse(body.SyahriahSantriID)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "santri_id tidak valid")
	}
	period, err := ledger.ParsePeriod(body.SyahriahPeriod)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format periode harus YYYY-MM")
	}

	m := model.SyahriahModel{
		SyahriahSantriID:  santriID,
		SyahriahPeriod:    string(period),
		SyahriahAmountIDR: body.SyahriahAmountIDR,
		SyahriahStatus:    model.SyahriahStatusUnpaid,
	}
	if err := ctrl.DB.Create(&m).Error; err != nil {
		// unique (santri, periode) → duplikat ditolak DB
		return helper.Error(c, fiber.StatusConflict, "Tagihan untuk santri & periode ini sudah ada")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Tagihan syahriah berhasil dibuat", m)
}

// 🟢 GENERATE: tagihan massal satu periode untuk semua santri aktif
func (ctrl *SyahriahAdminController) GenerateForPeriod(c *fiber.Ctx) error {
	var body dto.GenerateSyahriahRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	created, err := service.GenerateForPeriod(c.UserContext(), ctrl.DB, body.Period, body.AmountIDR)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	return helper.Success(c, "Generate tagihan selesai", fiber.Map{
		"period":        body.Period,
		"created_count": created,
	})
}

// 🟢 LIST: filter periode / status / santri + pagination
func (ctrl *SyahriahAdminController) ListSyahriah(c *fiber.Ctx) error {
	p := helper.ParsePagination(c, helper.AdminOpts)

	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.SyahriahModel{})
	if period := c.Query("period"); period != "" {
		q = q.Where("syahriah_period = ?", period)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("syahriah_status = ?", status)
	}
	if santriID := c.Query("santri_id"); santriID != "" {
		id, err := uuid.Parse(santriID)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "santri_id tidak valid")
		}
		q = q.Where("syahriah_santri_id = ?", id)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung tagihan")
	}

	var rows []model.SyahriahModel
	if err := q.Order("syahriah_period DESC, syahriah_created_at DESC").
		Limit(p.PerPage).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data tagihan")
	}

	return helper.Success(c, "Data syahriah berhasil diambil", fiber.Map{
		"syahriah":   rows,
		"pagination": helper.PaginationMeta(p, total),
	})
}

// 🟢 MARK PAID: admin mencatat setoran tunai. Idempotent — tagihan yang
// sudah paid dijawab sukses tanpa perubahan.
func (ctrl *SyahriahAdminController) MarkPaid(c *fiber.Ctx) error {
	chargeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tagihan tidak valid")
	}

	var body dto.MarkPaidRequest
	if err := c.BodyParser(&body); err != nil && len(c.Body()) > 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var paidAt time.Time
	if body.PaidAt != "" {
		paidAt, _ = time.Parse(time.RFC3339, body.PaidAt)
	}

	charge, err := ctrl.Payments.MarkPaid(c.UserContext(), chargeID, paidAt, "cash")
	if err != nil {
		if errors.Is(err, service.ErrChargeNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Tagihan tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Tagihan syahriah lunas", charge)
}
