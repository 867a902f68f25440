// 📁 controller/donation_admin_controller.go
package controller

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/finance/donations/dto"
	"pesantrenku_backend/internals/features/finance/donations/model"
	helper "pesantrenku_backend/internals/helpers"
)

type DonationAdminController struct {
	DB *gorm.DB
}

func NewDonationAdminController(db *gorm.DB) *DonationAdminController {
	return &DonationAdminController{DB: db}
}

// 🟢 CREATE MANUAL: admin mencatat donasi tunai/transfer yang sudah diterima.
// Langsung paid — masuk pemasukan pada bucket paid_at.
func (ctrl *DonationAdminController) CreateManualDonation(c *fiber.Ctx) error {
	var body dto.CreateManualDonationRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	paidAt := time.Now()
	if body.DonationPaidAt != "" {
		t, err := time.Parse(time.RFC3339, body.DonationPaidAt)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Format donation_paid_at harus RFC3339")
		}
		paidAt = t
	}

	donation := model.DonationModel{
		DonationName:           body.DonationName,
		DonationAmountIDR:      body.DonationAmountIDR,
		DonationMessage:        body.DonationMessage,
		DonationStatus:         model.DonationStatusPaid,
		DonationOrderID:        fmt.Sprintf("MANUAL-%d", time.Now().UnixNano()),
		DonationPaymentGateway: "manual",
		DonationPaidAt:         &paidAt,
	}

	if err := ctrl.DB.Create(&donation).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan donasi")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Donasi manual berhasil dicatat", donation)
}

// 🟢 LIST: semua donasi (filter status opsional) + pagination
func (ctrl *DonationAdminController) ListDonations(c *fiber.Ctx) error {
	p := helper.ParsePagination(c, helper.AdminOpts)

	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.DonationModel{})
	if status := c.Query("status"); status != "" {
		q = q.Where("donation_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung donasi")
	}

	var donations []model.DonationModel
	if err := q.Order("donation_created_at DESC").
		Limit(p.PerPage).Offset(p.Offset()).
		Find(&donations).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data donasi")
	}

	return helper.Success(c, "Data donasi berhasil diambil", fiber.Map{
		"donations":  donations,
		"pagination": helper.PaginationMeta(p, total),
	})
}
