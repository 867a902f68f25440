// 📁 controller/syahriah_user_controller.go
package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	donationService "pesantrenku_backend/internals/features/finance/donations/service"
	"pesantrenku_backend/internals/features/finance/syahriah/model"
	"pesantrenku_backend/internals/features/finance/syahriah/service"
	helper "pesantrenku_backend/internals/helpers"
)

type SyahriahUserController struct {
	DB *gorm.DB
}

func NewSyahriahUserController(db *gorm.DB) *SyahriahUserController {
	return &SyahriahUserController{DB: db}
}

func waliUUID(c *fiber.Ctx) (uuid.UUID, error) {
	userIDStr, _ := c.Locals("user_id").(string)
	return uuid.Parse(userIDStr)
}

// 🟢 LIST MINE: tagihan syahriah santri milik wali yang login
func (ctrl *SyahriahUserController) ListMine(c *fiber.Ctx) error {
	waliID, err := waliUUID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User ID tidak valid")
	}

	q := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.SyahriahModel{}).
		Joins("JOIN santri ON santri.santri_id = syahriah.syahriah_santri_id").
		Where("santri.santri_wali_user_id = ? AND santri.santri_deleted_at IS NULL", waliID)
	if period := c.Query("period"); period != "" {
		q = q.Where("syahriah_period = ?", period)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("syahriah_status = ?", status)
	}

	var rows []model.SyahriahModel
	if err := q.Order("syahriah_period DESC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil tagihan")
	}

	return helper.Success(c, "Tagihan syahriah berhasil diambil", rows)
}

// 🟢 PAY ONLINE: buat snap token Midtrans untuk satu tagihan unpaid
// milik santri wali yang login
func (ctrl *SyahriahUserController) PayOnline(c *fiber.Ctx) error {
	waliID, err := waliUUID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User ID tidak valid")
	}
	chargeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tagihan tidak valid")
	}

	// Pastikan tagihan milik santri wali ini & masih unpaid
	var charge model.SyahriahModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Joins("JOIN santri ON santri.santri_id = syahriah.syahriah_santri_id").
		Where("syahriah_id = ? AND santri.santri_wali_user_id = ?", chargeID, waliID).
		First(&charge).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Tagihan tidak ditemukan")
	}
	if charge.SyahriahStatus == model.SyahriahStatusPaid {
		return helper.Error(c, fiber.StatusConflict, "Tagihan sudah lunas")
	}

	userName, _ := c.Locals("user_name").(string)
	orderID := service.BuildOrderID(charge.SyahriahID)
	token, err := donationService.GenerateSnapToken(orderID, charge.SyahriahAmountIDR, userName, c.Query("email"))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat token pembayaran")
	}

	return helper.Success(c, "Silakan lanjutkan pembayaran", fiber.Map{
		"order_id":   orderID,
		"snap_token": token,
	})
}

// 🟢 WEBHOOK: notifikasi Midtrans untuk pembayaran syahriah
func (ctrl *SyahriahUserController) HandleMidtransNotification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid webhook")
	}

	if err := service.HandleSyahriahStatusWebhook(c.UserContext(), ctrl.DB, body); err != nil {
		log.Println("[ERROR] Webhook syahriah gagal:", err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.SendStatus(fiber.StatusOK)
}
