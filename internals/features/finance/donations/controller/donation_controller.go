// 📁 controller/donation_controller.go
package controller

import (
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/finance/donations/dto"
	"pesantrenku_backend/internals/features/finance/donations/model"
	donationService "pesantrenku_backend/internals/features/finance/donations/service"
	helper "pesantrenku_backend/internals/helpers"
)

var validate = validator.New()

type DonationController struct {
	DB *gorm.DB
}

func NewDonationController(db *gorm.DB) *DonationController {
	return &DonationController{DB: db}
}

// 🟢 CREATE DONATION: buat donasi online & simpan snap token Midtrans,
// bisa tanpa login (guest) maupun dengan login (wali)
func (ctrl *DonationController) CreateDonation(c *fiber.Ctx) error {
	var body dto.CreateDonationRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var userUUID *uuid.UUID
	// 🔐 Jika pengguna login, ambil user ID dari JWT token
	if userIDStr, ok := c.Locals("user_id").(string); ok && userIDStr != "" {
		parsedUUID, err := uuid.Parse(userIDStr)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "User ID dalam token tidak valid")
		}
		userUUID = &parsedUUID
	}

	// 🧾 Generate order ID unik
	orderID := fmt.Sprintf("DONATION-%d", time.Now().UnixNano())

	donation := model.DonationModel{
		DonationUserID:         userUUID,
		DonationName:           body.DonationName,
		DonationAmountIDR:      body.DonationAmountIDR,
		DonationMessage:        body.DonationMessage,
		DonationStatus:         model.DonationStatusPending, // belum ada pembayaran
		DonationOrderID:        orderID,
		DonationPaymentGateway: "midtrans",
	}

	if err := ctrl.DB.Create(&donation).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan donasi")
	}

	// 🔐 Buat snap token Midtrans untuk pembayaran
	token, err := donationService.GenerateSnapToken(orderID, donation.DonationAmountIDR, body.DonationName, body.DonationEmail)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat token pembayaran")
	}

	donation.DonationPaymentToken = token
	if err := ctrl.DB.Save(&donation).Error; err != nil {
		log.Println("[ERROR] Gagal menyimpan snap token donasi:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan token pembayaran")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Donasi berhasil dibuat. Silakan lanjutkan pembayaran.", fiber.Map{
		"order_id":   donation.DonationOrderID,
		"snap_token": token,
	})
}

// 🟢 HANDLE MIDTRANS WEBHOOK: update status donasi berdasarkan notifikasi
func (ctrl *DonationController) HandleMidtransNotification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid webhook")
	}

	if err := donationService.HandleDonationStatusWebhook(ctrl.DB, body); err != nil {
		log.Println("[ERROR] Webhook donasi gagal:", err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.SendStatus(fiber.StatusOK)
}
