package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/santri/santri/model"
	helper "pesantrenku_backend/internals/helpers"
)

type SantriUserController struct {
	DB *gorm.DB
}

func NewSantriUserController(db *gorm.DB) *SantriUserController {
	return &SantriUserController{DB: db}
}

// 📄 GET /api/w/santri — daftar santri milik wali yang sedang login
func (ctrl *SantriUserController) ListMine(c *fiber.Ctx) error {
	rawID, _ := c.Locals("user_id").(string)
	waliID, err := uuid.Parse(rawID)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Sesi tidak valid")
	}

	var rows []model.SantriModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("santri_wali_user_id = ?", waliID).
		Order("santri_name ASC").
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] Gagal ambil santri wali %s: %v", waliID, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data santri")
	}

	return helper.Success(c, "Data santri berhasil diambil", rows)
}
