package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/content/announcements/dto"
	"pesantrenku_backend/internals/features/content/announcements/model"
	helper "pesantrenku_backend/internals/helpers"
)

var validate = validator.New()

type AnnouncementController struct {
	DB *gorm.DB
}

func NewAnnouncementController(db *gorm.DB) *AnnouncementController {
	return &AnnouncementController{DB: db}
}

// 📄 GET /api/public/announcements — hanya yang published
func (ctrl *AnnouncementController) ListPublished(c *fiber.Ctx) error {
	p := helper.ParsePagination(c, helper.DefaultOpts)

	q := ctrl.DB.WithContext(c.Context()).
		Model(&model.AnnouncementModel{}).
		Where("announcement_is_published = TRUE")

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] Gagal hitung pengumuman: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil pengumuman")
	}

	var rows []model.AnnouncementModel
	if err := q.Order("announcement_created_at DESC").Limit(p.PerPage).Offset(p.Offset()).Find(&rows).Error; err != nil {
		log.Printf("[ERROR] Gagal ambil pengumuman: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil pengumuman")
	}

	return helper.Success(c, "Pengumuman berhasil diambil", fiber.Map{
		"items":      rows,
		"pagination": helper.PaginationMeta(p, total),
	})
}

// 📄 GET /api/a/announcements — semua, termasuk draft
func (ctrl *AnnouncementController) ListAll(c *fiber.Ctx) error {
	p := helper.ParsePagination(c, helper.AdminOpts)

	q := ctrl.DB.WithContext(c.Context()).Model(&model.AnnouncementModel{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil pengumuman")
	}

	var rows []model.AnnouncementModel
	if err := q.Order("announcement_created_at DESC").Limit(p.PerPage).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil pengumuman")
	}

	return helper.Success(c, "Pengumuman berhasil diambil", fiber.Map{
		"items":      rows,
		"pagination": helper.PaginationMeta(p, total),
	})
}

// ➕ POST /api/a/announcements
func (ctrl *AnnouncementController) Create(c *fiber.Ctx) error {
	var req dto.CreateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := model.AnnouncementModel{
		AnnouncementTitle:       req.AnnouncementTitle,
		AnnouncementContent:     req.AnnouncementContent,
		AnnouncementIsPublished: req.AnnouncementIsPublished,
	}
	if rawID, ok := c.Locals("user_id").(string); ok {
		if adminID, err := uuid.Parse(rawID); err == nil {
			row.AnnouncementCreatedBy = &adminID
		}
	}

	if err := ctrl.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		log.Printf("[ERROR] Gagal membuat pengumuman: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan pengumuman")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Pengumuman berhasil dibuat", row)
}

// ✏️ PUT /api/a/announcements/:id
func (ctrl *AnnouncementController) Update(c *fiber.Ctx) error {
	announcementID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID pengumuman tidak valid")
	}

	var req dto.UpdateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.AnnouncementTitle != nil {
		updates["announcement_title"] = *req.AnnouncementTitle
	}
	if req.AnnouncementContent != nil {
		updates["announcement_content"] = *req.AnnouncementContent
	}
	if req.AnnouncementIsPublished != nil {
		updates["announcement_is_published"] = *req.AnnouncementIsPublished
	}
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}
	updates["announcement_updated_at"] = time.Now()

	res := ctrl.DB.WithContext(c.Context()).
		Model(&model.AnnouncementModel{}).
		Where("announcement_id = ?", announcementID).
		Updates(updates)
	if res.Error != nil {
		log.Printf("[ERROR] Gagal update pengumuman %s: %v", announcementID, res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui pengumuman")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Pengumuman tidak ditemukan")
	}

	var row model.AnnouncementModel
	if err := ctrl.DB.WithContext(c.Context()).First(&row, "announcement_id = ?", announcementID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil pengumuman")
	}
	return helper.Success(c, "Pengumuman berhasil diperbarui", row)
}

// 🗑️ DELETE /api/a/announcements/:id
func (ctrl *AnnouncementController) Delete(c *fiber.Ctx) error {
	announcementID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID pengumuman tidak valid")
	}

	var row model.AnnouncementModel
	if err := ctrl.DB.WithContext(c.Context()).First(&row, "announcement_id = ?", announcementID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Pengumuman tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil pengumuman")
	}

	if err := ctrl.DB.WithContext(c.Context()).Delete(&row).Error; err != nil {
		log.Printf("[ERROR] Gagal hapus pengumuman %s: %v", announcementID, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus pengumuman")
	}
	return helper.Success(c, "Pengumuman berhasil dihapus", nil)
}
