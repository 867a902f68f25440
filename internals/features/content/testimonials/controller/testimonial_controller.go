package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/content/testimonials/dto"
	"pesantrenku_backend/internals/features/content/testimonials/model"
	helper "pesantrenku_backend/internals/helpers"
)

var validate = validator.New()

type TestimonialController struct {
	DB *gorm.DB
}

func NewTestimonialController(db *gorm.DB) *TestimonialController {
	return &TestimonialController{DB: db}
}

// 📄 GET /api/public/testimonials — hanya yang sudah ditayangkan
func (ctrl *TestimonialController) ListPublished(c *fiber.Ctx) error {
	var rows []model.TestimonialModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("testimonial_is_published = TRUE").
		Order("testimonial_created_at DESC").
		Limit(50).
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] Gagal ambil testimoni: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil testimoni")
	}
	return helper.Success(c, "Testimoni berhasil diambil", rows)
}

// ✍️ POST /api/w/testimonials — wali kirim testimoni (masuk draft)
func (ctrl *TestimonialController) Submit(c *fiber.Ctx) error {
	var req dto.CreateTestimonialRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := model.TestimonialModel{
		TestimonialAuthorName: req.TestimonialAuthorName,
		TestimonialAuthorRole: req.TestimonialAuthorRole,
		TestimonialMessage:    req.TestimonialMessage,
	}
	if rawID, ok := c.Locals("user_id").(string); ok {
		if userID, err := uuid.Parse(rawID); err == nil {
			row.TestimonialUserID = &userID
		}
	}

	if err := ctrl.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		log.Printf("[ERROR] Gagal simpan testimoni: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan testimoni")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Testimoni terkirim, menunggu persetujuan admin", row)
}

// 📄 GET /api/a/testimonials — semua, termasuk draft
func (ctrl *TestimonialController) ListAll(c *fiber.Ctx) error {
	p := helper.ParsePagination(c, helper.AdminOpts)

	q := ctrl.DB.WithContext(c.Context()).Model(&model.TestimonialModel{})
	if published := c.Query("published"); published != "" {
		q = q.Where("testimonial_is_published = ?", published == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil testimoni")
	}

	var rows []model.TestimonialModel
	if err := q.Order("testimonial_created_at DESC").Limit(p.PerPage).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil testimoni")
	}

	return helper.Success(c, "Testimoni berhasil diambil", fiber.Map{
		"items":      rows,
		"pagination": helper.PaginationMeta(p, total),
	})
}

// ✅ PUT /api/a/testimonials/:id/publish — tayangkan / tarik testimoni
func (ctrl *TestimonialController) SetPublish(c *fiber.Ctx) error {
	testimonialID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID testimoni tidak valid")
	}

	var req dto.SetPublishRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	res := ctrl.DB.WithContext(c.Context()).
		Model(&model.TestimonialModel{}).
		Where("testimonial_id = ?", testimonialID).
		Updates(map[string]interface{}{
			"testimonial_is_published": *req.TestimonialIsPublished,
			"testimonial_updated_at":   time.Now(),
		})
	if res.Error != nil {
		log.Printf("[ERROR] Gagal ubah status testimoni %s: %v", testimonialID, res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui testimoni")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Testimoni tidak ditemukan")
	}

	return helper.Success(c, "Status testimoni berhasil diperbarui", nil)
}

// 🗑️ DELETE /api/a/testimonials/:id
func (ctrl *TestimonialController) Delete(c *fiber.Ctx) error {
	testimonialID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID testimoni tidak valid")
	}

	var row model.TestimonialModel
	if err := ctrl.DB.WithContext(c.Context()).First(&row, "testimonial_id = ?", testimonialID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Testimoni tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil testimoni")
	}

	if err := ctrl.DB.WithContext(c.Context()).Delete(&row).Error; err != nil {
		log.Printf("[ERROR] Gagal hapus testimoni %s: %v", testimonialID, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus testimoni")
	}
	return helper.Success(c, "Testimoni berhasil dihapus", nil)
}
