package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/santri/santri/dto"
	"pesantrenku_backend/internals/features/santri/santri/model"
	helper "pesantrenku_backend/internals/helpers"
)

var validate = validator.New()

type SantriAdminController struct {
	DB *gorm.DB
}

func NewSantriAdminController(db *gorm.DB) *SantriAdminController {
	return &SantriAdminController{DB: db}
}

// ➕ POST /api/a/santri
func (ctrl *SantriAdminController) CreateSantri(c *fiber.Ctx) error {
	var req dto.CreateSantriRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	waliID, err := uuid.Parse(req.SantriWaliUserID)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "santri_wali_user_id tidak valid")
	}

	santri := model.SantriModel{
		SantriWaliUserID: waliID,
		SantriName:       req.SantriName,
		SantriNIS:        req.SantriNIS,
		SantriClass:      req.SantriClass,
		SantriGender:     req.SantriGender,
		SantriIsActive:   true,
	}
	if req.SantriBirthDate != nil {
		birth, err := time.Parse("2006-01-02", *req.SantriBirthDate)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Format santri_birth_date harus YYYY-MM-DD")
		}
		santri.SantriBirth = &birth
	}

	if err := ctrl.DB.WithContext(c.Context()).Create(&santri).Error; err != nil {
		log.Printf("[ERROR] Gagal membuat santri: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan data santri")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Santri berhasil dibuat", santri)
}

// 📄 GET /api/a/santri?wali_user_id=&is_active=&search=
func (ctrl *SantriAdminController) ListSantri(c *fiber.Ctx) error {
	p := helper.ParsePagination(c, helper.AdminOpts)

	q := ctrl.DB.WithContext(c.Context()).Model(&model.SantriModel{})

	if waliID := c.Query("wali_user_id"); waliID != "" {
		id, err := uuid.Parse(waliID)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "wali_user_id tidak valid")
		}
		q = q.Where("santri_wali_user_id = ?", id)
	}
	if isActive := c.Query("is_active"); isActive != "" {
		q = q.Where("santri_is_active = ?", isActive == "true")
	}
	if search := c.Query("search"); search != "" {
		q = q.Where("santri_name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] Gagal hitung santri: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data santri")
	}

	var rows []model.SantriModel
	if err := q.Order("santri_name ASC").Limit(p.PerPage).Offset(p.Offset()).Find(&rows).Error; err != nil {
		log.Printf("[ERROR] Gagal ambil santri: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data santri")
	}

	return helper.Success(c, "Data santri berhasil diambil", fiber.Map{
		"items":      rows,
		"pagination": helper.PaginationMeta(p, total),
	})
}

// ✏️ PUT /api/a/santri/:id — partial update
func (ctrl *SantriAdminController) UpdateSantri(c *fiber.Ctx) error {
	santriID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID santri tidak valid")
	}

	var req dto.UpdateSantriRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.SantriWaliUserID != nil {
		waliID, err := uuid.Parse(*req.SantriWaliUserID)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "santri_wali_user_id tidak valid")
		}
		updates["santri_wali_user_id"] = waliID
	}
	if req.SantriName != nil {
		updates["santri_name"] = *req.SantriName
	}
	if req.SantriNIS != nil {
		updates["santri_nis"] = *req.SantriNIS
	}
	if req.SantriClass != nil {
		updates["santri_class"] = *req.SantriClass
	}
	if req.SantriGender != nil {
		updates["santri_gender"] = *req.SantriGender
	}
	if req.SantriBirthDate != nil {
		birth, err := time.Parse("2006-01-02", *req.SantriBirthDate)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Format santri_birth_date harus YYYY-MM-DD")
		}
		updates["santri_birth_date"] = birth
	}
	if req.SantriIsActive != nil {
		updates["santri_is_active"] = *req.SantriIsActive
	}
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}
	updates["santri_updated_at"] = time.Now()

	res := ctrl.DB.WithContext(c.Context()).
		Model(&model.SantriModel{}).
		Where("santri_id = ?", santriID).
		Updates(updates)
	if res.Error != nil {
		log.Printf("[ERROR] Gagal update santri %s: %v", santriID, res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui data santri")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Santri tidak ditemukan")
	}

	var santri model.SantriModel
	if err := ctrl.DB.WithContext(c.Context()).First(&santri, "santri_id = ?", santriID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data santri")
	}
	return helper.Success(c, "Santri berhasil diperbarui", santri)
}

// 🗑️ DELETE /api/a/santri/:id — soft delete
func (ctrl *SantriAdminController) DeleteSantri(c *fiber.Ctx) error {
	santriID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID santri tidak valid")
	}

	var santri model.SantriModel
	if err := ctrl.DB.WithContext(c.Context()).First(&santri, "santri_id = ?", santriID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Santri tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data santri")
	}

	if err := ctrl.DB.WithContext(c.Context()).Delete(&santri).Error; err != nil {
		log.Printf("[ERROR] Gagal hapus santri %s: %v", santriID, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus data santri")
	}

	return helper.Success(c, "Santri berhasil dihapus", nil)
}
