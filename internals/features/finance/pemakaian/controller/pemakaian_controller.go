// 📁 controller/pemakaian_controller.go
package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/finance/pemakaian/dto"
	"pesantrenku_backend/internals/features/finance/pemakaian/model"
	helper "pesantrenku_backend/internals/helpers"
)

var validate = validator.New()

type PemakaianController struct {
	DB *gorm.DB
}

func NewPemakaianController(db *gorm.DB) *PemakaianController {
	return &PemakaianController{DB: db}
}

// 🟢 CREATE: catat pemakaian dana (occurred_at wajib)
func (ctrl *PemakaianController) CreatePemakaian(c *fiber.Ctx) error {
	var body dto.CreatePemakaianRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	occurredAt, err := time.Parse(time.RFC3339, body.PemakaianOccurredAt)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format pemakaian_occurred_at harus RFC3339")
	}

	m := model.PemakaianModel{
		PemakaianTitle:      body.PemakaianTitle,
		PemakaianAmountIDR:  body.PemakaianAmountIDR,
		PemakaianNote:       body.PemakaianNote,
		PemakaianOccurredAt: occurredAt,
	}
	if err := ctrl.DB.Create(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan pemakaian")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Pemakaian dana berhasil dicatat", m)
}

// 🟢 LIST: pemakaian dana + pagination
func (ctrl *PemakaianController) ListPemakaian(c *fiber.Ctx) error {
	p := helper.ParsePagination(c, helper.AdminOpts)

	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.PemakaianModel{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung pemakaian")
	}

	var rows []model.PemakaianModel
	if err := q.Order("pemakaian_occurred_at DESC").
		Limit(p.PerPage).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data pemakaian")
	}

	return helper.Success(c, "Data pemakaian berhasil diambil", fiber.Map{
		"pemakaian":  rows,
		"pagination": helper.PaginationMeta(p, total),
	})
}

// 🟢 UPDATE (partial)
func (ctrl *PemakaianController) UpdatePemakaian(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var body dto.UpdatePemakaianRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]any{}
	if body.PemakaianTitle != nil {
		updates["pemakaian_title"] = *body.PemakaianTitle
	}
	if body.PemakaianAmountIDR != nil {
		updates["pemakaian_amount_idr"] = *body.PemakaianAmountIDR
	}
	if body.PemakaianNote != nil {
		updates["pemakaian_note"] = *body.PemakaianNote
	}
	if body.PemakaianOccurredAt != nil {
		t, err := time.Parse(time.RFC3339, *body.PemakaianOccurredAt)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Format pemakaian_occurred_at harus RFC3339")
		}
		updates["pemakaian_occurred_at"] = t
	}
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	tx := ctrl.DB.Model(&model.PemakaianModel{}).
		Where("pemakaian_id = ?", id).
		Updates(updates)
	if tx.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui pemakaian")
	}
	if tx.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Pemakaian tidak ditemukan")
	}

	var m model.PemakaianModel
	if err := ctrl.DB.First(&m, "pemakaian_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membaca data pemakaian")
	}
	return helper.Success(c, "Pemakaian berhasil diperbarui", m)
}

// 🟢 DELETE (soft delete)
func (ctrl *PemakaianController) DeletePemakaian(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	tx := ctrl.DB.Delete(&model.PemakaianModel{}, "pemakaian_id = ?", id)
	if tx.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus pemakaian")
	}
	if tx.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Pemakaian tidak ditemukan")
	}
	return helper.Success(c, "Pemakaian berhasil dihapus", nil)
}
