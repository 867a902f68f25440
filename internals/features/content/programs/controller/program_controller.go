package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/content/programs/dto"
	"pesantrenku_backend/internals/features/content/programs/model"
	helper "pesantrenku_backend/internals/helpers"
)

var validate = validator.New()

type ProgramController struct {
	DB *gorm.DB
}

func NewProgramController(db *gorm.DB) *ProgramController {
	return &ProgramController{DB: db}
}

// 📄 GET /api/public/programs — program aktif
func (ctrl *ProgramController) ListActive(c *fiber.Ctx) error {
	var rows []model.ProgramModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("program_is_active = TRUE").
		Order("program_name ASC").
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] Gagal ambil program: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data program")
	}
	return helper.Success(c, "Data program berhasil diambil", rows)
}

// 📄 GET /api/a/programs — semua program
func (ctrl *ProgramController) ListAll(c *fiber.Ctx) error {
	var rows []model.ProgramModel
	if err := ctrl.DB.WithContext(c.Context()).
		Order("program_name ASC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data program")
	}
	return helper.Success(c, "Data program berhasil diambil", rows)
}

// ➕ POST /api/a/programs
func (ctrl *ProgramController) Create(c *fiber.Ctx) error {
	var req dto.CreateProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := model.ProgramModel{
		ProgramName:        req.ProgramName,
		ProgramDescription: req.ProgramDescription,
		ProgramSchedule:    req.ProgramSchedule,
		ProgramIsActive:    true,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		log.Printf("[ERROR] Gagal membuat program: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan program")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Program berhasil dibuat", row)
}

// ✏️ PUT /api/a/programs/:id
func (ctrl *ProgramController) Update(c *fiber.Ctx) error {
	programID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID program tidak valid")
	}

	var req dto.UpdateProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.ProgramName != nil {
		updates["program_name"] = *req.ProgramName
	}
	if req.ProgramDescription != nil {
		updates["program_description"] = *req.ProgramDescription
	}
	if req.ProgramSchedule != nil {
		updates["program_schedule"] = *req.ProgramSchedule
	}
	if req.ProgramIsActive != nil {
		updates["program_is_active"] = *req.ProgramIsActive
	}
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}
	updates["program_updated_at"] = time.Now()

	res := ctrl.DB.WithContext(c.Context()).
		Model(&model.ProgramModel{}).
		Where("program_id = ?", programID).
		Updates(updates)
	if res.Error != nil {
		log.Printf("[ERROR] Gagal update program %s: %v", programID, res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui program")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Program tidak ditemukan")
	}

	var row model.ProgramModel
	if err := ctrl.DB.WithContext(c.Context()).First(&row, "program_id = ?", programID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data program")
	}
	return helper.Success(c, "Program berhasil diperbarui", row)
}

// 🗑️ DELETE /api/a/programs/:id
func (ctrl *ProgramController) Delete(c *fiber.Ctx) error {
	programID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID program tidak valid")
	}

	var row model.ProgramModel
	if err := ctrl.DB.WithContext(c.Context()).First(&row, "program_id = ?", programID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Program tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data program")
	}

	if err := ctrl.DB.WithContext(c.Context()).Delete(&row).Error; err != nil {
		log.Printf("[ERROR] Gagal hapus program %s: %v", programID, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus program")
	}
	return helper.Success(c, "Program berhasil dihapus", nil)
}
