package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/constants"
	"pesantrenku_backend/internals/features/users/user/model"
	helper "pesantrenku_backend/internals/helpers"
)

type UserAdminController struct {
	DB *gorm.DB
}

func NewUserAdminController(db *gorm.DB) *UserAdminController {
	return &UserAdminController{DB: db}
}

// 📄 GET /api/a/users?role=&search=
func (ctrl *UserAdminController) ListUsers(c *fiber.Ctx) error {
	p := helper.ParsePagination(c, helper.AdminOpts)

	q := ctrl.DB.WithContext(c.Context()).Model(&model.UserModel{})

	if role := c.Query("role"); role != "" {
		if role != constants.RoleAdmin && role != constants.RoleWali {
			return helper.Error(c, fiber.StatusBadRequest, "Role tidak dikenal (admin|wali)")
		}
		q = q.Where("user_role = ?", role)
	}
	if search := c.Query("search"); search != "" {
		q = q.Where("user_name ILIKE ? OR user_email ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] Gagal hitung users: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	var rows []model.UserModel
	if err := q.Order("user_created_at DESC").Limit(p.PerPage).Offset(p.Offset()).Find(&rows).Error; err != nil {
		log.Printf("[ERROR] Gagal ambil users: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	return helper.Success(c, "Data user berhasil diambil", fiber.Map{
		"items":      rows,
		"pagination": helper.PaginationMeta(p, total),
	})
}

// 🔒 PUT /api/a/users/:id/active — aktif/nonaktifkan akun
func (ctrl *UserAdminController) SetActive(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID user tidak valid")
	}

	var body struct {
		UserIsActive *bool `json:"user_is_active"`
	}
	if err := c.BodyParser(&body); err != nil || body.UserIsActive == nil {
		return helper.Error(c, fiber.StatusBadRequest, "Field user_is_active wajib diisi")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Model(&model.UserModel{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"user_is_active":  *body.UserIsActive,
			"user_updated_at": time.Now(),
		})
	if res.Error != nil {
		log.Printf("[ERROR] Gagal ubah status user %s: %v", userID, res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui status user")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	var user model.UserModel
	if err := ctrl.DB.WithContext(c.Context()).First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}
	return helper.Success(c, "Status user berhasil diperbarui", user)
}
