package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/constants"
	"pesantrenku_backend/internals/features/users/auth/dto"
	"pesantrenku_backend/internals/features/users/auth/service"
	"pesantrenku_backend/internals/features/users/user/model"
	helper "pesantrenku_backend/internals/helpers"
)

var validate = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// 📝 POST /api/public/auth/register — akun wali baru
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var count int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&model.UserModel{}).
		Where("user_email = ?", req.UserEmail).
		Count(&count).Error; err != nil {
		log.Printf("[ERROR] Gagal cek email: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses registrasi")
	}
	if count > 0 {
		return helper.Error(c, fiber.StatusConflict, "Email sudah terdaftar")
	}

	user := model.UserModel{
		UserName:     req.UserName,
		UserEmail:    req.UserEmail,
		UserRole:     constants.RoleWali,
		UserPhone:    req.UserPhone,
		UserIsActive: true,
	}
	if err := user.SetPassword(req.UserPassword); err != nil {
		log.Printf("[ERROR] Gagal hash password: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses registrasi")
	}

	if err := ctrl.DB.WithContext(c.Context()).Create(&user).Error; err != nil {
		log.Printf("[ERROR] Gagal membuat user: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan akun")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Registrasi berhasil, silakan login", dto.UserInfo{
		UserID:    user.UserID.String(),
		UserName:  user.UserName,
		UserEmail: user.UserEmail,
		UserRole:  user.UserRole,
	})
}

// 🔑 POST /api/public/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.UserModel
	err := ctrl.DB.WithContext(c.Context()).
		Where("user_email = ?", req.UserEmail).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		log.Printf("[ERROR] Gagal ambil user: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses login")
	}

	if !user.UserIsActive {
		return helper.Error(c, fiber.StatusForbidden, "Akun dinonaktifkan, hubungi admin pesantren")
	}
	if !user.CheckPassword(req.UserPassword) {
		return helper.Error(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	token, ttl, err := service.GenerateAccessToken(&user)
	if err != nil {
		log.Printf("[ERROR] Gagal terbitkan token untuk %s: %v", user.UserEmail, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses login")
	}

	// Cookie untuk klien web; API klien pakai Authorization header
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  time.Now().Add(ttl),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})

	return helper.Success(c, "Login berhasil", dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(ttl.Seconds()),
		User: dto.UserInfo{
			UserID:    user.UserID.String(),
			UserName:  user.UserName,
			UserEmail: user.UserEmail,
			UserRole:  user.UserRole,
		},
	})
}

// 🚪 POST /api/public/auth/logout — hapus cookie
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
	return helper.Success(c, "Logout berhasil", nil)
}

// 👤 GET /api/w/auth/me & /api/a/auth/me
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	rawID, _ := c.Locals("user_id").(string)
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Sesi tidak valid")
	}

	var user model.UserModel
	if err := ctrl.DB.WithContext(c.Context()).First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Akun tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil profil")
	}

	return helper.Success(c, "Profil berhasil diambil", user)
}
