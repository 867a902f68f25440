package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/users/user/controller"
)

// UserAdminRoutes: kelola akun portal (admin).
func UserAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserAdminController(db)

	users := router.Group("/users")
	users.Get("/", ctrl.ListUsers)
	users.Put("/:id/active", ctrl.SetActive)
}
