package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/users/auth/controller"
	"pesantrenku_backend/internals/middlewares"
)

// AuthPublicRoutes: register/login/logout, dengan rate limiter khusus.
func AuthPublicRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	auth := router.Group("/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/logout", ctrl.Logout)
}

// AuthProtectedRoutes: profil user yang sedang login (wali maupun admin).
func AuthProtectedRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	auth := router.Group("/auth")
	auth.Get("/me", ctrl.Me)
}
