package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/configs"
	"pesantrenku_backend/internals/middlewares/auth"
	"pesantrenku_backend/internals/route/details"
)

// SetupRoutes memasang tiga kelompok route:
//   /api/public — tanpa login (landing page, donasi, webhook Midtrans)
//   /api/w      — wali santri (JWT + role wali)
//   /api/a      — admin pesantren (JWT + role admin)
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	// 🌐 PUBLIC
	public := api.Group("/public")
	details.PublicRoutes(public, db)

	jwtMw := auth.AuthJWT(auth.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	})

	// 👪 WALI
	wali := api.Group("/w", jwtMw, auth.IsWali())
	details.WaliRoutes(wali, db)

	// 🛡️ ADMIN
	admin := api.Group("/a", jwtMw, auth.IsAdmin())
	details.AdminRoutes(admin, db)
}
