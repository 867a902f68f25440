package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/content/testimonials/controller"
)

// TestimonialPublicRoutes: testimoni yang sudah tayang.
func TestimonialPublicRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTestimonialController(db)

	testi := router.Group("/testimonials")
	testi.Get("/", ctrl.ListPublished)
}

// TestimonialUserRoutes: wali mengirim testimoni.
func TestimonialUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTestimonialController(db)

	testi := router.Group("/testimonials")
	testi.Post("/", ctrl.Submit)
}

// TestimonialAdminRoutes: moderasi testimoni (admin).
func TestimonialAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTestimonialController(db)

	testi := router.Group("/testimonials")
	testi.Get("/", ctrl.ListAll)
	testi.Put("/:id/publish", ctrl.SetPublish)
	testi.Delete("/:id", ctrl.Delete)
}
