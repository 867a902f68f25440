package auth

import (
	"github.com/gofiber/fiber/v2"

	"pesantrenku_backend/internals/constants"
)

// RequireRoles membatasi akses berdasarkan klaim role di token
func RequireRoles(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("user_role").(string)
		if role == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}
		if _, ok := allowed[role]; !ok {
			return fiber.NewError(fiber.StatusForbidden, "Akses ditolak untuk role ini")
		}
		return c.Next()
	}
}

// IsAdmin shortcut untuk grup admin
func IsAdmin() fiber.Handler {
	return RequireRoles(constants.RoleAdmin)
}

// IsWali shortcut untuk grup wali santri
func IsWali() fiber.Handler {
	return RequireRoles(constants.RoleWali)
}
