package middleware

import (
	"github.com/gofiber/fiber/v2"

	"propview-backend/internal/domain"
)

func RequireRole(requiredRole domain.UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetCurrentUser(c)
		if user == nil {
			return Unauthorized("User not found")
		}

		// Admins pass every role gate.
		if user.Role != string(requiredRole) && user.Role != string(domain.RoleAdmin) {
			return Forbidden("Insufficient permissions for this operation")
		}

		return c.Next()
	}
}

func IsAdmin(c *fiber.Ctx) bool {
	user := GetCurrentUser(c)
	return user != nil && user.Role == string(domain.RoleAdmin)
}

func IsAgent(c *fiber.Ctx) bool {
	user := GetCurrentUser(c)
	if user == nil {
		return false
	}
	return user.Role == string(domain.RoleAgent) || user.Role == string(domain.RoleAdmin)
}
