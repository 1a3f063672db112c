package handlers

import (
	"strings"

	"rewear/internal/auth"
	applog "rewear/internal/log"

	"github.com/gofiber/fiber/v2"
)

// RequireUser validates the bearer credential and stashes the authenticated
// identity in request locals for downstream handlers.
func RequireUser(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return fail(c, fiber.StatusUnauthorized, "Access token required")
		}

		claims, err := auth.ValidateToken(secret, strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			applog.Security(c, "auth.token.invalid", map[string]any{"reason": err.Error()})
			return fail(c, fiber.StatusForbidden, "Invalid or expired token")
		}

		c.Locals("userID", claims.UserID)
		c.Locals("userEmail", claims.Email)
		return c.Next()
	}
}

func currentUserID(c *fiber.Ctx) string {
	uid, _ := c.Locals("userID").(string)
	return uid
}
