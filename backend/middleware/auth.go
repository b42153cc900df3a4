package middleware

import (
	"smartscore/backend/config"
	"smartscore/backend/models"
	"smartscore/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// RequireRole admits requests whose login token carries one of roles.
// It lets everything through when REQUIRE_AUTH is off.
func RequireRole(cfg *config.Config, roles ...models.UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !cfg.RequireAuth {
			return c.Next()
		}

		claims, err := utils.ExtractClaimsFromToken(c, cfg)
		if err != nil {
			return utils.Unauthorized(c, err.Error())
		}

		for _, role := range roles {
			if models.UserRole(claims.Role) == role {
				return c.Next()
			}
		}
		return utils.Forbidden(c, "Insufficient role for this action")
	}
}
