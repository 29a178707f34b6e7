package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/HackVerse/hackathon-service/internal/domain"
	"github.com/HackVerse/hackathon-service/internal/helper"
)

func AuthMiddleware(auth helper.Auth) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		// 1) try cookie first
		tokenStr := strings.TrimSpace(ctx.Cookies("access_token"))

		// 2) fallback to Authorization header
		if tokenStr == "" {
			tokenStr = strings.TrimSpace(ctx.Get("Authorization"))
		}

		user, err := auth.VerifyToken(tokenStr)
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		}

		role, ok := domain.ParseRole(user.Role)
		if !ok {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "unknown role",
			})
		}

		ctx.Locals("userID", uint(user.UserID))
		ctx.Locals("role", role)
		ctx.Locals("user", user)
		return ctx.Next()
	}
}

// RequireRole gates a route on the closed role set. Roles are matched
// exactly; there is no implicit admin bypass.
func RequireRole(roles ...domain.Role) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		role, ok := ctx.Locals("role").(domain.Role)
		if !ok {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "unauthorized",
			})
		}

		for _, allowed := range roles {
			if role == allowed {
				return ctx.Next()
			}
		}

		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"message": "insufficient role",
		})
	}
}

func AdminOnly() fiber.Handler {
	return RequireRole(domain.RoleAdmin)
}

func JudgeOrAdmin() fiber.Handler {
	return RequireRole(domain.RoleJudge, domain.RoleAdmin)
}

func StudentOnly() fiber.Handler {
	return RequireRole(domain.RoleStudent)
}
