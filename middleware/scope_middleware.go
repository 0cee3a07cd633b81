package middleware

import (
	authutils "console-backend/lib/utils/auth-utils"
	"console-backend/models"
	apimodels "console-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

func GetUserScope(ctx *fiber.Ctx) string {
	return authutils.GetStringClaim(ctx, "scope")
}

func GetUserID(ctx *fiber.Ctx) string {
	return authutils.GetStringClaim(ctx, "sub")
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	return models.UserRole(authutils.GetStringClaim(ctx, "role"))
}

func ScopeRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if GetUserScope(ctx) == "" {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("не указана область доступа"))
		}
		return ctx.Next()
	}
}
