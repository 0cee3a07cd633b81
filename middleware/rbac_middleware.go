package middleware

import (
	"console-backend/lib/rbac"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

func RbacMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		userID := GetUserID(ctx)
		if userID == "" {
			return forbidden(ctx)
		}
		userRole := GetUserRole(ctx)
		if userRole == "" {
			return forbidden(ctx)
		}

		path := ctx.Path()
		handler, found := rbac.Instance.GetRuleFunc(ctx.Method(), path)
		if !found {
			return ctx.Next()
		}
		if !handler(GetUserScope(ctx), userID, userRole, path) {
			log.
				WithField("user_id", userID).
				WithField("role", userRole).
				WithField("path", path).
				Warn("доступ запрещен")
			return forbidden(ctx)
		}
		return ctx.Next()
	}
}

func forbidden(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
		"error": "RBAC_FORBIDDEN",
	})
}
