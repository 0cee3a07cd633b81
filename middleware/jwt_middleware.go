package middleware

import (
	"console-backend/config"
	apimodels "console-backend/models/api"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func AuthorizationRequired() fiber.Handler {
	return AuthorizationWithSecret(config.Conf.Auth.JWTSecret)
}

// AuthorizationWithSecret токен берется из заголовка Authorization либо из cookie консоли
func AuthorizationWithSecret(secret string) fiber.Handler {
	return jwtware.New(jwtware.Config{
		Claims: jwt.MapClaims{},
		SigningKey: jwtware.SigningKey{
			JWTAlg: "HS256",
			Key:    []byte(secret),
		},
		TokenLookup: "header:Authorization,cookie:" + TokenCookie,
		AuthScheme:  "Bearer",
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("требуется авторизация"))
		},
	})
}

const TokenCookie = "console_token"

// GetRawToken исходная строка токена текущего запроса
func GetRawToken(ctx *fiber.Ctx) string {
	token, ok := ctx.Locals("user").(*jwt.Token)
	if !ok {
		return ""
	}
	return token.Raw
}
