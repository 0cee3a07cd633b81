package authutils

import (
	"console-backend/models"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func GetToken(secret string, expireIn time.Duration, userID, name, scopeID string, role models.UserRole) (tokenString string, err error) {
	claims := jwt.MapClaims{
		"name":  name,
		"sub":   userID,
		"scope": scopeID,
		"role":  string(role),
		"exp":   time.Now().Add(expireIn).Unix(),
		"iat":   time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func GetClaims(ctx *fiber.Ctx) jwt.MapClaims {
	token, ok := ctx.Locals("user").(*jwt.Token)
	if !ok {
		return jwt.MapClaims{}
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return jwt.MapClaims{}
	}
	return claims
}

func GetStringClaim(ctx *fiber.Ctx, key string) string {
	if value, exist := GetClaims(ctx)[key]; exist {
		if stringValue, ok := value.(string); ok {
			return stringValue
		}
	}
	return ""
}
