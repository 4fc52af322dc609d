package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// TokenFromRequest pulls the raw auth token from the session cookie, falling
// back to a bearer header.
func TokenFromRequest(c *fiber.Ctx) string {
	if t := c.Cookies("token"); t != "" {
		return t
	}
	header := c.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// ValidateToken reports whether the token is a valid, unexpired session token.
func ValidateToken(tokenStr, secret string) bool {
	if tokenStr == "" {
		return false
	}
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	return err == nil && token.Valid
}

// AuthRequired rejects requests without a valid session token and stores the
// raw token for the backend proxy calls.
func AuthRequired(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := TokenFromRequest(c)
		if !ValidateToken(tokenStr, secret) {
			return c.Status(401).JSON(fiber.Map{"success": false, "message": "sesi tidak valid"})
		}
		c.Locals("token", tokenStr)
		return c.Next()
	}
}
