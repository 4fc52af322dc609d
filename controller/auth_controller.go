package controller

import (
	"github.com/gofiber/fiber/v2"

	"jaja-bff/middleware"
)

type AuthController struct {
	Secret string
}

// Status reports whether the request carries a valid session. It never fails:
// a missing or bad token just means authenticated=false.
func (ac *AuthController) Status(c *fiber.Ctx) error {
	token := middleware.TokenFromRequest(c)
	return c.JSON(fiber.Map{"authenticated": middleware.ValidateToken(token, ac.Secret)})
}
