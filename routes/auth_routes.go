package routes

import (
	"github.com/gofiber/fiber/v2"

	"jaja-bff/controller"
)

func RegisterAuthRoutes(app *fiber.App, ac *controller.AuthController) {
	api := app.Group("/api")
	auth := api.Group("/auth")

	auth.Get("/status", ac.Status)
}
