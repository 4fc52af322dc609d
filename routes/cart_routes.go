package routes

import (
	"github.com/gofiber/fiber/v2"

	"jaja-bff/controller"
)

func RegisterCartRoutes(app *fiber.App, cc *controller.CartController, authMiddleware fiber.Handler) {
	api := app.Group("/api")
	cart := api.Group("/cart")

	cart.Get("/count", authMiddleware, cc.Count)
	cart.Post("/", authMiddleware, cc.Add)
}
