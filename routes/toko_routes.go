package routes

import (
	"github.com/gofiber/fiber/v2"

	"jaja-bff/controller"
)

func RegisterTokoRoutes(app *fiber.App, tc *controller.TokoController, authMiddleware fiber.Handler) {
	api := app.Group("/api")

	seller := api.Group("/seller")
	seller.Post("/create-toko", authMiddleware, tc.CreateToko)

	toko := api.Group("/toko")
	toko.Get("/me", authMiddleware, tc.Me)
	toko.Post("/open-store", authMiddleware, tc.OpenStore)
}
