package routes

import (
	"github.com/gofiber/fiber/v2"

	"jaja-bff/controller"
)

func RegisterWishlistRoutes(app *fiber.App, wc *controller.WishlistController, authMiddleware fiber.Handler) {
	api := app.Group("/api")
	w := api.Group("/wishlist")

	w.Get("/", authMiddleware, wc.Get)
	w.Post("/", authMiddleware, wc.Toggle)
}
