package routes

import (
	"github.com/gofiber/fiber/v2"

	"jaja-bff/controller"
)

// Store routes back the client-side state: recently viewed products and the
// pending-order notification tray.
func RegisterStoreRoutes(app *fiber.App, pc *controller.ProductController, nc *controller.NotificationController) {
	api := app.Group("/api")

	recent := api.Group("/products/recent")
	recent.Get("/", pc.ListRecent)
	recent.Post("/", pc.AddRecent)
	recent.Delete("/", pc.ClearRecent)

	orders := api.Group("/notifications/orders")
	orders.Get("/", nc.List)
	orders.Post("/", nc.Add)
	orders.Delete("/", nc.Clear)
	orders.Post("/sweep", nc.Sweep)
	orders.Get("/:id", nc.Get)
	orders.Delete("/:id", nc.Remove)
	orders.Post("/:id/paid", nc.MarkPaid)
}
