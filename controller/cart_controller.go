package controller

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"

	"jaja-bff/client"
	"jaja-bff/store"
)

type CartController struct {
	Store *store.CartStore
}

func (cc *CartController) Count(c *fiber.Ctx) error {
	token, _ := c.Locals("token").(string)

	count := cc.Store.FetchCartCount(c.Context(), token)
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"count": count}})
}

// Add forwards the add-to-cart payload and answers with the refreshed count.
// The count only moves after the backend round trip; nothing is incremented
// optimistically.
func (cc *CartController) Add(c *fiber.Ctx) error {
	token, _ := c.Locals("token").(string)

	count, err := cc.Store.AddToCartAndUpdate(c.Context(), token, json.RawMessage(c.Body()))
	if err != nil {
		var rejected *client.RejectedError
		if errors.As(err, &rejected) {
			return c.Status(400).JSON(fiber.Map{"success": false, "message": rejected.Message})
		}
		return serverError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"count": count}})
}
