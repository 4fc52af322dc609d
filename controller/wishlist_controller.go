package controller

import (
	"context"
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"jaja-bff/client"
	"jaja-bff/validation"
)

type WishlistAPI interface {
	GetWishlist(ctx context.Context, token string) (*client.Result, error)
	ToggleWishlist(ctx context.Context, token string, idProduk uint) (*client.Result, error)
}

type WishlistController struct {
	API WishlistAPI
}

func (wc *WishlistController) Get(c *fiber.Ctx) error {
	token, _ := c.Locals("token").(string)

	res, err := wc.API.GetWishlist(c.Context(), token)
	return proxyResult(c, res, err)
}

func (wc *WishlistController) Toggle(c *fiber.Ctx) error {
	token, _ := c.Locals("token").(string)

	var req validation.WishlistToggleRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return serverError(c, err)
	}
	if req.IDProduk == 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "id_produk tidak valid"})
	}

	res, err := wc.API.ToggleWishlist(c.Context(), token, uint(req.IDProduk))
	return proxyResult(c, res, err)
}
