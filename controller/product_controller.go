package controller

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"jaja-bff/model"
	"jaja-bff/store"
)

type ProductController struct {
	Recent *store.RecentlyViewedStore
}

func (pc *ProductController) ListRecent(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)
	products := pc.Recent.GetRecentProducts(limit)
	return c.JSON(fiber.Map{"success": true, "data": products})
}

func (pc *ProductController) AddRecent(c *fiber.Ctx) error {
	var p model.RecentlyViewedProduct
	if err := json.Unmarshal(c.Body(), &p); err != nil {
		return serverError(c, err)
	}
	if p.ID == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "id wajib diisi"})
	}

	pc.Recent.AddProduct(c.Context(), p)
	return c.JSON(fiber.Map{"success": true, "data": pc.Recent.GetRecentProducts(0)})
}

func (pc *ProductController) ClearRecent(c *fiber.Ctx) error {
	pc.Recent.ClearAll(c.Context())
	return c.JSON(fiber.Map{"success": true})
}
