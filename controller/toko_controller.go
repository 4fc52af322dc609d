package controller

import (
	"context"
	"encoding/json"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"jaja-bff/client"
	"jaja-bff/validation"
)

type TokoAPI interface {
	CreateToko(ctx context.Context, token string, payload json.RawMessage) (*client.Result, error)
	GetMyToko(ctx context.Context, token string) (*client.Result, error)
	OpenStore(ctx context.Context, token string, payload any) (*client.Result, error)
}

type TokoController struct {
	API      TokoAPI
	Validate *validatorv10.Validate
}

// CreateToko forwards the store-creation payload as-is; the backend owns its
// shape.
func (tc *TokoController) CreateToko(c *fiber.Ctx) error {
	token, _ := c.Locals("token").(string)

	res, err := tc.API.CreateToko(c.Context(), token, json.RawMessage(c.Body()))
	return proxyResult(c, res, err)
}

func (tc *TokoController) Me(c *fiber.Ctx) error {
	token, _ := c.Locals("token").(string)

	res, err := tc.API.GetMyToko(c.Context(), token)
	return proxyResult(c, res, err)
}

func (tc *TokoController) OpenStore(c *fiber.Ctx) error {
	token, _ := c.Locals("token").(string)

	var req validation.OpenStoreRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return serverError(c, err)
	}
	if err := tc.Validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": validation.Message(err)})
	}

	res, err := tc.API.OpenStore(c.Context(), token, req)
	return proxyResult(c, res, err)
}
