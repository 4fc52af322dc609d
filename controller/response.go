package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"jaja-bff/client"
)

const fallbackMessage = "Terjadi kesalahan pada server"

// ErrorHandler renders any error escaping a handler, including panics caught
// by the recover middleware, as the standard failure envelope instead of
// fiber's plain-text default.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	log.Printf("%s %s: %v", c.Method(), c.Path(), err)

	msg := fallbackMessage
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return c.Status(code).JSON(fiber.Map{"success": false, "message": msg})
}

func serverError(c *fiber.Ctx, err error) error {
	log.Printf("%s %s: %v", c.Method(), c.Path(), err)
	msg := fallbackMessage
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return c.Status(500).JSON(fiber.Map{"success": false, "message": msg})
}

// proxyResult maps a backend envelope onto the HTTP response: transport
// failures become 500, business rejections 400 with the backend's message
// verbatim, success 200 with the payload passed through.
func proxyResult(c *fiber.Ctx, res *client.Result, err error) error {
	if err != nil {
		var rejected *client.RejectedError
		if errors.As(err, &rejected) {
			return c.Status(400).JSON(fiber.Map{"success": false, "message": rejected.Message})
		}
		return serverError(c, err)
	}
	if !res.Success {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": res.Message})
	}

	body := fiber.Map{"success": true}
	if res.Data != nil {
		body["data"] = res.Data
	}
	if res.Toko != nil {
		body["toko"] = res.Toko
	}
	return c.Status(200).JSON(body)
}
