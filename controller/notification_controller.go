package controller

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"jaja-bff/model"
	"jaja-bff/store"
)

type NotificationController struct {
	Orders *store.OrderNotificationStore
}

func (nc *NotificationController) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"pendingOrders": nc.Orders.PendingOrders(),
			"unreadCount":   nc.Orders.UnreadCount(),
		},
	})
}

func (nc *NotificationController) Add(c *fiber.Ctx) error {
	var order model.PendingOrder
	if err := json.Unmarshal(c.Body(), &order); err != nil {
		return serverError(c, err)
	}
	if order.IDData == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "id_data wajib diisi"})
	}
	if order.Status == "" {
		order.Status = model.OrderStatusPending
	}

	nc.Orders.AddPendingOrder(c.Context(), order)
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"unreadCount": nc.Orders.UnreadCount()}})
}

func (nc *NotificationController) Get(c *fiber.Ctx) error {
	order, ok := nc.Orders.GetPendingOrderById(c.Params("id"))
	if !ok {
		return c.Status(404).JSON(fiber.Map{"success": false, "message": "pesanan tidak ditemukan"})
	}
	return c.JSON(fiber.Map{"success": true, "data": order})
}

func (nc *NotificationController) Remove(c *fiber.Ctx) error {
	nc.Orders.RemovePendingOrder(c.Context(), c.Params("id"))
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"unreadCount": nc.Orders.UnreadCount()}})
}

func (nc *NotificationController) MarkPaid(c *fiber.Ctx) error {
	nc.Orders.MarkOrderAsPaid(c.Context(), c.Params("id"))
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"unreadCount": nc.Orders.UnreadCount()}})
}

func (nc *NotificationController) Sweep(c *fiber.Ctx) error {
	nc.Orders.ClearExpiredOrders(c.Context())
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"unreadCount": nc.Orders.UnreadCount()}})
}

func (nc *NotificationController) Clear(c *fiber.Ctx) error {
	nc.Orders.ClearAllOrders(c.Context())
	return c.JSON(fiber.Map{"success": true})
}
