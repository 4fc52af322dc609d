package kafka

import (
	"context"
	"encoding/json"
	"log"

	"jaja-bff/model"
	"jaja-bff/store"
)

// === payload dari payment-service ===
type PaymentPaidEvent struct {
	EventType string `json:"event_type"`
	Data      struct {
		IDData string `json:"id_data"`
		PaidAt string `json:"paid_at"`
	} `json:"data"`
}

// === payload dari order-service ===
type OrderCreatedEvent struct {
	EventType string             `json:"event_type"`
	Data      model.PendingOrder `json:"data"`
}

// PaymentPaidHandler flips the matching notification entry to paid.
func PaymentPaidHandler(orders *store.OrderNotificationStore) func([]byte) {
	return func(msg []byte) {
		var event PaymentPaidEvent
		if err := json.Unmarshal(msg, &event); err != nil {
			log.Printf("invalid payment.paid payload: %v", err)
			return
		}
		if event.Data.IDData == "" {
			log.Printf("payment.paid without id_data, skip")
			return
		}

		orders.MarkOrderAsPaid(context.Background(), event.Data.IDData)
		log.Printf("order %s marked paid", event.Data.IDData)
	}
}

// OrderCreatedHandler inserts a fresh pending order into the notification
// tray.
func OrderCreatedHandler(orders *store.OrderNotificationStore) func([]byte) {
	return func(msg []byte) {
		var event OrderCreatedEvent
		if err := json.Unmarshal(msg, &event); err != nil {
			log.Printf("invalid order.created payload: %v", err)
			return
		}
		if event.Data.IDData == "" {
			log.Printf("order.created without id_data, skip")
			return
		}
		if event.Data.Status == "" {
			event.Data.Status = model.OrderStatusPending
		}

		orders.AddPendingOrder(context.Background(), event.Data)
		log.Printf("pending order %s added (order %s)", event.Data.IDData, event.Data.OrderNumber)
	}
}
