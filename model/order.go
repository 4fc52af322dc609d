package model

// Status pesanan di notifikasi
const (
	OrderStatusPending = "pending"
	OrderStatusPaid    = "paid"
	OrderStatusExpired = "expired"
)

type OrderProduct struct {
	Name  string  `json:"name"`
	Qty   int     `json:"qty"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

type PendingOrder struct {
	IDData          string         `json:"id_data"`
	OrderNumber     string         `json:"order_number"`
	Total           float64        `json:"total"`
	CreatedAt       string         `json:"created_at"`
	BatasPembayaran string         `json:"batas_pembayaran"`
	Status          string         `json:"status"`
	Products        []OrderProduct `json:"products"`
}
