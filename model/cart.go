package model

type CartItem struct {
	IDProduk uint    `json:"id_produk"`
	Name     string  `json:"name"`
	Qty      int     `json:"qty"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
}

type Cart struct {
	ID    uint       `json:"id"`
	Items []CartItem `json:"items"`
}
