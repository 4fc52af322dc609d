package model

type WishlistItem struct {
	IDProduk uint    `json:"id_produk"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Slug     string  `json:"slug"`
}
