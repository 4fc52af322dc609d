package client

import (
	"context"
	"net/http"
)

type WishlistService struct {
	*Backend
}

func (w *WishlistService) GetWishlist(ctx context.Context, token string) (*Result, error) {
	return w.do(ctx, http.MethodGet, "/wishlist", token, nil)
}

func (w *WishlistService) ToggleWishlist(ctx context.Context, token string, idProduk uint) (*Result, error) {
	return w.do(ctx, http.MethodPost, "/wishlist/toggle", token, map[string]uint{"id_produk": idProduk})
}
