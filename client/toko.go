package client

import (
	"context"
	"encoding/json"
	"net/http"
)

type TokoService struct {
	*Backend
}

func (t *TokoService) CreateToko(ctx context.Context, token string, payload json.RawMessage) (*Result, error) {
	return t.do(ctx, http.MethodPost, "/seller/toko", token, payload)
}

func (t *TokoService) GetMyToko(ctx context.Context, token string) (*Result, error) {
	return t.do(ctx, http.MethodGet, "/toko/me", token, nil)
}

func (t *TokoService) OpenStore(ctx context.Context, token string, payload any) (*Result, error) {
	return t.do(ctx, http.MethodPost, "/toko/open", token, payload)
}
