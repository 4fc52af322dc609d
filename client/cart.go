package client

import (
	"context"
	"encoding/json"
	"net/http"

	"jaja-bff/model"
)

type CartService struct {
	*Backend
}

func (c *CartService) GetCart(ctx context.Context, token string) (*model.Cart, error) {
	res, err := c.do(ctx, http.MethodGet, "/cart", token, nil)
	if err != nil {
		return nil, err
	}
	if !res.Success {
		return nil, &RejectedError{Message: res.Message}
	}

	var cart model.Cart
	if err := json.Unmarshal(res.Data, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *CartService) AddToCart(ctx context.Context, token string, payload json.RawMessage) error {
	res, err := c.do(ctx, http.MethodPost, "/cart", token, payload)
	if err != nil {
		return err
	}
	if !res.Success {
		return &RejectedError{Message: res.Message}
	}
	return nil
}
