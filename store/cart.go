package store

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"jaja-bff/model"
)

// CartAPI is the slice of the backend client the cart store needs.
type CartAPI interface {
	GetCart(ctx context.Context, token string) (*model.Cart, error)
	AddToCart(ctx context.Context, token string, payload json.RawMessage) error
}

// CartStore holds the item count derived from the remote cart. The count is
// never adjusted optimistically; it only changes after a fresh read of the
// backend cart.
type CartStore struct {
	mu    sync.Mutex
	count int
	api   CartAPI
	subs  []func()
}

func NewCartStore(api CartAPI) *CartStore {
	return &CartStore{api: api}
}

func (s *CartStore) Subscribe(fn func()) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

func (s *CartStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

// FetchCartCount re-reads the remote cart and returns the new count. Backend
// failures degrade to 0 rather than surfacing as an error.
func (s *CartStore) FetchCartCount(ctx context.Context, token string) int {
	count := 0
	cart, err := s.api.GetCart(ctx, token)
	if err != nil {
		log.Printf("cart: fetch failed, count reset to 0: %v", err)
	} else if cart != nil {
		count = len(cart.Items)
	}

	s.mu.Lock()
	s.count = count
	subs := make([]func(), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
	return count
}

// AddToCartAndUpdate forwards the add payload, then refreshes the count from
// the backend. Two concurrent calls can interleave their refreshes; the last
// read to complete wins.
func (s *CartStore) AddToCartAndUpdate(ctx context.Context, token string, payload json.RawMessage) (int, error) {
	if err := s.api.AddToCart(ctx, token, payload); err != nil {
		return s.Count(), err
	}
	return s.FetchCartCount(ctx, token), nil
}
