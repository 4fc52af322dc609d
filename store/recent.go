package store

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"jaja-bff/model"
)

const (
	RecentlyViewedKey = "recently-viewed-storage"
	maxRecentlyViewed = 8
)

type recentlyViewedSnapshot struct {
	Products []model.RecentlyViewedProduct `json:"products"`
}

// RecentlyViewedStore keeps the most recent distinct products a user opened,
// newest first, capped at maxRecentlyViewed entries.
type RecentlyViewedStore struct {
	mu       sync.Mutex
	products []model.RecentlyViewedProduct
	storage  Storage
	subs     []func()
	nowFunc  func() time.Time
}

func NewRecentlyViewedStore(ctx context.Context, storage Storage) *RecentlyViewedStore {
	s := &RecentlyViewedStore{
		storage: storage,
		nowFunc: time.Now,
	}

	blob, err := storage.Load(ctx, RecentlyViewedKey)
	if err != nil {
		log.Printf("recently-viewed: load failed, starting empty: %v", err)
		return s
	}
	if blob == nil {
		return s
	}

	var snap recentlyViewedSnapshot
	if err := json.Unmarshal(blob, &snap); err != nil {
		log.Printf("recently-viewed: corrupt snapshot, starting empty: %v", err)
		return s
	}
	s.products = snap.Products
	return s
}

func (s *RecentlyViewedStore) Subscribe(fn func()) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

// AddProduct records a view. A product already in the list is moved to the
// front with a fresh timestamp; the list never exceeds maxRecentlyViewed.
func (s *RecentlyViewedStore) AddProduct(ctx context.Context, p model.RecentlyViewedProduct) {
	s.mu.Lock()

	filtered := make([]model.RecentlyViewedProduct, 0, len(s.products)+1)
	p.ViewedAt = s.nowFunc()
	filtered = append(filtered, p)
	for _, existing := range s.products {
		if existing.ID != p.ID {
			filtered = append(filtered, existing)
		}
	}
	if len(filtered) > maxRecentlyViewed {
		filtered = filtered[:maxRecentlyViewed]
	}
	s.products = filtered

	s.persistAndNotify(ctx)
}

// GetRecentProducts returns up to limit entries, newest first. limit <= 0
// means the full capped list.
func (s *RecentlyViewedStore) GetRecentProducts(limit int) []model.RecentlyViewedProduct {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 || limit > len(s.products) {
		limit = len(s.products)
	}
	out := make([]model.RecentlyViewedProduct, limit)
	copy(out, s.products[:limit])
	return out
}

func (s *RecentlyViewedStore) ClearAll(ctx context.Context) {
	s.mu.Lock()
	s.products = nil
	s.persistAndNotify(ctx)
}

// persistAndNotify must be called with s.mu held; it releases the lock. The
// blob is marshaled and saved before the lock drops so concurrent mutations
// cannot overwrite a newer snapshot with an older one.
func (s *RecentlyViewedStore) persistAndNotify(ctx context.Context) {
	blob, err := json.Marshal(recentlyViewedSnapshot{Products: s.products})
	if err != nil {
		log.Printf("recently-viewed: marshal snapshot: %v", err)
	} else if err := s.storage.Save(ctx, RecentlyViewedKey, blob); err != nil {
		log.Printf("recently-viewed: persist failed: %v", err)
	}

	subs := make([]func(), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}
