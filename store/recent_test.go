package store

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jaja-bff/model"
)

func product(id string) model.RecentlyViewedProduct {
	return model.RecentlyViewedProduct{
		ID:      id,
		Name:    "Produk " + id,
		Price:   15000,
		Image:   "/img/" + id + ".jpg",
		Address: "Kota Bandung",
		Slug:    "produk-" + id,
	}
}

func TestRecentlyViewed_AddKeepsNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := NewRecentlyViewedStore(ctx, NewMemoryStorage())

	s.AddProduct(ctx, product("a"))
	s.AddProduct(ctx, product("b"))
	s.AddProduct(ctx, product("c"))

	got := s.GetRecentProducts(0)
	require.Len(t, got, 3)
	assert.Equal(t, "c", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
	assert.Equal(t, "a", got[2].ID)
}

func TestRecentlyViewed_ReAddMovesToFrontWithFreshTimestamp(t *testing.T) {
	ctx := context.Background()
	s := NewRecentlyViewedStore(ctx, NewMemoryStorage())

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	current := base
	s.nowFunc = func() time.Time { return current }

	s.AddProduct(ctx, product("a"))
	current = base.Add(time.Minute)
	s.AddProduct(ctx, product("b"))
	current = base.Add(2 * time.Minute)
	s.AddProduct(ctx, product("a"))

	got := s.GetRecentProducts(0)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, base.Add(2*time.Minute), got[0].ViewedAt)
	assert.Equal(t, "b", got[1].ID)
}

func TestRecentlyViewed_BoundedAtEight(t *testing.T) {
	ctx := context.Background()
	s := NewRecentlyViewedStore(ctx, NewMemoryStorage())

	for i := 0; i < 12; i++ {
		s.AddProduct(ctx, product(fmt.Sprintf("p%d", i)))
	}

	got := s.GetRecentProducts(0)
	require.Len(t, got, maxRecentlyViewed)
	assert.Equal(t, "p11", got[0].ID)
	assert.Equal(t, "p4", got[len(got)-1].ID)
}

func TestRecentlyViewed_NoDuplicateIDs(t *testing.T) {
	ctx := context.Background()
	s := NewRecentlyViewedStore(ctx, NewMemoryStorage())

	for _, id := range []string{"a", "b", "a", "c", "b", "a"} {
		s.AddProduct(ctx, product(id))
	}

	got := s.GetRecentProducts(0)
	seen := map[string]bool{}
	for _, p := range got {
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
	}
	assert.Len(t, got, 3)
}

func TestRecentlyViewed_GetWithLimit(t *testing.T) {
	ctx := context.Background()
	s := NewRecentlyViewedStore(ctx, NewMemoryStorage())

	s.AddProduct(ctx, product("a"))
	s.AddProduct(ctx, product("b"))

	assert.Len(t, s.GetRecentProducts(1), 1)
	// limit larger than the list returns everything
	assert.Len(t, s.GetRecentProducts(25), 2)
}

func TestRecentlyViewed_PersistRoundTrip(t *testing.T) {
	ctx := context.Background()
	mem := NewMemoryStorage()

	s := NewRecentlyViewedStore(ctx, mem)
	s.nowFunc = func() time.Time { return time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC) }
	s.AddProduct(ctx, product("a"))
	s.AddProduct(ctx, product("b"))
	before := s.GetRecentProducts(0)

	restored := NewRecentlyViewedStore(ctx, mem)
	assert.Equal(t, before, restored.GetRecentProducts(0))
}

func TestRecentlyViewed_CorruptBlobStartsEmpty(t *testing.T) {
	ctx := context.Background()
	mem := NewMemoryStorage()
	require.NoError(t, mem.Save(ctx, RecentlyViewedKey, []byte("{not json")))

	s := NewRecentlyViewedStore(ctx, mem)
	assert.Empty(t, s.GetRecentProducts(0))
}

func TestRecentlyViewed_ClearAll(t *testing.T) {
	ctx := context.Background()
	s := NewRecentlyViewedStore(ctx, NewMemoryStorage())

	s.AddProduct(ctx, product("a"))
	s.ClearAll(ctx)
	assert.Empty(t, s.GetRecentProducts(0))
}

func TestRecentlyViewed_ConcurrentAddsKeepSnapshotConsistent(t *testing.T) {
	ctx := context.Background()
	mem := NewMemoryStorage()
	s := NewRecentlyViewedStore(ctx, mem)
	s.nowFunc = func() time.Time { return time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC) }

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				s.AddProduct(ctx, product(fmt.Sprintf("p%d-%d", g, i%3)))
			}
		}(g)
	}
	wg.Wait()

	got := s.GetRecentProducts(0)
	assert.LessOrEqual(t, len(got), maxRecentlyViewed)
	seen := map[string]bool{}
	for _, p := range got {
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
	}

	restored := NewRecentlyViewedStore(ctx, mem)
	assert.Equal(t, got, restored.GetRecentProducts(0))
}

func TestRecentlyViewed_SubscribersNotified(t *testing.T) {
	ctx := context.Background()
	s := NewRecentlyViewedStore(ctx, NewMemoryStorage())

	calls := 0
	s.Subscribe(func() { calls++ })

	s.AddProduct(ctx, product("a"))
	s.ClearAll(ctx)
	assert.Equal(t, 2, calls)
}
