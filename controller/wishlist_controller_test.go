package controller

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jaja-bff/client"
	"jaja-bff/model"
)

type fakeWishlistAPI struct {
	result   *client.Result
	err      error
	toggled  []uint
	getCalls int
}

func (f *fakeWishlistAPI) GetWishlist(_ context.Context, _ string) (*client.Result, error) {
	f.getCalls++
	return f.result, f.err
}

func (f *fakeWishlistAPI) ToggleWishlist(_ context.Context, _ string, idProduk uint) (*client.Result, error) {
	f.toggled = append(f.toggled, idProduk)
	return f.result, f.err
}

func newWishlistApp(api *fakeWishlistAPI) *fiber.App {
	app := fiber.New()
	wc := &WishlistController{API: api}
	app.Get("/api/wishlist", passAuth, wc.Get)
	app.Post("/api/wishlist", passAuth, wc.Toggle)
	return app
}

func TestWishlistToggle_ZeroIDRejected(t *testing.T) {
	api := &fakeWishlistAPI{result: &client.Result{Success: true}}
	app := newWishlistApp(api)

	resp, raw := postJSON(t, app, "/api/wishlist", `{"id_produk":0}`)

	assert.Equal(t, 400, resp.StatusCode)
	assert.Contains(t, raw, "id_produk tidak valid")
	assert.Empty(t, api.toggled)
}

func TestWishlistToggle_MissingIDRejected(t *testing.T) {
	api := &fakeWishlistAPI{result: &client.Result{Success: true}}
	app := newWishlistApp(api)

	resp, raw := postJSON(t, app, "/api/wishlist", `{}`)

	assert.Equal(t, 400, resp.StatusCode)
	assert.Contains(t, raw, "id_produk tidak valid")
}

func TestWishlistToggle_StringIDCoerced(t *testing.T) {
	api := &fakeWishlistAPI{result: &client.Result{Success: true}}
	app := newWishlistApp(api)

	resp, _ := postJSON(t, app, "/api/wishlist", `{"id_produk":"15"}`)

	assert.Equal(t, 200, resp.StatusCode)
	require.Len(t, api.toggled, 1)
	assert.Equal(t, uint(15), api.toggled[0])
}

func TestWishlistGet_PassesDataThrough(t *testing.T) {
	items, err := json.Marshal([]model.WishlistItem{
		{IDProduk: 3, Name: "Sepatu", Price: 350000, Slug: "sepatu"},
	})
	require.NoError(t, err)

	api := &fakeWishlistAPI{result: &client.Result{Success: true, Data: items}}
	app := newWishlistApp(api)

	req := httptest.NewRequest(http.MethodGet, "/api/wishlist", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)

	assert.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, string(raw), "Sepatu")
	assert.Equal(t, 1, api.getCalls)
}
