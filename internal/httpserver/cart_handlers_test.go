package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/bakelk/cake_shop/internal/models"
)

func TestCartRequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/api/cart", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	bad := &http.Cookie{Name: "accessToken", Value: "not-a-token", Path: "/"}
	rec = env.do(http.MethodGet, "/api/cart", nil, bad)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetCartEmpty(t *testing.T) {
	env := newTestEnv(t)
	ck := env.loginAs(uuid.New(), "user", "Nimal")

	rec := env.do(http.MethodGet, "/api/cart", nil, ck)
	require.Equal(t, http.StatusOK, rec.Code)

	var cart models.Cart
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cart))
	require.Empty(t, cart.Items)
	require.Zero(t, cart.Total)
}

func TestAddToCart(t *testing.T) {
	env := newTestEnv(t)
	p := env.seedProduct("Ribbon Cake", 1000, 10)
	ck := env.loginAs(uuid.New(), "user", "Nimal")

	load := map[string]any{
		"cakeId":   p.ID,
		"quantity": 2,
		"toppings": []map[string]any{{"name": "Chocolate Chips", "price": 200}},
	}

	rec := env.do(http.MethodPost, "/api/cart/add", load, ck)
	require.Equal(t, http.StatusOK, rec.Code)

	var cart models.Cart
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cart))
	require.Len(t, cart.Items, 1)
	require.Equal(t, p.ID, cart.Items[0].ProductID)
	require.Equal(t, float64(2400), cart.Items[0].TotalPrice)
	require.Equal(t, float64(2400), cart.Total)
}

func TestAddToCartErrors(t *testing.T) {
	env := newTestEnv(t)
	p := env.seedProduct("Ribbon Cake", 1000, 1)
	ck := env.loginAs(uuid.New(), "user", "Nimal")

	rec := env.do(http.MethodPost, "/api/cart/add", map[string]any{"cakeId": uuid.New(), "quantity": 1}, ck)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(http.MethodPost, "/api/cart/add", map[string]any{"cakeId": p.ID, "quantity": 5}, ck)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(http.MethodPost, "/api/cart/add", map[string]any{"cakeId": p.ID, "quantity": 0}, ck)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateCartItem(t *testing.T) {
	env := newTestEnv(t)
	p := env.seedProduct("Ribbon Cake", 1000, 10)
	userID := uuid.New()
	ck := env.loginAs(userID, "user", "Nimal")

	rec := env.do(http.MethodPost, "/api/cart/add", map[string]any{
		"cakeId":   p.ID,
		"quantity": 2,
		"toppings": []map[string]any{{"name": "Chocolate Chips", "price": 200}},
	}, ck)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(http.MethodPut, "/api/cart/update", map[string]any{"cakeId": p.ID, "quantity": 3}, ck)
	require.Equal(t, http.StatusOK, rec.Code)

	var cart models.Cart
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cart))
	require.Equal(t, uint(3), cart.Items[0].Quantity)
	require.Equal(t, float64(3600), cart.Total)
}

func TestRemoveCartItem(t *testing.T) {
	env := newTestEnv(t)
	p := env.seedProduct("Ribbon Cake", 1000, 10)
	ck := env.loginAs(uuid.New(), "user", "Nimal")

	rec := env.do(http.MethodPost, "/api/cart/add", map[string]any{"cakeId": p.ID, "quantity": 1}, ck)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(http.MethodDelete, "/api/cart/remove", map[string]any{"cakeId": p.ID}, ck)
	require.Equal(t, http.StatusOK, rec.Code)

	var cart models.Cart
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cart))
	require.Empty(t, cart.Items)
	require.Zero(t, cart.Total)
}

// Carts are keyed by identity: one user's additions never show up in
// another's cart.
func TestCartIsolatedPerUser(t *testing.T) {
	env := newTestEnv(t)
	p := env.seedProduct("Ribbon Cake", 1000, 10)
	first := env.loginAs(uuid.New(), "user", "Nimal")
	second := env.loginAs(uuid.New(), "user", "Kamal")

	rec := env.do(http.MethodPost, "/api/cart/add", map[string]any{"cakeId": p.ID, "quantity": 1}, first)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(http.MethodGet, "/api/cart", nil, second)
	require.Equal(t, http.StatusOK, rec.Code)

	var cart models.Cart
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cart))
	require.Empty(t, cart.Items)
}
