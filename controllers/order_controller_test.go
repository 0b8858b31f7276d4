package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digitalstore/digitalstore-api/models"
	"github.com/digitalstore/digitalstore-api/services"
	"github.com/digitalstore/digitalstore-api/testutil"
)

func seedCheckout(t *testing.T, env *testEnv) map[string]interface{} {
	t.Helper()
	testutil.CreateCustomer(t, env.db, "auth0|alice", "alice@example.com")
	cat := testutil.CreateCategory(t, env.db, "Phones", "phones")
	testutil.CreateProduct(t, env.db, cat, "phone", "1000", 5, testutil.WithDiscount(10))

	region := &models.Region{Name: "North"}
	require.NoError(t, env.db.Create(region).Error)
	city := &models.City{Name: "Harbor", RegionID: region.ID}
	require.NoError(t, env.db.Create(city).Error)

	return map[string]interface{}{
		"phone":     "+1 555 0100",
		"region_id": region.ID,
		"city_id":   city.ID,
		"street":    "Main",
		"home":      "7",
	}
}

func TestCheckout(t *testing.T) {
	env := newTestEnv(t)
	body := seedCheckout(t, env)

	w, resp := env.do(http.MethodPost, "/api/v1/cart/checkout", "auth0|alice", body)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "EMPTY_CART", resp.Error.Code)

	env.do(http.MethodPost, "/api/v1/add_or_delete/phone/add", "auth0|alice", nil)
	env.do(http.MethodPost, "/api/v1/add_or_delete/phone/add", "auth0|alice", nil)

	w, resp = env.do(http.MethodPost, "/api/v1/cart/checkout", "auth0|alice", map[string]interface{}{"phone": "1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)

	w, resp = env.do(http.MethodPost, "/api/v1/cart/checkout", "auth0|alice", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	placed := decode[services.PlacedOrder](t, resp.Data)
	assert.Equal(t, models.OrderStatusPlaced, placed.Order.Status)
	assert.True(t, decimal.NewFromInt(1800).Equal(placed.Summary.TotalPrice))
	require.NotNil(t, placed.Address)
	assert.Equal(t, "Main", placed.Address.Street)

	_, resp = env.do(http.MethodGet, "/api/v1/cart", "auth0|alice", nil)
	cart := decode[services.CartSummary](t, resp.Data)
	assert.NotEqual(t, placed.Order.ID, cart.OrderID)
	assert.Empty(t, cart.Lines)
}

func TestOrderHistory(t *testing.T) {
	env := newTestEnv(t)
	body := seedCheckout(t, env)

	var ids []uint
	for i := 0; i < 3; i++ {
		env.do(http.MethodPost, "/api/v1/add_or_delete/phone/add", "auth0|alice", nil)
		w, resp := env.do(http.MethodPost, "/api/v1/cart/checkout", "auth0|alice", body)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		ids = append(ids, decode[services.PlacedOrder](t, resp.Data).Order.ID)
	}

	w, resp := env.do(http.MethodGet, "/api/v1/orders?page=1&limit=2", "auth0|alice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]services.CartSummary](t, resp.Data)
	require.Len(t, list, 2)
	assert.Equal(t, ids[2], list[0].OrderID)
	pg := decode[services.Pagination](t, resp.Pagination)
	assert.Equal(t, int64(3), pg.Total)
	assert.Equal(t, 2, pg.TotalPages)

	w, resp = env.do(http.MethodGet, fmt.Sprintf("/api/v1/orders/%d", ids[0]), "auth0|alice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, ids[0], decode[services.PlacedOrder](t, resp.Data).Order.ID)

	testutil.CreateCustomer(t, env.db, "auth0|bob", "bob@example.com")
	w, _ = env.do(http.MethodGet, fmt.Sprintf("/api/v1/orders/%d", ids[0]), "auth0|bob", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, resp = env.do(http.MethodGet, "/api/v1/orders/999", "auth0|alice", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "ORDER_NOT_FOUND", resp.Error.Code)
}

func TestAdminUpdateOrderStatus(t *testing.T) {
	env := newTestEnv(t)
	body := seedCheckout(t, env)
	env.do(http.MethodPost, "/api/v1/add_or_delete/phone/add", "auth0|alice", nil)
	_, resp := env.do(http.MethodPost, "/api/v1/cart/checkout", "auth0|alice", body)
	id := decode[services.PlacedOrder](t, resp.Data).Order.ID
	path := fmt.Sprintf("/api/v1/admin/orders/%d", id)

	w, resp := env.do(http.MethodPatch, path, "auth0|alice", map[string]string{"status": "fulfilled"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "INSUFFICIENT_SCOPE", resp.Error.Code)

	w, resp = env.do(http.MethodPatch, path, "auth0|admin", map[string]interface{}{"status": "fulfilled", "payment": true}, adminScope)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	order := decode[models.Order](t, resp.Data)
	assert.Equal(t, models.OrderStatusFulfilled, order.Status)
	assert.True(t, order.Payment)

	w, resp = env.do(http.MethodPatch, path, "auth0|admin", map[string]string{"status": "cancelled"}, adminScope)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "INVALID_TRANSITION", resp.Error.Code)
}
