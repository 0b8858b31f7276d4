package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digitalstore/digitalstore-api/services"
	"github.com/digitalstore/digitalstore-api/testutil"
)

func TestCart_RequiresAuthentication(t *testing.T) {
	env := newTestEnv(t)

	for _, r := range []struct{ method, path string }{
		{http.MethodGet, "/api/v1/cart"},
		{http.MethodPost, "/api/v1/add_or_delete/phone/add"},
		{http.MethodDelete, "/api/v1/orders/1/products/1"},
		{http.MethodPost, "/api/v1/cart/checkout"},
	} {
		w, resp := env.do(r.method, r.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, r.path)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "INVALID_TOKEN", resp.Error.Code)
	}
}

func TestCart_UnregisteredCaller(t *testing.T) {
	env := newTestEnv(t)

	w, resp := env.do(http.MethodGet, "/api/v1/cart", "auth0|stranger", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "CUSTOMER_NOT_FOUND", resp.Error.Code)
}

func TestCart_EmptyCartIsCreated(t *testing.T) {
	env := newTestEnv(t)
	testutil.CreateCustomer(t, env.db, "auth0|alice", "alice@example.com")

	w, resp := env.do(http.MethodGet, "/api/v1/cart", "auth0|alice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	first := decode[services.CartSummary](t, resp.Data)
	assert.Empty(t, first.Lines)
	assert.True(t, first.TotalPrice.IsZero())

	_, resp = env.do(http.MethodGet, "/api/v1/cart", "auth0|alice", nil)
	second := decode[services.CartSummary](t, resp.Data)
	assert.Equal(t, first.OrderID, second.OrderID)
}

func TestAddOrDelete_TotalsWithDiscount(t *testing.T) {
	env := newTestEnv(t)
	testutil.CreateCustomer(t, env.db, "auth0|alice", "alice@example.com")
	cat := testutil.CreateCategory(t, env.db, "Phones", "phones")
	testutil.CreateProduct(t, env.db, cat, "phone", "1000", 5, testutil.WithDiscount(10))

	var sum services.CartSummary
	for i := 0; i < 2; i++ {
		w, resp := env.do(http.MethodPost, "/api/v1/add_or_delete/phone/add", "auth0|alice", nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		sum = decode[services.CartSummary](t, resp.Data)
		assert.Equal(t, services.ResultAdded, sum.Result)
	}

	require.Len(t, sum.Lines, 1)
	assert.Equal(t, 2, sum.Lines[0].Quantity)
	assert.Equal(t, 2, sum.TotalQuantity)
	assert.True(t, decimal.NewFromInt(1800).Equal(sum.TotalPrice), "total %s", sum.TotalPrice)
	assert.Equal(t, "1 800.00", sum.TotalDisplay)
}

func TestAddOrDelete_StockLimitIsReportedNotFailed(t *testing.T) {
	env := newTestEnv(t)
	testutil.CreateCustomer(t, env.db, "auth0|alice", "alice@example.com")
	cat := testutil.CreateCategory(t, env.db, "Phones", "phones")
	testutil.CreateProduct(t, env.db, cat, "rare", "10", 1)

	_, resp := env.do(http.MethodPost, "/api/v1/add_or_delete/rare/add", "auth0|alice", nil)
	assert.Equal(t, services.ResultAdded, decode[services.CartSummary](t, resp.Data).Result)

	w, resp := env.do(http.MethodPost, "/api/v1/add_or_delete/rare/add", "auth0|alice", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	sum := decode[services.CartSummary](t, resp.Data)
	assert.Equal(t, services.ResultStockExceeded, sum.Result)
	assert.Equal(t, 1, sum.TotalQuantity)
}

func TestAddOrDelete_DeleteRemovesLineAtOne(t *testing.T) {
	env := newTestEnv(t)
	testutil.CreateCustomer(t, env.db, "auth0|alice", "alice@example.com")
	cat := testutil.CreateCategory(t, env.db, "Phones", "phones")
	testutil.CreateProduct(t, env.db, cat, "case", "10", 3)

	env.do(http.MethodPost, "/api/v1/add_or_delete/case/add", "auth0|alice", nil)
	w, resp := env.do(http.MethodPost, "/api/v1/add_or_delete/case/delete", "auth0|alice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	sum := decode[services.CartSummary](t, resp.Data)
	assert.Equal(t, services.ResultRemoved, sum.Result)
	assert.Empty(t, sum.Lines)

	_, resp = env.do(http.MethodGet, "/api/v1/cart", "auth0|alice", nil)
	assert.Empty(t, decode[services.CartSummary](t, resp.Data).Lines)

	_, resp = env.do(http.MethodPost, "/api/v1/add_or_delete/case/delete", "auth0|alice", nil)
	assert.Equal(t, services.ResultNotInCart, decode[services.CartSummary](t, resp.Data).Result)
}

func TestAddOrDelete_Errors(t *testing.T) {
	env := newTestEnv(t)
	testutil.CreateCustomer(t, env.db, "auth0|alice", "alice@example.com")
	cat := testutil.CreateCategory(t, env.db, "Phones", "phones")
	testutil.CreateProduct(t, env.db, cat, "phone", "10", 3)

	w, resp := env.do(http.MethodPost, "/api/v1/add_or_delete/phone/explode", "auth0|alice", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_ACTION", resp.Error.Code)

	w, resp = env.do(http.MethodPost, "/api/v1/add_or_delete/missing/add", "auth0|alice", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "PRODUCT_NOT_FOUND", resp.Error.Code)
}

func TestRemoveLine(t *testing.T) {
	env := newTestEnv(t)
	testutil.CreateCustomer(t, env.db, "auth0|alice", "alice@example.com")
	testutil.CreateCustomer(t, env.db, "auth0|bob", "bob@example.com")
	cat := testutil.CreateCategory(t, env.db, "Phones", "phones")
	testutil.CreateProduct(t, env.db, cat, "phone", "10", 3)

	_, resp := env.do(http.MethodPost, "/api/v1/add_or_delete/phone/add", "auth0|alice", nil)
	sum := decode[services.CartSummary](t, resp.Data)
	path := fmt.Sprintf("/api/v1/orders/%d/products/%d", sum.OrderID, sum.Lines[0].ID)

	w, resp := env.do(http.MethodDelete, path, "auth0|bob", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "FORBIDDEN", resp.Error.Code)

	w, resp = env.do(http.MethodDelete, "/api/v1/orders/abc/products/1", "auth0|alice", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_ID", resp.Error.Code)

	w, resp = env.do(http.MethodDelete, path, "auth0|alice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[services.CartSummary](t, resp.Data).Lines)

	w, resp = env.do(http.MethodDelete, path, "auth0|alice", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "LINE_NOT_FOUND", resp.Error.Code)
}
