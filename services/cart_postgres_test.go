//go:build integration

package services

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digitalstore/digitalstore-api/models"
	"github.com/digitalstore/digitalstore-api/repository"
	"github.com/digitalstore/digitalstore-api/testutil"
)

func TestPostgres_ConcurrentFirstAddsToEmptyCart(t *testing.T) {
	db := testutil.SetupPostgresDB(t)
	carts := NewCartService(repository.New(db), nil)
	ctx := context.Background()
	cat := testutil.CreateCategory(t, db, "Phones", "phones")
	p := testutil.CreateProduct(t, db, cat, "phone", "10", 50)
	testutil.CreateCustomer(t, db, "auth0|pg", "pg@example.com")

	const workers = 12
	results := make([]ActionResult, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sum, err := carts.AddOrDelete(ctx, "auth0|pg", "phone", "add")
			errs[i] = err
			if sum != nil {
				results[i] = sum.Result
			}
		}(i)
	}
	wg.Wait()

	for i := range errs {
		require.NoError(t, errs[i])
		assert.Equal(t, ResultAdded, results[i])
	}

	var lines []models.OrderProduct
	require.NoError(t, db.Where("product_id = ?", p.ID).Find(&lines).Error)
	require.Len(t, lines, 1, "one line per product")
	assert.Equal(t, workers, lines[0].Quantity)
}

func TestPostgres_AddRacingCheckout(t *testing.T) {
	db := testutil.SetupPostgresDB(t)
	repo := repository.New(db)
	carts := NewCartService(repo, nil)
	orders := NewOrderService(repo, nil)
	ctx := context.Background()

	cat := testutil.CreateCategory(t, db, "Phones", "phones")
	testutil.CreateProduct(t, db, cat, "phone", "1000", 100)
	testutil.CreateProduct(t, db, cat, "case", "25", 100)
	region := &models.Region{Name: "North"}
	require.NoError(t, db.Create(region).Error)
	city := &models.City{Name: "Harbor", RegionID: region.ID}
	require.NoError(t, db.Create(city).Error)
	in := CheckoutInput{Phone: "+1 555 0100", RegionID: region.ID, CityID: city.ID, Street: "Main", Home: "7"}

	for round := 0; round < 10; round++ {
		subject := fmt.Sprintf("auth0|racer%d", round)
		testutil.CreateCustomer(t, db, subject, fmt.Sprintf("racer%d@example.com", round))
		_, err := carts.AddOrDelete(ctx, subject, "phone", "add")
		require.NoError(t, err)

		var (
			wg       sync.WaitGroup
			addErr   error
			placed   *PlacedOrder
			placeErr error
		)
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, addErr = carts.AddOrDelete(ctx, subject, "case", "add")
		}()
		go func() {
			defer wg.Done()
			placed, placeErr = orders.PlaceOrder(ctx, subject, in)
		}()
		wg.Wait()

		require.NoError(t, placeErr)
		if addErr != nil {
			assert.ErrorIs(t, addErr, ErrOrderNotOpen)
		}

		var stored []models.OrderProduct
		require.NoError(t, db.Where("order_id = ?", placed.Order.ID).Find(&stored).Error)
		quantity := 0
		for _, l := range stored {
			quantity += l.Quantity
		}
		assert.Equal(t, placed.Summary.TotalQuantity, quantity, "round %d: placed order changed after checkout priced it", round)
	}
}
