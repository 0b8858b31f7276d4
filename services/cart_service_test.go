package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/digitalstore/digitalstore-api/models"
	"github.com/digitalstore/digitalstore-api/repository"
	"github.com/digitalstore/digitalstore-api/testutil"
)

type CartServiceSuite struct {
	suite.Suite
	ctx      context.Context
	db       *gorm.DB
	svc      *CartService
	category *models.Category
	customer *models.Customer
}

func TestCartServiceSuite(t *testing.T) {
	suite.Run(t, new(CartServiceSuite))
}

func (s *CartServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.db = testutil.SetupTestDB(s.T())
	s.svc = NewCartService(repository.New(s.db), nil)
	s.category = testutil.CreateCategory(s.T(), s.db, "Phones", "phones")
	_, s.customer = testutil.CreateCustomer(s.T(), s.db, "auth0|alice", "alice@example.com")
}

func (s *CartServiceSuite) openOrder() *models.Order {
	ord, _, err := s.svc.GetOrCreateOpenOrder(s.ctx, s.customer)
	s.Require().NoError(err)
	return ord
}

func (s *CartServiceSuite) lineQuantity(orderID, productID uint) (int, bool) {
	var l models.OrderProduct
	err := s.db.Where("order_id = ? AND product_id = ?", orderID, productID).First(&l).Error
	if err != nil {
		return 0, false
	}
	return l.Quantity, true
}

func (s *CartServiceSuite) TestParseCartAction() {
	a, err := ParseCartAction("add")
	s.NoError(err)
	s.Equal(ActionAdd, a)

	a, err = ParseCartAction("delete")
	s.NoError(err)
	s.Equal(ActionDelete, a)

	for _, bad := range []string{"", "ADD", "remove", "increment"} {
		_, err := ParseCartAction(bad)
		s.ErrorIs(err, ErrInvalidAction, bad)
	}
}

func (s *CartServiceSuite) TestGetOrCreateOpenOrder_IsIdempotent() {
	first, created, err := s.svc.GetOrCreateOpenOrder(s.ctx, s.customer)
	s.Require().NoError(err)
	s.True(created)
	s.Equal(models.OrderStatusOpen, first.Status)
	s.False(first.Payment)
	s.True(first.Shipping)

	second, created, err := s.svc.GetOrCreateOpenOrder(s.ctx, s.customer)
	s.Require().NoError(err)
	s.False(created)
	s.Equal(first.ID, second.ID)

	var count int64
	s.db.Model(&models.Order{}).Where("customer_id = ? AND status = ?", s.customer.ID, models.OrderStatusOpen).Count(&count)
	s.Equal(int64(1), count)
}

func (s *CartServiceSuite) TestOpenOrderUniquePerCustomer() {
	s.openOrder()

	dup := &models.Order{CustomerID: s.customer.ID, Status: models.OrderStatusOpen, Shipping: true}
	s.Error(s.db.Create(dup).Error, "a second open order must violate the partial unique index")

	placed := &models.Order{CustomerID: s.customer.ID, Status: models.OrderStatusPlaced, Shipping: true}
	s.NoError(s.db.Create(placed).Error, "non-open orders are not constrained")
}

func (s *CartServiceSuite) TestApplyAction_AddTwiceWithDiscount() {
	testutil.CreateProduct(s.T(), s.db, s.category, "phone", "1000", 5, testutil.WithDiscount(10))
	ord := s.openOrder()

	for i := 0; i < 2; i++ {
		res, err := s.svc.ApplyAction(s.ctx, ord, "phone", ActionAdd)
		s.Require().NoError(err)
		s.Equal(ResultAdded, res)
	}

	sum, err := s.svc.Summarize(s.ctx, ord)
	s.Require().NoError(err)
	s.Require().Len(sum.Lines, 1)
	s.Equal(2, sum.Lines[0].Quantity)
	s.True(decimal.NewFromInt(900).Equal(sum.Lines[0].UnitPrice))
	s.True(decimal.NewFromInt(2000).Equal(sum.Lines[0].OldTotal))
	s.True(decimal.NewFromInt(1800).Equal(sum.TotalPrice), "total %s", sum.TotalPrice)
	s.Equal("1 800.00", sum.TotalDisplay)
	s.Equal(2, sum.TotalQuantity)
}

func (s *CartServiceSuite) TestApplyAction_AddStopsAtStock() {
	p := testutil.CreateProduct(s.T(), s.db, s.category, "last-one", "50", 1)
	ord := s.openOrder()

	res, err := s.svc.ApplyAction(s.ctx, ord, "last-one", ActionAdd)
	s.Require().NoError(err)
	s.Equal(ResultAdded, res)

	res, err = s.svc.ApplyAction(s.ctx, ord, "last-one", ActionAdd)
	s.Require().NoError(err)
	s.Equal(ResultStockExceeded, res)

	qty, ok := s.lineQuantity(ord.ID, p.ID)
	s.True(ok)
	s.Equal(1, qty)
}

func (s *CartServiceSuite) TestApplyAction_AddOutOfStockWritesNothing() {
	p := testutil.CreateProduct(s.T(), s.db, s.category, "sold-out", "50", 0)
	ord := s.openOrder()

	res, err := s.svc.ApplyAction(s.ctx, ord, "sold-out", ActionAdd)
	s.Require().NoError(err)
	s.Equal(ResultStockExceeded, res)

	_, ok := s.lineQuantity(ord.ID, p.ID)
	s.False(ok)
}

func (s *CartServiceSuite) TestApplyAction_DeleteDecrementsThenRemoves() {
	p := testutil.CreateProduct(s.T(), s.db, s.category, "case", "10", 5)
	ord := s.openOrder()

	for i := 0; i < 2; i++ {
		_, err := s.svc.ApplyAction(s.ctx, ord, "case", ActionAdd)
		s.Require().NoError(err)
	}

	res, err := s.svc.ApplyAction(s.ctx, ord, "case", ActionDelete)
	s.Require().NoError(err)
	s.Equal(ResultDecremented, res)
	qty, _ := s.lineQuantity(ord.ID, p.ID)
	s.Equal(1, qty)

	res, err = s.svc.ApplyAction(s.ctx, ord, "case", ActionDelete)
	s.Require().NoError(err)
	s.Equal(ResultRemoved, res)
	_, ok := s.lineQuantity(ord.ID, p.ID)
	s.False(ok, "a line reaching zero must be deleted")

	sum, err := s.svc.Summarize(s.ctx, ord)
	s.Require().NoError(err)
	s.Empty(sum.Lines)
	s.True(sum.TotalPrice.IsZero())
	s.Equal(0, sum.TotalQuantity)
}

func (s *CartServiceSuite) TestApplyAction_DeleteMissingLine() {
	testutil.CreateProduct(s.T(), s.db, s.category, "charger", "10", 5)
	ord := s.openOrder()

	res, err := s.svc.ApplyAction(s.ctx, ord, "charger", ActionDelete)
	s.Require().NoError(err)
	s.Equal(ResultNotInCart, res)

	var count int64
	s.db.Model(&models.OrderProduct{}).Count(&count)
	s.Zero(count)
}

func (s *CartServiceSuite) TestApplyAction_Errors() {
	ord := s.openOrder()

	_, err := s.svc.ApplyAction(s.ctx, ord, "missing", ActionAdd)
	s.ErrorIs(err, ErrProductNotFound)

	_, err = s.svc.ApplyAction(s.ctx, ord, "missing", CartAction("explode"))
	s.ErrorIs(err, ErrInvalidAction)

	ghost := &models.Order{ID: ord.ID + 100, CustomerID: s.customer.ID, Status: models.OrderStatusOpen}
	_, err = s.svc.ApplyAction(s.ctx, ghost, "missing", ActionAdd)
	s.ErrorIs(err, ErrOrderNotFound)
}

func (s *CartServiceSuite) TestApplyAction_StaleOpenOrderIsRechecked() {
	p := testutil.CreateProduct(s.T(), s.db, s.category, "phone", "1000", 5)
	ord := s.openOrder()
	_, err := s.svc.ApplyAction(s.ctx, ord, "phone", ActionAdd)
	s.Require().NoError(err)

	// checkout commits while the caller still holds the order it loaded as open
	stale := *ord
	s.Require().NoError(s.db.Model(&models.Order{}).Where("id = ?", ord.ID).Update("status", models.OrderStatusPlaced).Error)
	s.True(stale.IsOpen())

	for _, action := range []CartAction{ActionAdd, ActionDelete} {
		_, err = s.svc.ApplyAction(s.ctx, &stale, "phone", action)
		s.ErrorIs(err, ErrOrderNotOpen, "action %s", action)
	}
	qty, ok := s.lineQuantity(ord.ID, p.ID)
	s.True(ok)
	s.Equal(1, qty, "the placed order keeps the quantity it was checked out with")
}

func (s *CartServiceSuite) TestSummarize_TotalsMatchLines() {
	testutil.CreateProduct(s.T(), s.db, s.category, "a", "19.90", 10)
	testutil.CreateProduct(s.T(), s.db, s.category, "b", "250", 10, testutil.WithDiscount(20))
	testutil.CreateProduct(s.T(), s.db, s.category, "c", "3.33", 10, testutil.WithDiscount(0))
	ord := s.openOrder()

	adds := map[string]int{"a": 3, "b": 1, "c": 2}
	for slug, n := range adds {
		for i := 0; i < n; i++ {
			_, err := s.svc.ApplyAction(s.ctx, ord, slug, ActionAdd)
			s.Require().NoError(err)
		}
	}

	sum, err := s.svc.Summarize(s.ctx, ord)
	s.Require().NoError(err)
	s.Require().Len(sum.Lines, 3)

	wantTotal := decimal.Zero
	wantQty := 0
	for _, l := range sum.Lines {
		s.True(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))).Equal(l.Total))
		wantTotal = wantTotal.Add(l.Total)
		wantQty += l.Quantity
	}
	s.True(wantTotal.Equal(sum.TotalPrice))
	s.Equal(wantQty, sum.TotalQuantity)
	s.Equal(6, sum.TotalQuantity)
	// 3*19.90 + 1*200 + 2*3.33
	s.True(decimal.RequireFromString("266.36").Equal(sum.TotalPrice), "total %s", sum.TotalPrice)
}

func (s *CartServiceSuite) TestSummarize_ReflectsPriceChanges() {
	p := testutil.CreateProduct(s.T(), s.db, s.category, "tablet", "500", 3)
	ord := s.openOrder()
	_, err := s.svc.ApplyAction(s.ctx, ord, "tablet", ActionAdd)
	s.Require().NoError(err)

	s.Require().NoError(s.db.Model(p).Update("discount", 50).Error)

	sum, err := s.svc.Summarize(s.ctx, ord)
	s.Require().NoError(err)
	s.True(decimal.NewFromInt(250).Equal(sum.TotalPrice))
}

func (s *CartServiceSuite) TestCart_UnknownSubject() {
	_, err := s.svc.Cart(s.ctx, "auth0|nobody")
	s.ErrorIs(err, ErrCustomerNotFound)
}

func (s *CartServiceSuite) TestAddOrDelete_ReportsResult() {
	testutil.CreateProduct(s.T(), s.db, s.category, "watch", "300", 1)

	sum, err := s.svc.AddOrDelete(s.ctx, "auth0|alice", "watch", "add")
	s.Require().NoError(err)
	s.Equal(ResultAdded, sum.Result)
	s.Equal(1, sum.TotalQuantity)

	sum, err = s.svc.AddOrDelete(s.ctx, "auth0|alice", "watch", "add")
	s.Require().NoError(err)
	s.Equal(ResultStockExceeded, sum.Result)
	s.Equal(1, sum.TotalQuantity)

	_, err = s.svc.AddOrDelete(s.ctx, "auth0|alice", "watch", "double")
	s.ErrorIs(err, ErrInvalidAction)

	cart, err := s.svc.Cart(s.ctx, "auth0|alice")
	s.Require().NoError(err)
	s.Equal(sum.OrderID, cart.OrderID)
	s.Empty(cart.Result)
}

func (s *CartServiceSuite) TestRemoveLine() {
	testutil.CreateProduct(s.T(), s.db, s.category, "cable", "5", 10)
	sum, err := s.svc.AddOrDelete(s.ctx, "auth0|alice", "cable", "add")
	s.Require().NoError(err)
	s.Require().Len(sum.Lines, 1)
	lineID := sum.Lines[0].ID

	_, err = s.svc.RemoveLine(s.ctx, "auth0|alice", sum.OrderID, lineID+100)
	s.ErrorIs(err, ErrLineNotFound)

	_, err = s.svc.RemoveLine(s.ctx, "auth0|alice", sum.OrderID+100, lineID)
	s.ErrorIs(err, ErrOrderNotFound)

	testutil.CreateCustomer(s.T(), s.db, "auth0|bob", "bob@example.com")
	_, err = s.svc.RemoveLine(s.ctx, "auth0|bob", sum.OrderID, lineID)
	s.ErrorIs(err, ErrForbidden)

	after, err := s.svc.RemoveLine(s.ctx, "auth0|alice", sum.OrderID, lineID)
	s.Require().NoError(err)
	s.Empty(after.Lines)
}

func (s *CartServiceSuite) TestRemoveLine_PlacedOrder() {
	testutil.CreateProduct(s.T(), s.db, s.category, "cable", "5", 10)
	sum, err := s.svc.AddOrDelete(s.ctx, "auth0|alice", "cable", "add")
	s.Require().NoError(err)

	s.Require().NoError(s.db.Model(&models.Order{}).Where("id = ?", sum.OrderID).Update("status", models.OrderStatusPlaced).Error)

	_, err = s.svc.RemoveLine(s.ctx, "auth0|alice", sum.OrderID, sum.Lines[0].ID)
	s.ErrorIs(err, ErrOrderNotOpen)
}
