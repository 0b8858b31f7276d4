package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/digitalstore/digitalstore-api/models"
	"github.com/digitalstore/digitalstore-api/repository"
)

// CheckoutInput is the shipping information captured when a cart is placed
type CheckoutInput struct {
	Phone    string  `json:"phone" binding:"required"`
	Comment  *string `json:"comment"`
	RegionID uint    `json:"region_id" binding:"required"`
	CityID   uint    `json:"city_id" binding:"required"`
	Street   string  `json:"street" binding:"required"`
	Home     string  `json:"home" binding:"required"`
	Flat     *string `json:"flat"`
}

// UpdateStatusInput is an admin change to a placed order
type UpdateStatusInput struct {
	Status  *string `json:"status"`
	Payment *bool   `json:"payment"`
}

// PlacedOrder is a checked-out order with its priced lines and shipping address
type PlacedOrder struct {
	Order   *models.Order           `json:"order"`
	Summary *CartSummary            `json:"summary"`
	Address *models.ShippingAddress `json:"shipping_address,omitempty"`
}

type OrderService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewOrderService(repo *repository.Repository, log *zap.Logger) *OrderService {
	if log == nil {
		log = zap.NewNop()
	}
	return &OrderService{repo: repo, log: log, now: time.Now}
}

// PlaceOrder moves the caller's open cart to placed and records where to ship it
func (s *OrderService) PlaceOrder(ctx context.Context, subject string, in CheckoutInput) (*PlacedOrder, error) {
	if strings.TrimSpace(in.Phone) == "" || strings.TrimSpace(in.Street) == "" || strings.TrimSpace(in.Home) == "" {
		return nil, fmt.Errorf("%w: phone, street and home are required", ErrInvalidInput)
	}

	customer, err := resolveCustomer(ctx, s.repo, subject)
	if err != nil {
		return nil, err
	}

	var placed PlacedOrder
	err = s.repo.WithTx(ctx, func(tx *repository.Repository) error {
		order, err := tx.Orders.GetOpen(ctx, customer.ID)
		if errors.Is(err, repository.ErrNotFound) {
			return ErrEmptyCart
		}
		if err != nil {
			return err
		}
		// a checkout racing this one may have placed the cart while we waited for the lock
		if err := lockOpenOrder(ctx, tx, order); err != nil {
			return err
		}

		lines, err := tx.OrderProducts.ListByOrder(ctx, order.ID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return ErrEmptyCart
		}
		for _, l := range lines {
			if l.Product == nil || l.Quantity > l.Product.Quantity {
				return fmt.Errorf("%w: line %d", ErrStockExceeded, l.ID)
			}
		}

		city, err := tx.Regions.GetCity(ctx, in.CityID)
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCityNotFound
		}
		if err != nil {
			return err
		}
		if city.RegionID != in.RegionID {
			return fmt.Errorf("%w: city %d is not in region %d", ErrInvalidInput, in.CityID, in.RegionID)
		}

		addr := &models.ShippingAddress{
			CustomerID: customer.ID,
			OrderID:    order.ID,
			Phone:      in.Phone,
			Comment:    in.Comment,
			Street:     in.Street,
			Home:       in.Home,
			Flat:       in.Flat,
			RegionID:   in.RegionID,
			CityID:     in.CityID,
		}
		if err := tx.ShippingAddresses.Create(ctx, addr); err != nil {
			return err
		}

		placedAt := s.now().UTC()
		if err := tx.Orders.Update(ctx, order, map[string]any{
			"status":    models.OrderStatusPlaced,
			"placed_at": placedAt,
		}); err != nil {
			return err
		}
		order.Status = models.OrderStatusPlaced
		order.PlacedAt = &placedAt

		placed = PlacedOrder{Order: order, Summary: summarize(order, lines), Address: addr}
		return nil
	})
	if err != nil {
		if isDomainError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("place order: %w", err)
	}

	s.log.Info("order placed",
		zap.Uint("order_id", placed.Order.ID),
		zap.Uint("customer_id", customer.ID),
		zap.String("total", placed.Summary.TotalPrice.StringFixed(2)),
	)
	return &placed, nil
}

// ListOrders pages through the caller's placed orders, newest first
func (s *OrderService) ListOrders(ctx context.Context, subject string, page, limit int) ([]CartSummary, int64, error) {
	customer, err := resolveCustomer(ctx, s.repo, subject)
	if err != nil {
		return nil, 0, err
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	orders, total, err := s.repo.Orders.List(ctx, repository.OrderListFilter{
		CustomerID:  customer.ID,
		ExcludeOpen: true,
		Limit:       limit,
		Offset:      (page - 1) * limit,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}

	out := make([]CartSummary, 0, len(orders))
	for i := range orders {
		out = append(out, *summarize(&orders[i], orders[i].Products))
	}
	return out, total, nil
}

// GetOrder returns one of the caller's orders with its lines
func (s *OrderService) GetOrder(ctx context.Context, subject string, id uint) (*PlacedOrder, error) {
	customer, err := resolveCustomer(ctx, s.repo, subject)
	if err != nil {
		return nil, err
	}

	order, err := s.repo.Orders.GetWithProducts(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if order.CustomerID != customer.ID {
		return nil, ErrForbidden
	}

	out := &PlacedOrder{Order: order, Summary: summarize(order, order.Products)}
	addr, err := s.repo.ShippingAddresses.GetByOrderID(ctx, order.ID)
	switch {
	case err == nil:
		out.Address = addr
	case !errors.Is(err, repository.ErrNotFound):
		return nil, fmt.Errorf("get shipping address: %w", err)
	}
	return out, nil
}

// UpdateStatus applies an admin status change and/or payment flag to an order
func (s *OrderService) UpdateStatus(ctx context.Context, id uint, in UpdateStatusInput) (*models.Order, error) {
	if in.Status == nil && in.Payment == nil {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	order, err := s.repo.Orders.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	fields := map[string]any{}
	if in.Status != nil {
		next, err := models.ParseOrderStatus(*in.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if next == models.OrderStatusPlaced || !order.Status.CanTransitionTo(next) {
			return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, next)
		}
		fields["status"] = next
	}
	if in.Payment != nil {
		if order.IsOpen() {
			return nil, ErrInvalidTransition
		}
		fields["payment"] = *in.Payment
	}

	if err := s.repo.Orders.Update(ctx, order, fields); err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}

	s.log.Info("order updated", zap.Uint("order_id", order.ID), zap.Any("fields", fields))
	return s.repo.Orders.GetByID(ctx, id)
}

// isDomainError reports whether err is one of this package's sentinels
func isDomainError(err error) bool {
	for _, target := range []error{
		ErrUserNotFound, ErrUserExists, ErrCustomerNotFound, ErrProductNotFound, ErrCategoryNotFound,
		ErrBrandNotFound, ErrModelNotFound, ErrOrderNotFound, ErrLineNotFound, ErrRegionNotFound,
		ErrCityNotFound, ErrForbidden, ErrOrderNotOpen, ErrEmptyCart, ErrStockExceeded,
		ErrInvalidAction, ErrInvalidTransition, ErrInvalidInput, ErrSlugTaken,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
