package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/digitalstore/digitalstore-api/models"
	"github.com/digitalstore/digitalstore-api/repository"
	"github.com/digitalstore/digitalstore-api/utils"
)

// CartAction is a single-unit change requested on a cart line
type CartAction string

const (
	ActionAdd    CartAction = "add"
	ActionDelete CartAction = "delete"
)

// ParseCartAction accepts only "add" and "delete"
func ParseCartAction(s string) (CartAction, error) {
	switch a := CartAction(s); a {
	case ActionAdd, ActionDelete:
		return a, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidAction, s)
	}
}

// ActionResult describes what ApplyAction did to the cart
type ActionResult string

const (
	ResultAdded         ActionResult = "added"
	ResultStockExceeded ActionResult = "stock_exceeded"
	ResultDecremented   ActionResult = "decremented"
	ResultRemoved       ActionResult = "removed"
	ResultNotInCart     ActionResult = "not_in_cart"
)

// CartLine is one priced line of a cart summary
type CartLine struct {
	ID        uint            `json:"id"`
	Product   *models.Product `json:"product"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total_price"`
	OldTotal  decimal.Decimal `json:"old_price"`
}

// CartSummary is the priced view of an order. Totals are recomputed from the lines on every call.
type CartSummary struct {
	OrderID       uint               `json:"order_id"`
	Status        models.OrderStatus `json:"status"`
	Lines         []CartLine         `json:"products"`
	TotalPrice    decimal.Decimal    `json:"total_price"`
	TotalQuantity int                `json:"total_quantity"`
	TotalDisplay  string             `json:"total_price_display"` // e.g. "1 800.00"
	Result        ActionResult       `json:"result,omitempty"`
}

type CartService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCartService(repo *repository.Repository, log *zap.Logger) *CartService {
	if log == nil {
		log = zap.NewNop()
	}
	return &CartService{repo: repo, log: log}
}

// ResolveCustomer finds the customer record of an authenticated subject
func (s *CartService) ResolveCustomer(ctx context.Context, subject string) (*models.Customer, error) {
	return resolveCustomer(ctx, s.repo, subject)
}

func resolveCustomer(ctx context.Context, repo *repository.Repository, subject string) (*models.Customer, error) {
	c, err := repo.Customers.GetByAuth0ID(ctx, subject)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("resolve customer: %w", err)
	}
	return c, nil
}

// GetOrCreateOpenOrder returns the customer's open order, creating it when none exists.
// Calling it again returns the same order.
func (s *CartService) GetOrCreateOpenOrder(ctx context.Context, customer *models.Customer) (*models.Order, bool, error) {
	ord, created, err := s.repo.Orders.GetOrCreateOpen(ctx, customer.ID)
	if err != nil {
		return nil, false, fmt.Errorf("get or create open order: %w", err)
	}
	if created {
		s.log.Info("opened cart", zap.Uint("customer_id", customer.ID), zap.Uint("order_id", ord.ID))
	}
	return ord, created, nil
}

// ApplyAction adds or removes one unit of the product identified by slug.
// It runs in one transaction holding the order row lock, so the status check,
// the line read and the line write see no concurrent cart change.
func (s *CartService) ApplyAction(ctx context.Context, order *models.Order, slug string, action CartAction) (ActionResult, error) {
	if action != ActionAdd && action != ActionDelete {
		return "", fmt.Errorf("%w: %q", ErrInvalidAction, action)
	}

	var result ActionResult
	err := s.repo.WithTx(ctx, func(tx *repository.Repository) error {
		if err := lockOpenOrder(ctx, tx, order); err != nil {
			return err
		}

		product, err := tx.Products.GetBySlug(ctx, slug)
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProductNotFound
		}
		if err != nil {
			return err
		}

		line, err := tx.OrderProducts.GetForUpdate(ctx, order.ID, product.ID)
		if errors.Is(err, repository.ErrNotFound) {
			line = &models.OrderProduct{OrderID: order.ID, ProductID: product.ID}
		} else if err != nil {
			return err
		}

		switch action {
		case ActionAdd:
			if product.Quantity <= 0 || line.Quantity >= product.Quantity {
				result = ResultStockExceeded
				return nil
			}
			line.Quantity++
			result = ResultAdded
			return tx.OrderProducts.Save(ctx, line)
		default:
			if line.ID == 0 {
				result = ResultNotInCart
				return nil
			}
			line.Quantity--
			if line.Quantity <= 0 {
				result = ResultRemoved
				return tx.OrderProducts.Delete(ctx, line)
			}
			result = ResultDecremented
			return tx.OrderProducts.Save(ctx, line)
		}
	})
	if err != nil {
		if isDomainError(err) {
			return "", err
		}
		return "", fmt.Errorf("apply %s on %q: %w", action, slug, err)
	}

	s.log.Debug("cart action applied",
		zap.Uint("order_id", order.ID),
		zap.String("slug", slug),
		zap.String("action", string(action)),
		zap.String("result", string(result)),
	)
	return result, nil
}

// lockOpenOrder takes the order row lock inside tx and refreshes order from it.
// A cart placed since order was loaded is reported as ErrOrderNotOpen.
func lockOpenOrder(ctx context.Context, tx *repository.Repository, order *models.Order) error {
	locked, err := tx.Orders.GetForUpdate(ctx, order.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrOrderNotFound
	}
	if err != nil {
		return err
	}
	*order = *locked
	if !order.IsOpen() {
		return ErrOrderNotOpen
	}
	return nil
}

// Summarize prices every line of the order at the current effective price
func (s *CartService) Summarize(ctx context.Context, order *models.Order) (*CartSummary, error) {
	lines, err := s.repo.OrderProducts.ListByOrder(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("list order lines: %w", err)
	}
	return summarize(order, lines), nil
}

func summarize(order *models.Order, lines []models.OrderProduct) *CartSummary {
	sum := &CartSummary{
		OrderID:    order.ID,
		Status:     order.Status,
		Lines:      make([]CartLine, 0, len(lines)),
		TotalPrice: decimal.Zero,
	}
	for i := range lines {
		l := &lines[i]
		unit := decimal.Zero
		if l.Product != nil {
			unit = l.Product.EffectivePrice()
		}
		total := l.TotalPrice()
		sum.Lines = append(sum.Lines, CartLine{
			ID:        l.ID,
			Product:   l.Product,
			Quantity:  l.Quantity,
			UnitPrice: unit,
			Total:     total,
			OldTotal:  l.OldPrice(),
		})
		sum.TotalPrice = sum.TotalPrice.Add(total)
		sum.TotalQuantity += l.Quantity
	}
	sum.TotalDisplay = utils.FormatPrice(sum.TotalPrice)
	return sum
}

// Cart returns the caller's open order summary, opening a cart when needed
func (s *CartService) Cart(ctx context.Context, subject string) (*CartSummary, error) {
	customer, err := s.ResolveCustomer(ctx, subject)
	if err != nil {
		return nil, err
	}
	order, _, err := s.GetOrCreateOpenOrder(ctx, customer)
	if err != nil {
		return nil, err
	}
	return s.Summarize(ctx, order)
}

// AddOrDelete applies one cart action for the caller and returns the updated summary
func (s *CartService) AddOrDelete(ctx context.Context, subject, slug, rawAction string) (*CartSummary, error) {
	action, err := ParseCartAction(rawAction)
	if err != nil {
		return nil, err
	}
	customer, err := s.ResolveCustomer(ctx, subject)
	if err != nil {
		return nil, err
	}
	order, _, err := s.GetOrCreateOpenOrder(ctx, customer)
	if err != nil {
		return nil, err
	}
	result, err := s.ApplyAction(ctx, order, slug, action)
	if err != nil {
		return nil, err
	}
	sum, err := s.Summarize(ctx, order)
	if err != nil {
		return nil, err
	}
	sum.Result = result
	return sum, nil
}

// RemoveLine drops a whole line from the caller's open order
func (s *CartService) RemoveLine(ctx context.Context, subject string, orderID, lineID uint) (*CartSummary, error) {
	customer, err := s.ResolveCustomer(ctx, subject)
	if err != nil {
		return nil, err
	}

	order, err := s.repo.Orders.GetByID(ctx, orderID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if order.CustomerID != customer.ID {
		return nil, ErrForbidden
	}

	err = s.repo.WithTx(ctx, func(tx *repository.Repository) error {
		if err := lockOpenOrder(ctx, tx, order); err != nil {
			return err
		}
		line, err := tx.OrderProducts.GetByID(ctx, order.ID, lineID)
		if errors.Is(err, repository.ErrNotFound) {
			return ErrLineNotFound
		}
		if err != nil {
			return err
		}
		return tx.OrderProducts.Delete(ctx, line)
	})
	if err != nil {
		if isDomainError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("remove order line: %w", err)
	}

	s.log.Info("removed cart line", zap.Uint("order_id", order.ID), zap.Uint("line_id", lineID))
	return s.Summarize(ctx, order)
}
