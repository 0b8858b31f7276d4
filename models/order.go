package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order
type OrderStatus string

const (
	OrderStatusOpen      OrderStatus = "open" // the customer's cart
	OrderStatusPlaced    OrderStatus = "placed"
	OrderStatusFulfilled OrderStatus = "fulfilled"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// ParseOrderStatus converts a raw string into a known OrderStatus
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch st := OrderStatus(s); st {
	case OrderStatusOpen, OrderStatusPlaced, OrderStatusFulfilled, OrderStatusCancelled:
		return st, nil
	default:
		return "", fmt.Errorf("unknown order status %q", s)
	}
}

// CanTransitionTo reports whether an order in status s may move to next
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case OrderStatusOpen:
		return next == OrderStatusPlaced
	case OrderStatusPlaced:
		return next == OrderStatusFulfilled || next == OrderStatusCancelled
	default:
		return false
	}
}

// Order belongs to one customer. At most one order per customer is open;
// the partial unique index enforces it.
type Order struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	CustomerID uint           `gorm:"not null;index:idx_orders_open_customer,unique,where:status = 'open'" json:"customer_id"`
	Customer   *Customer      `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"-"`
	Status     OrderStatus    `gorm:"type:varchar(20);not null;index" json:"status"`
	Payment    bool           `gorm:"not null" json:"payment"`
	Shipping   bool           `gorm:"not null" json:"shipping"`
	PlacedAt   *time.Time     `json:"placed_at,omitempty"`
	Products   []OrderProduct `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"products,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// IsOpen reports whether the order is still the customer's cart
func (o *Order) IsOpen() bool {
	return o.Status == OrderStatusOpen
}

// OrderProduct is a line item joining an order and a product
type OrderProduct struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OrderID   uint      `gorm:"not null;uniqueIndex:ux_order_products_order_product" json:"order_id"`
	ProductID uint      `gorm:"not null;uniqueIndex:ux_order_products_order_product" json:"product_id"`
	Product   *Product  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product,omitempty"`
	Quantity  int       `gorm:"not null;check:chk_order_products_quantity,quantity > 0" json:"quantity"`
	CreatedAt time.Time `json:"added_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for the OrderProduct model
func (OrderProduct) TableName() string {
	return "order_products"
}

// TotalPrice is quantity times the product's effective price. Product must be loaded.
func (l *OrderProduct) TotalPrice() decimal.Decimal {
	if l.Product == nil {
		return decimal.Zero
	}
	return l.Product.EffectivePrice().Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// OldPrice is quantity times the undiscounted list price. Product must be loaded.
func (l *OrderProduct) OldPrice() decimal.Decimal {
	if l.Product == nil {
		return decimal.Zero
	}
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
