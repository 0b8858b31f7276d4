package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/digitalstore/digitalstore-api/models"
)

type OrderListFilter struct {
	CustomerID  uint
	ExcludeOpen bool
	Limit       int
	Offset      int
}

type OrderRepo interface {
	GetOrCreateOpen(ctx context.Context, customerID uint) (*models.Order, bool, error)
	GetOpen(ctx context.Context, customerID uint) (*models.Order, error)
	GetByID(ctx context.Context, id uint) (*models.Order, error)
	// GetForUpdate re-reads the order with a row lock held until the transaction ends.
	// Every cart mutation takes it first, so writes to one cart are serialized.
	GetForUpdate(ctx context.Context, id uint) (*models.Order, error)
	GetWithProducts(ctx context.Context, id uint) (*models.Order, error)
	Latest(ctx context.Context, customerID uint) (*models.Order, error)
	List(ctx context.Context, f OrderListFilter) ([]models.Order, int64, error)
	Update(ctx context.Context, o *models.Order, fields map[string]any) error
}

type orderRepo struct{ db *gorm.DB }

func NewOrderRepo(db *gorm.DB) OrderRepo { return &orderRepo{db: db} }

// GetOrCreateOpen returns the customer's open order, creating it when absent.
// The boolean reports whether a new order was created. A concurrent creator
// losing the race on idx_orders_open_customer re-reads the winner's row.
func (r *orderRepo) GetOrCreateOpen(ctx context.Context, customerID uint) (*models.Order, bool, error) {
	ord, err := r.GetOpen(ctx, customerID)
	if err == nil {
		return ord, false, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, false, err
	}

	ord = &models.Order{
		CustomerID: customerID,
		Status:     models.OrderStatusOpen,
		Payment:    false,
		Shipping:   true,
	}
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(ord)
	if res.Error != nil {
		return nil, false, res.Error
	}
	if res.RowsAffected == 0 {
		ord, err = r.GetOpen(ctx, customerID)
		return ord, false, err
	}
	return ord, true, nil
}

func (r *orderRepo) GetOpen(ctx context.Context, customerID uint) (*models.Order, error) {
	var ord models.Order
	err := r.db.WithContext(ctx).
		Where("customer_id = ? AND status = ?", customerID, models.OrderStatusOpen).
		First(&ord).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &ord, nil
}

func (r *orderRepo) GetByID(ctx context.Context, id uint) (*models.Order, error) {
	var ord models.Order
	if err := r.db.WithContext(ctx).First(&ord, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &ord, nil
}

func (r *orderRepo) GetForUpdate(ctx context.Context, id uint) (*models.Order, error) {
	var ord models.Order
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&ord, id).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &ord, nil
}

func (r *orderRepo) GetWithProducts(ctx context.Context, id uint) (*models.Order, error) {
	var ord models.Order
	err := r.db.WithContext(ctx).
		Preload("Products", func(db *gorm.DB) *gorm.DB { return db.Order("order_products.id ASC") }).
		Preload("Products.Product").
		First(&ord, id).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &ord, nil
}

// Latest returns the customer's most recently created order of any status
func (r *orderRepo) Latest(ctx context.Context, customerID uint) (*models.Order, error) {
	var ord models.Order
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC, id DESC").
		First(&ord).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &ord, nil
}

func (r *orderRepo) List(ctx context.Context, f OrderListFilter) ([]models.Order, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Order{}).Where("customer_id = ?", f.CustomerID)
	if f.ExcludeOpen {
		q = q.Where("status <> ?", models.OrderStatusOpen)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if f.Limit <= 0 {
		f.Limit = 10
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	var list []models.Order
	err := q.Order("created_at DESC, id DESC").Limit(f.Limit).Offset(f.Offset).
		Preload("Products.Product").Find(&list).Error
	return list, total, err
}

func (r *orderRepo) Update(ctx context.Context, o *models.Order, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(o).Updates(fields).Error
}

type OrderProductRepo interface {
	// GetForUpdate returns the line for (order, product) with a row lock where the database supports it.
	// A missing line is not locked; callers hold the order lock to cover inserts.
	GetForUpdate(ctx context.Context, orderID, productID uint) (*models.OrderProduct, error)
	GetByID(ctx context.Context, orderID, id uint) (*models.OrderProduct, error)
	ListByOrder(ctx context.Context, orderID uint) ([]models.OrderProduct, error)
	Save(ctx context.Context, l *models.OrderProduct) error
	Delete(ctx context.Context, l *models.OrderProduct) error
}

type orderProductRepo struct{ db *gorm.DB }

func NewOrderProductRepo(db *gorm.DB) OrderProductRepo { return &orderProductRepo{db: db} }

func (r *orderProductRepo) GetForUpdate(ctx context.Context, orderID, productID uint) (*models.OrderProduct, error) {
	var l models.OrderProduct
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("order_id = ? AND product_id = ?", orderID, productID).
		First(&l).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &l, nil
}

func (r *orderProductRepo) GetByID(ctx context.Context, orderID, id uint) (*models.OrderProduct, error) {
	var l models.OrderProduct
	if err := r.db.WithContext(ctx).Where("id = ? AND order_id = ?", id, orderID).First(&l).Error; err != nil {
		return nil, notFound(err)
	}
	return &l, nil
}

func (r *orderProductRepo) ListByOrder(ctx context.Context, orderID uint) ([]models.OrderProduct, error) {
	var rows []models.OrderProduct
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("order_id = ?", orderID).
		Order("id ASC").
		Find(&rows).Error
	return rows, err
}

// Save inserts or updates the line. Quantities below one are rejected by the
// database check constraint; callers delete such lines instead.
func (r *orderProductRepo) Save(ctx context.Context, l *models.OrderProduct) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(l).Error
}

func (r *orderProductRepo) Delete(ctx context.Context, l *models.OrderProduct) error {
	return r.db.WithContext(ctx).Delete(l).Error
}
