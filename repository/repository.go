package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// Repository bundles the per-table repositories that share one database handle
type Repository struct {
	DB                *gorm.DB
	Users             UserRepo
	Profiles          ProfileRepo
	Customers         CustomerRepo
	Categories        CategoryRepo
	Brands            BrandRepo
	ProductModels     ProductModelRepo
	Products          ProductRepo
	Specifications    SpecificationRepo
	Orders            OrderRepo
	OrderProducts     OrderProductRepo
	Favorites         FavoriteRepo
	Regions           RegionRepo
	ShippingAddresses ShippingAddressRepo
}

func New(db *gorm.DB) *Repository {
	return &Repository{
		DB:                db,
		Users:             NewUserRepo(db),
		Profiles:          NewProfileRepo(db),
		Customers:         NewCustomerRepo(db),
		Categories:        NewCategoryRepo(db),
		Brands:            NewBrandRepo(db),
		ProductModels:     NewProductModelRepo(db),
		Products:          NewProductRepo(db),
		Specifications:    NewSpecificationRepo(db),
		Orders:            NewOrderRepo(db),
		OrderProducts:     NewOrderProductRepo(db),
		Favorites:         NewFavoriteRepo(db),
		Regions:           NewRegionRepo(db),
		ShippingAddresses: NewShippingAddressRepo(db),
	}
}

// WithTx runs fn inside a single database transaction. Every repository
// handed to fn is bound to that transaction.
func (r *Repository) WithTx(ctx context.Context, fn func(tx *Repository) error) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
}

// notFound maps gorm's missing-row error onto ErrNotFound
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// duplicate maps unique-constraint violations onto ErrDuplicate. The handle
// must be opened with TranslateError so both drivers report gorm.ErrDuplicatedKey.
func duplicate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}
