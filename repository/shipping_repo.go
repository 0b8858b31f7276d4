package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/digitalstore/digitalstore-api/models"
)

type RegionRepo interface {
	CreateRegion(ctx context.Context, r *models.Region) error
	CreateCity(ctx context.Context, c *models.City) error
	GetRegion(ctx context.Context, id uint) (*models.Region, error)
	GetCity(ctx context.Context, id uint) (*models.City, error)
	ListRegions(ctx context.Context) ([]models.Region, error)
	ListCities(ctx context.Context, regionID uint) ([]models.City, error)
}

type regionRepo struct{ db *gorm.DB }

func NewRegionRepo(db *gorm.DB) RegionRepo { return &regionRepo{db: db} }

func (r *regionRepo) CreateRegion(ctx context.Context, reg *models.Region) error {
	return r.db.WithContext(ctx).Create(reg).Error
}

func (r *regionRepo) CreateCity(ctx context.Context, c *models.City) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *regionRepo) GetRegion(ctx context.Context, id uint) (*models.Region, error) {
	var reg models.Region
	if err := r.db.WithContext(ctx).First(&reg, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &reg, nil
}

func (r *regionRepo) GetCity(ctx context.Context, id uint) (*models.City, error) {
	var c models.City
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

func (r *regionRepo) ListRegions(ctx context.Context) ([]models.Region, error) {
	var rows []models.Region
	err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error
	return rows, err
}

func (r *regionRepo) ListCities(ctx context.Context, regionID uint) ([]models.City, error) {
	var rows []models.City
	err := r.db.WithContext(ctx).Where("region_id = ?", regionID).Order("name ASC").Find(&rows).Error
	return rows, err
}

type ShippingAddressRepo interface {
	Create(ctx context.Context, a *models.ShippingAddress) error
	GetByOrderID(ctx context.Context, orderID uint) (*models.ShippingAddress, error)
}

type shippingAddressRepo struct{ db *gorm.DB }

func NewShippingAddressRepo(db *gorm.DB) ShippingAddressRepo { return &shippingAddressRepo{db: db} }

func (r *shippingAddressRepo) Create(ctx context.Context, a *models.ShippingAddress) error {
	return duplicate(r.db.WithContext(ctx).Omit("Customer", "Order", "Region", "City").Create(a).Error)
}

func (r *shippingAddressRepo) GetByOrderID(ctx context.Context, orderID uint) (*models.ShippingAddress, error) {
	var a models.ShippingAddress
	err := r.db.WithContext(ctx).Preload("Region").Preload("City").Where("order_id = ?", orderID).First(&a).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &a, nil
}
