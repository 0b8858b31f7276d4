package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/digitalstore/digitalstore-api/models"
)

type FavoriteRepo interface {
	Get(ctx context.Context, userID, productID uint) (*models.FavoriteProduct, error)
	Create(ctx context.Context, f *models.FavoriteProduct) error
	Delete(ctx context.Context, f *models.FavoriteProduct) error
	ListProducts(ctx context.Context, userID uint) ([]models.Product, error)
}

type favoriteRepo struct{ db *gorm.DB }

func NewFavoriteRepo(db *gorm.DB) FavoriteRepo { return &favoriteRepo{db: db} }

func (r *favoriteRepo) Get(ctx context.Context, userID, productID uint) (*models.FavoriteProduct, error) {
	var f models.FavoriteProduct
	if err := r.db.WithContext(ctx).Where("user_id = ? AND product_id = ?", userID, productID).First(&f).Error; err != nil {
		return nil, notFound(err)
	}
	return &f, nil
}

func (r *favoriteRepo) Create(ctx context.Context, f *models.FavoriteProduct) error {
	return duplicate(r.db.WithContext(ctx).Omit("User", "Product").Create(f).Error)
}

func (r *favoriteRepo) Delete(ctx context.Context, f *models.FavoriteProduct) error {
	return r.db.WithContext(ctx).Delete(f).Error
}

// ListProducts returns the user's favorite products, most recently added first
func (r *favoriteRepo) ListProducts(ctx context.Context, userID uint) ([]models.Product, error) {
	var rows []models.Product
	err := r.db.WithContext(ctx).
		Joins("JOIN favorite_products ON favorite_products.product_id = products.id").
		Where("favorite_products.user_id = ?", userID).
		Order("favorite_products.created_at DESC, favorite_products.id DESC").
		Find(&rows).Error
	return rows, err
}
