package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/digitalstore/digitalstore-api/models"
	"github.com/digitalstore/digitalstore-api/repository"
)

type FavoriteService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewFavoriteService(repo *repository.Repository, log *zap.Logger) *FavoriteService {
	if log == nil {
		log = zap.NewNop()
	}
	return &FavoriteService{repo: repo, log: log}
}

// Toggle adds the product to the caller's favorites, or removes it when already there.
// It reports whether the product is a favorite afterwards.
func (s *FavoriteService) Toggle(ctx context.Context, subject, productSlug string) (bool, error) {
	user, err := s.user(ctx, subject)
	if err != nil {
		return false, err
	}
	product, err := s.repo.Products.GetBySlug(ctx, productSlug)
	if err != nil {
		return false, notFoundAs(err, ErrProductNotFound)
	}

	added := false
	err = s.repo.WithTx(ctx, func(tx *repository.Repository) error {
		fav, err := tx.Favorites.Get(ctx, user.ID, product.ID)
		if err == nil {
			return tx.Favorites.Delete(ctx, fav)
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		added = true
		return tx.Favorites.Create(ctx, &models.FavoriteProduct{UserID: user.ID, ProductID: product.ID})
	})
	if errors.Is(err, repository.ErrDuplicate) {
		// a concurrent toggle inserted the same row
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("toggle favorite: %w", err)
	}

	s.log.Debug("favorite toggled", zap.Uint("user_id", user.ID), zap.String("slug", productSlug), zap.Bool("added", added))
	return added, nil
}

// List returns the caller's favorite products, most recently added first
func (s *FavoriteService) List(ctx context.Context, subject string) ([]models.Product, error) {
	user, err := s.user(ctx, subject)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.Favorites.ListProducts(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return rows, nil
}

func (s *FavoriteService) user(ctx context.Context, subject string) (*models.User, error) {
	user, err := s.repo.Users.GetByAuth0ID(ctx, subject)
	if err != nil {
		return nil, notFoundAs(err, ErrUserNotFound)
	}
	return user, nil
}
