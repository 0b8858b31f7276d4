package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/digitalstore/digitalstore-api/models"
)

type UserRepo interface {
	Create(ctx context.Context, u *models.User) error
	GetByAuth0ID(ctx context.Context, auth0ID string) (*models.User, error)
	Update(ctx context.Context, u *models.User, fields map[string]any) error
}

type userRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) UserRepo { return &userRepo{db: db} }

func (r *userRepo) Create(ctx context.Context, u *models.User) error {
	return duplicate(r.db.WithContext(ctx).Create(u).Error)
}

func (r *userRepo) GetByAuth0ID(ctx context.Context, auth0ID string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).Where("auth0_id = ?", auth0ID).First(&u).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *userRepo) Update(ctx context.Context, u *models.User, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return duplicate(r.db.WithContext(ctx).Model(u).Updates(fields).Error)
}

type ProfileRepo interface {
	Create(ctx context.Context, p *models.Profile) error
	GetByUserID(ctx context.Context, userID uint) (*models.Profile, error)
	Update(ctx context.Context, p *models.Profile, fields map[string]any) error
}

type profileRepo struct{ db *gorm.DB }

func NewProfileRepo(db *gorm.DB) ProfileRepo { return &profileRepo{db: db} }

func (r *profileRepo) Create(ctx context.Context, p *models.Profile) error {
	return duplicate(r.db.WithContext(ctx).Create(p).Error)
}

func (r *profileRepo) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	var p models.Profile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (r *profileRepo) Update(ctx context.Context, p *models.Profile, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(p).Updates(fields).Error
}

type CustomerRepo interface {
	Create(ctx context.Context, c *models.Customer) error
	GetByUserID(ctx context.Context, userID uint) (*models.Customer, error)
	GetByAuth0ID(ctx context.Context, auth0ID string) (*models.Customer, error)
	Update(ctx context.Context, c *models.Customer, fields map[string]any) error
}

type customerRepo struct{ db *gorm.DB }

func NewCustomerRepo(db *gorm.DB) CustomerRepo { return &customerRepo{db: db} }

func (r *customerRepo) Create(ctx context.Context, c *models.Customer) error {
	return duplicate(r.db.WithContext(ctx).Create(c).Error)
}

func (r *customerRepo) GetByUserID(ctx context.Context, userID uint) (*models.Customer, error) {
	var c models.Customer
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&c).Error; err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

func (r *customerRepo) GetByAuth0ID(ctx context.Context, auth0ID string) (*models.Customer, error) {
	var c models.Customer
	err := r.db.WithContext(ctx).
		Joins("JOIN users ON users.id = customers.user_id AND users.deleted_at IS NULL").
		Where("users.auth0_id = ?", auth0ID).
		First(&c).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

func (r *customerRepo) Update(ctx context.Context, c *models.Customer, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(c).Updates(fields).Error
}
