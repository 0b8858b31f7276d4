package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/digitalstore/digitalstore-api/models"
	"github.com/digitalstore/digitalstore-api/repository"
)

// Account is the full profile view of a registered user
type Account struct {
	User        *models.User     `json:"user"`
	Profile     *models.Profile  `json:"profile"`
	Customer    *models.Customer `json:"customer"`
	LatestOrder *models.Order    `json:"latest_order,omitempty"`
}

// UpdateAccountInput holds optional profile and shipping changes. Nil fields are left untouched.
type UpdateAccountInput struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
	Region    *string `json:"region"`
	City      *string `json:"city"`
	Street    *string `json:"street"`
	Home      *string `json:"home"`
	Flat      *string `json:"flat"`
}

type AccountService struct {
	repo     *repository.Repository
	userInfo UserInfoProvider
	log      *zap.Logger
}

func NewAccountService(repo *repository.Repository, userInfo UserInfoProvider, log *zap.Logger) *AccountService {
	if log == nil {
		log = zap.NewNop()
	}
	return &AccountService{repo: repo, userInfo: userInfo, log: log}
}

// Register creates the user, customer and profile records for a new identity
func (s *AccountService) Register(ctx context.Context, subject, accessToken string) (*Account, error) {
	if _, err := s.repo.Users.GetByAuth0ID(ctx, subject); err == nil {
		return nil, ErrUserExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	info, err := s.userInfo.GetUserInfo(ctx, accessToken)
	if err != nil {
		return nil, fmt.Errorf("fetch user info: %w", err)
	}
	if info.Email == "" {
		return nil, fmt.Errorf("%w: identity provider returned no email", ErrInvalidInput)
	}

	acc := &Account{}
	err = s.repo.WithTx(ctx, func(tx *repository.Repository) error {
		acc.User = &models.User{Auth0ID: subject, Username: info.Username(), Email: info.Email}
		if err := tx.Users.Create(ctx, acc.User); err != nil {
			return err
		}
		acc.Customer = &models.Customer{UserID: &acc.User.ID}
		if err := tx.Customers.Create(ctx, acc.Customer); err != nil {
			return err
		}
		acc.Profile = &models.Profile{
			UserID:    &acc.User.ID,
			FirstName: info.GivenName,
			LastName:  info.FamilyName,
			Email:     info.Email,
		}
		return tx.Profiles.Create(ctx, acc.Profile)
	})
	if errors.Is(err, repository.ErrDuplicate) {
		return nil, ErrUserExists
	}
	if err != nil {
		return nil, fmt.Errorf("register user: %w", err)
	}

	s.log.Info("user registered", zap.Uint("user_id", acc.User.ID), zap.String("auth0_id", subject))
	return acc, nil
}

// GetAccount loads the caller's user, profile, shipping data and latest order
func (s *AccountService) GetAccount(ctx context.Context, subject string) (*Account, error) {
	user, err := s.repo.Users.GetByAuth0ID(ctx, subject)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	acc := &Account{User: user}
	if acc.Profile, err = s.repo.Profiles.GetByUserID(ctx, user.ID); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	acc.Customer, err = s.repo.Customers.GetByUserID(ctx, user.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}
	if acc.LatestOrder, err = s.repo.Orders.Latest(ctx, acc.Customer.ID); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("get latest order: %w", err)
	}
	return acc, nil
}

// UpdateAccount applies partial profile and shipping changes
func (s *AccountService) UpdateAccount(ctx context.Context, subject string, in UpdateAccountInput) (*Account, error) {
	acc, err := s.GetAccount(ctx, subject)
	if err != nil {
		return nil, err
	}

	profileFields := map[string]any{}
	setIf(profileFields, "first_name", in.FirstName)
	setIf(profileFields, "last_name", in.LastName)
	setIf(profileFields, "phone", in.Phone)
	setIf(profileFields, "email", in.Email)

	customerFields := map[string]any{}
	setIf(customerFields, "region", in.Region)
	setIf(customerFields, "city", in.City)
	setIf(customerFields, "street", in.Street)
	setIf(customerFields, "home", in.Home)
	setIf(customerFields, "flat", in.Flat)

	if len(profileFields) == 0 && len(customerFields) == 0 {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	err = s.repo.WithTx(ctx, func(tx *repository.Repository) error {
		if len(profileFields) > 0 {
			if acc.Profile == nil {
				acc.Profile = &models.Profile{UserID: &acc.User.ID}
				if err := tx.Profiles.Create(ctx, acc.Profile); err != nil {
					return err
				}
			}
			if err := tx.Profiles.Update(ctx, acc.Profile, profileFields); err != nil {
				return err
			}
		}
		return tx.Customers.Update(ctx, acc.Customer, customerFields)
	})
	if err != nil {
		return nil, fmt.Errorf("update account: %w", err)
	}

	s.log.Info("account updated", zap.Uint("user_id", acc.User.ID))
	return s.GetAccount(ctx, subject)
}

func setIf(fields map[string]any, column string, v *string) {
	if v != nil {
		fields[column] = strings.TrimSpace(*v)
	}
}
