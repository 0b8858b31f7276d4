package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digitalstore/digitalstore-api/models"
	"github.com/digitalstore/digitalstore-api/repository"
	"github.com/digitalstore/digitalstore-api/testutil"
)

type stubUserInfo struct {
	info  *Auth0UserInfo
	err   error
	calls int
}

func (s *stubUserInfo) GetUserInfo(_ context.Context, _ string) (*Auth0UserInfo, error) {
	s.calls++
	return s.info, s.err
}

func TestRegister_CreatesUserCustomerAndProfile(t *testing.T) {
	db := testutil.SetupTestDB(t)
	provider := &stubUserInfo{info: &Auth0UserInfo{
		Sub: "auth0|carol", Email: "carol@example.com", Nickname: "carol", GivenName: "Carol", FamilyName: "Smith",
	}}
	svc := NewAccountService(repository.New(db), provider, nil)
	ctx := context.Background()

	acc, err := svc.Register(ctx, "auth0|carol", "token")
	require.NoError(t, err)
	assert.Equal(t, "carol", acc.User.Username)
	assert.Equal(t, "Carol", acc.Profile.FirstName)
	assert.Equal(t, "Smith", acc.Profile.LastName)
	require.NotNil(t, acc.Customer.UserID)
	assert.Equal(t, acc.User.ID, *acc.Customer.UserID)

	_, err = svc.Register(ctx, "auth0|carol", "token")
	assert.ErrorIs(t, err, ErrUserExists)
	assert.Equal(t, 1, provider.calls, "an existing user is detected before calling the provider")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.CreateCustomer(t, db, "auth0|first", "same@example.com")
	provider := &stubUserInfo{info: &Auth0UserInfo{Sub: "google|2", Email: "same@example.com"}}
	svc := NewAccountService(repository.New(db), provider, nil)

	_, err := svc.Register(context.Background(), "google|2", "token")
	assert.ErrorIs(t, err, ErrUserExists)

	var users int64
	db.Model(&models.User{}).Count(&users)
	assert.Equal(t, int64(1), users)
	var customers int64
	db.Model(&models.Customer{}).Count(&customers)
	assert.Equal(t, int64(1), customers, "the failed registration is rolled back")
}

func TestRegister_ProviderFailures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()

	svc := NewAccountService(repository.New(db), &stubUserInfo{err: errors.New("boom")}, nil)
	_, err := svc.Register(ctx, "auth0|x", "token")
	assert.Error(t, err)

	svc = NewAccountService(repository.New(db), &stubUserInfo{info: &Auth0UserInfo{Sub: "auth0|x"}}, nil)
	_, err = svc.Register(ctx, "auth0|x", "token")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetAccount(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.New(db)
	svc := NewAccountService(repo, nil, nil)
	ctx := context.Background()

	_, err := svc.GetAccount(ctx, "auth0|nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)

	testutil.CreateCustomer(t, db, "auth0|dave", "dave@example.com")
	acc, err := svc.GetAccount(ctx, "auth0|dave")
	require.NoError(t, err)
	assert.Equal(t, "dave@example.com", acc.User.Email)
	assert.NotNil(t, acc.Profile)
	assert.Nil(t, acc.LatestOrder)

	_, err = NewCartService(repo, nil).Cart(ctx, "auth0|dave")
	require.NoError(t, err)
	acc, err = svc.GetAccount(ctx, "auth0|dave")
	require.NoError(t, err)
	require.NotNil(t, acc.LatestOrder)
	assert.Equal(t, models.OrderStatusOpen, acc.LatestOrder.Status)
}

func TestUpdateAccount(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewAccountService(repository.New(db), nil, nil)
	ctx := context.Background()
	testutil.CreateCustomer(t, db, "auth0|erin", "erin@example.com")

	str := func(s string) *string { return &s }

	_, err := svc.UpdateAccount(ctx, "auth0|erin", UpdateAccountInput{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	acc, err := svc.UpdateAccount(ctx, "auth0|erin", UpdateAccountInput{
		FirstName: str(" Erin "),
		Phone:     str("+1 555 0199"),
		City:      str("Harbor"),
		Street:    str("Main"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Erin", acc.Profile.FirstName)
	assert.Equal(t, "+1 555 0199", acc.Profile.Phone)
	assert.Equal(t, "erin@example.com", acc.Profile.Email, "untouched fields keep their value")
	assert.Equal(t, "Harbor", acc.Customer.City)
	assert.Equal(t, "Main", acc.Customer.Street)

	_, err = svc.UpdateAccount(ctx, "auth0|nobody", UpdateAccountInput{City: str("x")})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuth0UserInfo_Username(t *testing.T) {
	assert.Equal(t, "nick", (&Auth0UserInfo{Nickname: "nick", Name: "N"}).Username())
	assert.Equal(t, "Full Name", (&Auth0UserInfo{Name: "Full Name"}).Username())
	assert.Equal(t, "frank", (&Auth0UserInfo{Email: "frank@example.com"}).Username())
	assert.Equal(t, "auth0|1", (&Auth0UserInfo{Sub: "auth0|1"}).Username())
}
