package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digitalstore/digitalstore-api/repository"
	"github.com/digitalstore/digitalstore-api/testutil"
)

func TestFavoriteService_ToggleAndList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewFavoriteService(repository.New(db), nil)
	ctx := context.Background()

	category := testutil.CreateCategory(t, db, "Phones", "phones")
	testutil.CreateProduct(t, db, category, "alpha", "100", 1)
	testutil.CreateProduct(t, db, category, "beta", "200", 1)
	testutil.CreateCustomer(t, db, "auth0|hana", "hana@example.com")

	added, err := svc.Toggle(ctx, "auth0|hana", "alpha")
	require.NoError(t, err)
	assert.True(t, added)

	added, err = svc.Toggle(ctx, "auth0|hana", "beta")
	require.NoError(t, err)
	assert.True(t, added)

	list, err := svc.List(ctx, "auth0|hana")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "beta", list[0].Slug, "newest favorite first")
	assert.Equal(t, "alpha", list[1].Slug)

	added, err = svc.Toggle(ctx, "auth0|hana", "alpha")
	require.NoError(t, err)
	assert.False(t, added)

	list, err = svc.List(ctx, "auth0|hana")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "beta", list[0].Slug)
}

func TestFavoriteService_Errors(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewFavoriteService(repository.New(db), nil)
	ctx := context.Background()
	testutil.CreateCustomer(t, db, "auth0|ivan", "ivan@example.com")

	_, err := svc.Toggle(ctx, "auth0|ivan", "missing")
	assert.ErrorIs(t, err, ErrProductNotFound)

	_, err = svc.Toggle(ctx, "auth0|nobody", "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.List(ctx, "auth0|nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)

	list, err := svc.List(ctx, "auth0|ivan")
	require.NoError(t, err)
	assert.Empty(t, list)
}
