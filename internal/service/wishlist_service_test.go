package service_test

import (
	"context"
	"testing"

	"github.com/collabmatch/backend/internal/domain"
	"github.com/collabmatch/backend/internal/repository/postgres"
	"github.com/collabmatch/backend/internal/service"
	"github.com/collabmatch/backend/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWishlistService(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	svc := service.NewWishlistService(repos.Wishlist, repos.Profile)
	ctx := context.Background()

	influencer, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	company, _ := testutil.NewUserBuilder().
		WithAccountType(domain.AccountCompany).
		Build(t, testDB.DB)
	profile := testutil.NewProfileBuilder(influencer.ID).Build(t, testDB.DB)

	t.Run("add and list", func(t *testing.T) {
		item, err := svc.Add(ctx, company.ID, profile.ID)
		require.NoError(t, err)
		assert.Equal(t, company.ID, item.UserID)

		items, err := svc.List(ctx, company.ID)
		require.NoError(t, err)
		require.Len(t, items, 1)
		require.NotNil(t, items[0].Profile, "listing embeds the profile")
		assert.Equal(t, profile.ID, items[0].Profile.ID)
	})

	t.Run("duplicate add is rejected", func(t *testing.T) {
		_, err := svc.Add(ctx, company.ID, profile.ID)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("unknown profile is not found", func(t *testing.T) {
		_, err := svc.Add(ctx, company.ID, uuid.New())
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("contains and count", func(t *testing.T) {
		in, err := svc.Contains(ctx, company.ID, profile.ID)
		require.NoError(t, err)
		assert.True(t, in)

		in, err = svc.Contains(ctx, company.ID, uuid.New())
		require.NoError(t, err)
		assert.False(t, in)

		count, err := svc.Count(ctx, company.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 1, count)
	})

	t.Run("wishlists are per user", func(t *testing.T) {
		items, err := svc.List(ctx, influencer.ID)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("remove", func(t *testing.T) {
		require.NoError(t, svc.Remove(ctx, company.ID, profile.ID))
		assert.ErrorIs(t, svc.Remove(ctx, company.ID, profile.ID), domain.ErrNotFound)
	})

	t.Run("clear", func(t *testing.T) {
		_, err := svc.Add(ctx, company.ID, profile.ID)
		require.NoError(t, err)
		require.NoError(t, svc.Clear(ctx, company.ID))

		count, err := svc.Count(ctx, company.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 0, count)
	})
}
