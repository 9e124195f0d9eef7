package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentaldesk/backend/internal/domain/entity"
	domainerror "github.com/rentaldesk/backend/internal/domain/error"
)

func TestChannelRepository_Overrides(t *testing.T) {
	ctx := context.Background()
	repo := NewChannelRepository(newTestDB(t))
	owner, property := uuid.New(), uuid.New()

	airbnb := entity.NewChannel(owner, "Airbnb", decimal.NewFromInt(21))
	require.NoError(t, repo.Create(ctx, airbnb))

	exists, err := repo.ExistsByName(ctx, owner, " airbnb ")
	require.NoError(t, err)
	assert.True(t, exists)

	missing, err := repo.FindOverride(ctx, property, airbnb.ID)
	require.NoError(t, err)
	assert.Nil(t, missing)

	fifteen, three := decimal.NewFromInt(15), decimal.NewFromInt(3)
	require.NoError(t, repo.UpsertOverride(ctx, &entity.PropertyChannel{PropertyID: property, ChannelID: airbnb.ID, ChannelCommissionPercent: &fifteen}))
	require.NoError(t, repo.UpsertOverride(ctx, &entity.PropertyChannel{PropertyID: property, ChannelID: airbnb.ID, ChannelCommissionPercent: &fifteen, CollectionCommissionPercent: &three}))

	overrides, err := repo.FindOverridesByProperty(ctx, property)
	require.NoError(t, err)
	require.Len(t, overrides, 1)
	require.NotNil(t, overrides[0].CollectionCommissionPercent)
	assert.True(t, three.Equal(*overrides[0].CollectionCommissionPercent))

	require.NoError(t, repo.Delete(ctx, owner, airbnb.ID))
	overrides, err = repo.FindOverridesByProperty(ctx, property)
	require.NoError(t, err)
	assert.Empty(t, overrides)

	_, err = repo.FindByID(ctx, owner, airbnb.ID)
	assert.ErrorIs(t, err, domainerror.ErrChannelNotFound)
}
