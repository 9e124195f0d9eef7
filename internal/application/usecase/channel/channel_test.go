package channel

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentaldesk/backend/internal/application/adapter/mocks"
	"github.com/rentaldesk/backend/internal/domain/entity"
	domainerror "github.com/rentaldesk/backend/internal/domain/error"
)

func pct(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestCreateChannelUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	vat21 := decimal.NewFromInt(21)

	t.Run("defaults vat", func(t *testing.T) {
		repo := mocks.NewMockChannelRepository(gomock.NewController(t))
		repo.EXPECT().ExistsByName(ctx, owner, "Booking").Return(false, nil)
		repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		got, err := NewCreateChannelUseCase(repo, vat21).Execute(ctx, CreateChannelInput{OwnerID: owner, Name: " Booking "})
		require.NoError(t, err)
		assert.Equal(t, "Booking", got.Name)
		assert.True(t, vat21.Equal(got.VATPercent))
	})

	t.Run("explicit vat", func(t *testing.T) {
		repo := mocks.NewMockChannelRepository(gomock.NewController(t))
		repo.EXPECT().ExistsByName(ctx, owner, "Airbnb").Return(false, nil)
		repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		got, err := NewCreateChannelUseCase(repo, vat21).Execute(ctx, CreateChannelInput{OwnerID: owner, Name: "Airbnb", VATPercent: pct("10")})
		require.NoError(t, err)
		assert.Equal(t, "10", got.VATPercent.String())
	})

	t.Run("duplicate name", func(t *testing.T) {
		repo := mocks.NewMockChannelRepository(gomock.NewController(t))
		repo.EXPECT().ExistsByName(ctx, owner, "Booking").Return(true, nil)

		_, err := NewCreateChannelUseCase(repo, vat21).Execute(ctx, CreateChannelInput{OwnerID: owner, Name: "Booking"})
		var chnErr *domainerror.ChannelError
		require.ErrorAs(t, err, &chnErr)
		assert.Equal(t, domainerror.ErrCodeChannelAlreadyExists, chnErr.Code)
	})

	t.Run("negative vat", func(t *testing.T) {
		repo := mocks.NewMockChannelRepository(gomock.NewController(t))
		_, err := NewCreateChannelUseCase(repo, vat21).Execute(ctx, CreateChannelInput{OwnerID: owner, Name: "X", VATPercent: pct("-1")})
		assert.ErrorIs(t, err, domainerror.ErrInvalidCommissionPercent)
	})
}

func TestDeleteChannelUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	owner, id := uuid.New(), uuid.New()

	ctrl := gomock.NewController(t)
	channels := mocks.NewMockChannelRepository(ctrl)
	reservations := mocks.NewMockReservationRepository(ctrl)
	uc := NewDeleteChannelUseCase(channels, reservations)

	reservations.EXPECT().CountByChannel(ctx, owner, id).Return(int64(3), nil)
	assert.ErrorIs(t, uc.Execute(ctx, DeleteChannelInput{OwnerID: owner, ChannelID: id}), domainerror.ErrChannelInUse)

	reservations.EXPECT().CountByChannel(ctx, owner, id).Return(int64(0), nil)
	channels.EXPECT().Delete(ctx, owner, id).Return(domainerror.ErrChannelNotFound)
	err := uc.Execute(ctx, DeleteChannelInput{OwnerID: owner, ChannelID: id})
	var chnErr *domainerror.ChannelError
	require.ErrorAs(t, err, &chnErr)
	assert.Equal(t, domainerror.ErrCodeChannelNotFound, chnErr.Code)
}

func TestSetOverrideUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	owner, property, channel := uuid.New(), uuid.New(), uuid.New()

	t.Run("upserts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		channels := mocks.NewMockChannelRepository(ctrl)
		properties := mocks.NewMockPropertyRepository(ctrl)

		properties.EXPECT().FindByID(ctx, owner, property).Return(&entity.Property{ID: property}, nil)
		channels.EXPECT().FindByID(ctx, owner, channel).Return(&entity.Channel{ID: channel}, nil)
		channels.EXPECT().UpsertOverride(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, o *entity.PropertyChannel) error {
				assert.Equal(t, property, o.PropertyID)
				assert.Nil(t, o.CollectionCommissionPercent)
				return nil
			})

		got, err := NewSetOverrideUseCase(channels, properties).Execute(ctx, SetOverrideInput{
			OwnerID:                  owner,
			PropertyID:               property,
			ChannelID:                channel,
			ChannelCommissionPercent: pct("15"),
		})
		require.NoError(t, err)
		assert.Equal(t, "15", got.ChannelCommissionPercent.String())
	})

	t.Run("negative percentage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		_, err := NewSetOverrideUseCase(mocks.NewMockChannelRepository(ctrl), mocks.NewMockPropertyRepository(ctrl)).
			Execute(ctx, SetOverrideInput{OwnerID: owner, PropertyID: property, ChannelID: channel, CollectionCommissionPercent: pct("-0.5")})
		assert.ErrorIs(t, err, domainerror.ErrInvalidCommissionPercent)
	})

	t.Run("unknown channel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		channels := mocks.NewMockChannelRepository(ctrl)
		properties := mocks.NewMockPropertyRepository(ctrl)
		properties.EXPECT().FindByID(ctx, owner, property).Return(&entity.Property{ID: property}, nil)
		channels.EXPECT().FindByID(ctx, owner, channel).Return(nil, domainerror.ErrChannelNotFound)

		_, err := NewSetOverrideUseCase(channels, properties).Execute(ctx, SetOverrideInput{OwnerID: owner, PropertyID: property, ChannelID: channel})
		assert.ErrorIs(t, err, domainerror.ErrChannelNotFound)
	})
}

func TestListOverridesUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	owner, property := uuid.New(), uuid.New()
	ctrl := gomock.NewController(t)
	channels := mocks.NewMockChannelRepository(ctrl)
	properties := mocks.NewMockPropertyRepository(ctrl)

	properties.EXPECT().FindByID(ctx, owner, property).Return(nil, domainerror.ErrPropertyNotFound)
	_, err := NewListOverridesUseCase(channels, properties).Execute(ctx, ListOverridesInput{OwnerID: owner, PropertyID: property})
	assert.ErrorIs(t, err, domainerror.ErrPropertyNotFound)

	properties.EXPECT().FindByID(ctx, owner, property).Return(&entity.Property{ID: property}, nil)
	channels.EXPECT().FindOverridesByProperty(ctx, property).Return([]*entity.PropertyChannel{{PropertyID: property}}, nil)
	got, err := NewListOverridesUseCase(channels, properties).Execute(ctx, ListOverridesInput{OwnerID: owner, PropertyID: property})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
