package property

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentaldesk/backend/internal/application/adapter/mocks"
	"github.com/rentaldesk/backend/internal/domain/entity"
	domainerror "github.com/rentaldesk/backend/internal/domain/error"
)

func TestCreatePropertyUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	tests := []struct {
		name      string
		input     CreatePropertyInput
		wantCode  domainerror.PropertyErrorCode
		wantSaved bool
	}{
		{
			name:      "valid property",
			input:     CreatePropertyInput{OwnerID: owner, Name: " Casa Mar ", MaxGuests: 4},
			wantSaved: true,
		},
		{
			name:     "blank name",
			input:    CreatePropertyInput{OwnerID: owner, Name: "   "},
			wantCode: domainerror.ErrCodePropertyNameRequired,
		},
		{
			name:     "negative capacity",
			input:    CreatePropertyInput{OwnerID: owner, Name: "Casa", MaxGuests: -1},
			wantCode: domainerror.ErrCodeInvalidMaxGuests,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockPropertyRepository(gomock.NewController(t))
			if tt.wantSaved {
				repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
			}

			got, err := NewCreatePropertyUseCase(repo).Execute(ctx, tt.input)
			if !tt.wantSaved {
				var propErr *domainerror.PropertyError
				require.ErrorAs(t, err, &propErr)
				assert.Equal(t, tt.wantCode, propErr.Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Casa Mar", got.Name)
			assert.Equal(t, owner, got.OwnerID)
		})
	}
}

func TestUpdatePropertyUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	repo := mocks.NewMockPropertyRepository(gomock.NewController(t))
	p := entity.NewProperty(owner, "Casa", "", 2)
	name, guests := "Casa Mar", 6

	repo.EXPECT().FindByID(ctx, owner, p.ID).Return(p, nil)
	repo.EXPECT().Update(ctx, p).Return(nil)

	got, err := NewUpdatePropertyUseCase(repo).Execute(ctx, UpdatePropertyInput{
		OwnerID:    owner,
		PropertyID: p.ID,
		Name:       &name,
		MaxGuests:  &guests,
	})
	require.NoError(t, err)
	assert.Equal(t, "Casa Mar", got.Name)
	assert.Equal(t, 6, got.MaxGuests)

	repo.EXPECT().FindByID(ctx, owner, p.ID).Return(nil, domainerror.ErrPropertyNotFound)
	_, err = NewUpdatePropertyUseCase(repo).Execute(ctx, UpdatePropertyInput{OwnerID: owner, PropertyID: p.ID})
	assert.ErrorIs(t, err, domainerror.ErrPropertyNotFound)
}

func TestDeletePropertyUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	owner, id := uuid.New(), uuid.New()

	t.Run("blocked by active reservations", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		properties := mocks.NewMockPropertyRepository(ctrl)
		reservations := mocks.NewMockReservationRepository(ctrl)
		reservations.EXPECT().CountActiveByProperty(ctx, owner, id).Return(int64(2), nil)

		err := NewDeletePropertyUseCase(properties, reservations).Execute(ctx, DeletePropertyInput{OwnerID: owner, PropertyID: id})
		assert.ErrorIs(t, err, domainerror.ErrPropertyHasReservations)
	})

	t.Run("deletes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		properties := mocks.NewMockPropertyRepository(ctrl)
		reservations := mocks.NewMockReservationRepository(ctrl)
		reservations.EXPECT().CountActiveByProperty(ctx, owner, id).Return(int64(0), nil)
		properties.EXPECT().Delete(ctx, owner, id).Return(nil)

		require.NoError(t, NewDeletePropertyUseCase(properties, reservations).Execute(ctx, DeletePropertyInput{OwnerID: owner, PropertyID: id}))
	})

	t.Run("count failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reservations := mocks.NewMockReservationRepository(ctrl)
		reservations.EXPECT().CountActiveByProperty(ctx, owner, id).Return(int64(0), errors.New("db down"))

		err := NewDeletePropertyUseCase(mocks.NewMockPropertyRepository(ctrl), reservations).
			Execute(ctx, DeletePropertyInput{OwnerID: owner, PropertyID: id})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "db down")
	})
}
