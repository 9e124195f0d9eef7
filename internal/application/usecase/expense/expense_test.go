package expense

import (
	"context"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentaldesk/backend/internal/application/adapter"
	"github.com/rentaldesk/backend/internal/application/adapter/mocks"
	"github.com/rentaldesk/backend/internal/domain/entity"
	domainerror "github.com/rentaldesk/backend/internal/domain/error"
)

func TestCreateExpenseUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	owner, property := uuid.New(), uuid.New()

	t.Run("creates with defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		expenses := mocks.NewMockExpenseRepository(ctrl)
		properties := mocks.NewMockPropertyRepository(ctrl)
		when := time.Date(2024, 6, 3, 17, 30, 0, 0, time.UTC)

		properties.EXPECT().FindByID(ctx, owner, property).Return(&entity.Property{ID: property}, nil)
		expenses.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		got, err := NewCreateExpenseUseCase(expenses, properties).Execute(ctx, CreateExpenseInput{
			OwnerID:     owner,
			PropertyID:  property,
			Date:        &when,
			Description: " Linen ",
			Amount:      decimal.RequireFromString("42.50"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Linen", got.Description)
		assert.Equal(t, DefaultCategory, got.Category)
		assert.Equal(t, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), got.Date)
	})

	t.Run("category is cut on a character boundary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		expenses := mocks.NewMockExpenseRepository(ctrl)
		properties := mocks.NewMockPropertyRepository(ctrl)

		properties.EXPECT().FindByID(ctx, owner, property).Return(&entity.Property{ID: property}, nil)
		expenses.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		got, err := NewCreateExpenseUseCase(expenses, properties).Execute(ctx, CreateExpenseInput{
			OwnerID:     owner,
			PropertyID:  property,
			Description: "Limpieza",
			Category:    strings.Repeat("l", MaxCategoryLength-1) + "ñ",
			Amount:      decimal.NewFromInt(30),
		})
		require.NoError(t, err)
		assert.Len(t, got.Category, MaxCategoryLength-1)
		assert.True(t, utf8.ValidString(got.Category))
	})

	t.Run("validation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := NewCreateExpenseUseCase(mocks.NewMockExpenseRepository(ctrl), mocks.NewMockPropertyRepository(ctrl))

		_, err := uc.Execute(ctx, CreateExpenseInput{OwnerID: owner, PropertyID: property, Amount: decimal.NewFromInt(1)})
		assert.ErrorIs(t, err, domainerror.ErrExpenseDescriptionRequired)

		_, err = uc.Execute(ctx, CreateExpenseInput{OwnerID: owner, PropertyID: property, Description: "x", Amount: decimal.Zero})
		assert.ErrorIs(t, err, domainerror.ErrInvalidExpenseAmount)
	})

	t.Run("unknown property", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		properties := mocks.NewMockPropertyRepository(ctrl)
		properties.EXPECT().FindByID(ctx, owner, property).Return(nil, domainerror.ErrPropertyNotFound)

		_, err := NewCreateExpenseUseCase(mocks.NewMockExpenseRepository(ctrl), properties).Execute(ctx, CreateExpenseInput{
			OwnerID:     owner,
			PropertyID:  property,
			Description: "Linen",
			Amount:      decimal.NewFromInt(1),
		})
		var expErr *domainerror.ExpenseError
		require.ErrorAs(t, err, &expErr)
		assert.Equal(t, domainerror.ErrCodeExpensePropertyNotFound, expErr.Code)
	})
}

func TestListExpensesUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	repo := mocks.NewMockExpenseRepository(gomock.NewController(t))

	repo.EXPECT().FindByFilter(ctx, adapter.ExpenseFilter{OwnerID: owner, Category: "cleaning"}).
		Return([]*entity.Expense{
			{Amount: decimal.RequireFromString("30.10")},
			{Amount: decimal.RequireFromString("19.90")},
		}, nil)

	got, err := NewListExpensesUseCase(repo).Execute(ctx, ListExpensesInput{OwnerID: owner, Category: "cleaning"})
	require.NoError(t, err)
	assert.Len(t, got.Expenses, 2)
	assert.Equal(t, "50.00", got.Total.StringFixed(2))
}

func TestDeleteExpenseUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	owner, id := uuid.New(), uuid.New()
	repo := mocks.NewMockExpenseRepository(gomock.NewController(t))

	repo.EXPECT().Delete(ctx, owner, id).Return(domainerror.ErrExpenseNotFound)
	err := NewDeleteExpenseUseCase(repo).Execute(ctx, DeleteExpenseInput{OwnerID: owner, ExpenseID: id})
	var expErr *domainerror.ExpenseError
	require.ErrorAs(t, err, &expErr)
	assert.Equal(t, domainerror.ErrCodeExpenseNotFound, expErr.Code)
}
