package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/rentaldesk/backend/internal/application/adapter"
	"github.com/rentaldesk/backend/internal/domain/entity"
	domainerror "github.com/rentaldesk/backend/internal/domain/error"
	"github.com/rentaldesk/backend/internal/integration/persistence/model"
)

type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository instance.
func NewExpenseRepository(db *gorm.DB) adapter.ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	return r.db.WithContext(ctx).Create(model.ExpenseModelFromEntity(expense)).Error
}

func (r *expenseRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.Expense, error) {
	var m model.ExpenseModel
	result := r.db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrExpenseNotFound
		}
		return nil, result.Error
	}
	return m.ToEntity(), nil
}

func (r *expenseRepository) FindByFilter(ctx context.Context, filter adapter.ExpenseFilter) ([]*entity.Expense, error) {
	var models []model.ExpenseModel
	if err := r.filtered(ctx, filter).Order("date DESC, created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}

	expenses := make([]*entity.Expense, len(models))
	for i := range models {
		expenses[i] = models[i].ToEntity()
	}
	return expenses, nil
}

// SumByFilter adds the amounts in Go so the result keeps decimal precision on
// every driver.
func (r *expenseRepository) SumByFilter(ctx context.Context, filter adapter.ExpenseFilter) (decimal.Decimal, error) {
	var amounts []decimal.Decimal
	if err := r.filtered(ctx, filter).Model(&model.ExpenseModel{}).Pluck("amount", &amounts).Error; err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total, nil
}

func (r *expenseRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&model.ExpenseModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrExpenseNotFound
	}
	return nil
}

func (r *expenseRepository) filtered(ctx context.Context, filter adapter.ExpenseFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Where("owner_id = ?", filter.OwnerID)
	if filter.PropertyID != nil {
		query = query.Where("property_id = ?", *filter.PropertyID)
	}
	if filter.StartDate != nil {
		query = query.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", *filter.EndDate)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	return query
}
