package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/rentaldesk/backend/internal/domain/entity"
)

// ExpenseModel represents the expenses table in the database.
type ExpenseModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OwnerID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	PropertyID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Date        time.Time       `gorm:"type:date;not null;index"`
	Category    string          `gorm:"type:varchar(50);not null;default:'other'"`
	Description string          `gorm:"type:varchar(255);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Notes       string          `gorm:"type:text"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
	DeletedAt   gorm.DeletedAt  `gorm:"index"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	return &entity.Expense{
		ID:          m.ID,
		OwnerID:     m.OwnerID,
		PropertyID:  m.PropertyID,
		Date:        m.Date,
		Category:    m.Category,
		Description: m.Description,
		Amount:      m.Amount,
		Notes:       m.Notes,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		DeletedAt:   deletedAtPtr(m.DeletedAt),
	}
}

// ExpenseModelFromEntity creates an ExpenseModel from a domain Expense entity.
func ExpenseModelFromEntity(e *entity.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:          e.ID,
		OwnerID:     e.OwnerID,
		PropertyID:  e.PropertyID,
		Date:        e.Date,
		Category:    e.Category,
		Description: e.Description,
		Amount:      e.Amount,
		Notes:       e.Notes,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
		DeletedAt:   gormDeletedAt(e.DeletedAt),
	}
}
