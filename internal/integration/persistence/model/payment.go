package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/rentaldesk/backend/internal/domain/entity"
	"github.com/rentaldesk/backend/internal/domain/valueobject"
)

// PaymentModel represents the payments table in the database.
type PaymentModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OwnerID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	ReservationID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Method        string          `gorm:"type:varchar(20);not null"`
	Status        string          `gorm:"type:varchar(20);not null;index"`
	PaidAt        time.Time       `gorm:"not null"`
	Reference     string          `gorm:"type:varchar(100)"`
	Notes         string          `gorm:"type:text"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
	DeletedAt     gorm.DeletedAt  `gorm:"index"`
}

// TableName returns the table name for the PaymentModel.
func (PaymentModel) TableName() string {
	return "payments"
}

// ToEntity converts a PaymentModel to a domain Payment entity.
func (m *PaymentModel) ToEntity() *entity.Payment {
	return &entity.Payment{
		ID:            m.ID,
		OwnerID:       m.OwnerID,
		ReservationID: m.ReservationID,
		Amount:        m.Amount,
		Method:        entity.PaymentMethod(m.Method),
		Status:        valueobject.PaymentStatus(m.Status),
		PaidAt:        m.PaidAt,
		Reference:     m.Reference,
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		DeletedAt:     deletedAtPtr(m.DeletedAt),
	}
}

// PaymentModelFromEntity creates a PaymentModel from a domain Payment entity.
func PaymentModelFromEntity(p *entity.Payment) *PaymentModel {
	return &PaymentModel{
		ID:            p.ID,
		OwnerID:       p.OwnerID,
		ReservationID: p.ReservationID,
		Amount:        p.Amount,
		Method:        string(p.Method),
		Status:        string(p.Status),
		PaidAt:        p.PaidAt,
		Reference:     p.Reference,
		Notes:         p.Notes,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		DeletedAt:     gormDeletedAt(p.DeletedAt),
	}
}
