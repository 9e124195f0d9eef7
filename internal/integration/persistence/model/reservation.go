package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/rentaldesk/backend/internal/domain/entity"
	"github.com/rentaldesk/backend/internal/domain/valueobject"
)

// ReservationModel represents the reservations table in the database.
type ReservationModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OwnerID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	PropertyID     uuid.UUID       `gorm:"type:uuid;not null;index:idx_reservations_property_dates"`
	ChannelID      *uuid.UUID      `gorm:"type:uuid;index"`
	ExternalSource string          `gorm:"type:varchar(100)"`
	GuestName      string          `gorm:"type:varchar(150);not null"`
	GuestEmail     string          `gorm:"type:varchar(255)"`
	Guests         int             `gorm:"not null;default:1"`
	CheckIn        time.Time       `gorm:"type:date;not null;index:idx_reservations_property_dates"`
	CheckOut       time.Time       `gorm:"type:date;not null;index:idx_reservations_property_dates"`
	BaseAmount     decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	CleaningFee    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Taxes          decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Status         string          `gorm:"type:varchar(20);not null;index"`
	PaymentStatus  string          `gorm:"type:varchar(20);not null;default:'pending';index"`
	Notes          string          `gorm:"type:text"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`
	DeletedAt      gorm.DeletedAt  `gorm:"index"`

	// Relationships (not loaded by default, use Preload)
	Channel *ChannelModel `gorm:"foreignKey:ChannelID;references:ID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for the ReservationModel.
func (ReservationModel) TableName() string {
	return "reservations"
}

// ToEntity converts a ReservationModel to a domain Reservation entity.
func (m *ReservationModel) ToEntity() *entity.Reservation {
	return &entity.Reservation{
		ID:             m.ID,
		OwnerID:        m.OwnerID,
		PropertyID:     m.PropertyID,
		ChannelID:      m.ChannelID,
		ExternalSource: m.ExternalSource,
		GuestName:      m.GuestName,
		GuestEmail:     m.GuestEmail,
		Guests:         m.Guests,
		CheckIn:        valueobject.Day(m.CheckIn),
		CheckOut:       valueobject.Day(m.CheckOut),
		BaseAmount:     m.BaseAmount,
		CleaningFee:    m.CleaningFee,
		Taxes:          m.Taxes,
		Status:         entity.ReservationStatus(m.Status),
		PaymentStatus:  valueobject.SettlementStatus(m.PaymentStatus),
		Notes:          m.Notes,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
		DeletedAt:      deletedAtPtr(m.DeletedAt),
	}
}

// ReservationModelFromEntity creates a ReservationModel from a domain Reservation entity.
func ReservationModelFromEntity(r *entity.Reservation) *ReservationModel {
	return &ReservationModel{
		ID:             r.ID,
		OwnerID:        r.OwnerID,
		PropertyID:     r.PropertyID,
		ChannelID:      r.ChannelID,
		ExternalSource: r.ExternalSource,
		GuestName:      r.GuestName,
		GuestEmail:     r.GuestEmail,
		Guests:         r.Guests,
		CheckIn:        valueobject.Day(r.CheckIn),
		CheckOut:       valueobject.Day(r.CheckOut),
		BaseAmount:     r.BaseAmount,
		CleaningFee:    r.CleaningFee,
		Taxes:          r.Taxes,
		Status:         string(r.Status),
		PaymentStatus:  string(r.PaymentStatus),
		Notes:          r.Notes,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
		DeletedAt:      gormDeletedAt(r.DeletedAt),
	}
}
