package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rentaldesk/backend/internal/domain/entity"
)

// PropertyModel represents the properties table in the database.
type PropertyModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	OwnerID   uuid.UUID      `gorm:"type:uuid;not null;index"`
	Name      string         `gorm:"type:varchar(150);not null"`
	Address   string         `gorm:"type:varchar(255)"`
	MaxGuests int            `gorm:"not null;default:0"`
	CreatedAt time.Time      `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName returns the table name for the PropertyModel.
func (PropertyModel) TableName() string {
	return "properties"
}

// ToEntity converts a PropertyModel to a domain Property entity.
func (m *PropertyModel) ToEntity() *entity.Property {
	return &entity.Property{
		ID:        m.ID,
		OwnerID:   m.OwnerID,
		Name:      m.Name,
		Address:   m.Address,
		MaxGuests: m.MaxGuests,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		DeletedAt: deletedAtPtr(m.DeletedAt),
	}
}

// PropertyModelFromEntity creates a PropertyModel from a domain Property entity.
func PropertyModelFromEntity(p *entity.Property) *PropertyModel {
	return &PropertyModel{
		ID:        p.ID,
		OwnerID:   p.OwnerID,
		Name:      p.Name,
		Address:   p.Address,
		MaxGuests: p.MaxGuests,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
		DeletedAt: gormDeletedAt(p.DeletedAt),
	}
}

func deletedAtPtr(d gorm.DeletedAt) *time.Time {
	if !d.Valid {
		return nil
	}
	t := d.Time
	return &t
}

func gormDeletedAt(t *time.Time) gorm.DeletedAt {
	if t == nil {
		return gorm.DeletedAt{}
	}
	return gorm.DeletedAt{Time: *t, Valid: true}
}
