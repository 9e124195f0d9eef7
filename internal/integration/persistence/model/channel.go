package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rentaldesk/backend/internal/domain/entity"
)

// ChannelModel represents the channels table in the database.
type ChannelModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OwnerID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_channels_owner_name"`
	Name       string          `gorm:"type:varchar(100);not null;uniqueIndex:idx_channels_owner_name"`
	VATPercent decimal.Decimal `gorm:"column:vat_percent;type:decimal(5,2);not null;default:0"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ChannelModel.
func (ChannelModel) TableName() string {
	return "channels"
}

// ToEntity converts a ChannelModel to a domain Channel entity.
func (m *ChannelModel) ToEntity() *entity.Channel {
	return &entity.Channel{
		ID:         m.ID,
		OwnerID:    m.OwnerID,
		Name:       m.Name,
		VATPercent: m.VATPercent,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// ChannelModelFromEntity creates a ChannelModel from a domain Channel entity.
func ChannelModelFromEntity(c *entity.Channel) *ChannelModel {
	return &ChannelModel{
		ID:         c.ID,
		OwnerID:    c.OwnerID,
		Name:       c.Name,
		VATPercent: c.VATPercent,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

// PropertyChannelModel represents the property_channels table: the commission
// override of one channel for one property.
type PropertyChannelModel struct {
	PropertyID                  uuid.UUID        `gorm:"type:uuid;primaryKey"`
	ChannelID                   uuid.UUID        `gorm:"type:uuid;primaryKey"`
	ChannelCommissionPercent    *decimal.Decimal `gorm:"type:decimal(5,2)"`
	CollectionCommissionPercent *decimal.Decimal `gorm:"type:decimal(5,2)"`
	UpdatedAt                   time.Time        `gorm:"not null"`
}

// TableName returns the table name for the PropertyChannelModel.
func (PropertyChannelModel) TableName() string {
	return "property_channels"
}

// ToEntity converts a PropertyChannelModel to a domain PropertyChannel entity.
func (m *PropertyChannelModel) ToEntity() *entity.PropertyChannel {
	return &entity.PropertyChannel{
		PropertyID:                  m.PropertyID,
		ChannelID:                   m.ChannelID,
		ChannelCommissionPercent:    m.ChannelCommissionPercent,
		CollectionCommissionPercent: m.CollectionCommissionPercent,
		UpdatedAt:                   m.UpdatedAt,
	}
}

// PropertyChannelModelFromEntity creates a PropertyChannelModel from a domain entity.
func PropertyChannelModelFromEntity(pc *entity.PropertyChannel) *PropertyChannelModel {
	return &PropertyChannelModel{
		PropertyID:                  pc.PropertyID,
		ChannelID:                   pc.ChannelID,
		ChannelCommissionPercent:    pc.ChannelCommissionPercent,
		CollectionCommissionPercent: pc.CollectionCommissionPercent,
		UpdatedAt:                   pc.UpdatedAt,
	}
}
