package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rentaldesk/backend/internal/application/adapter"
	"github.com/rentaldesk/backend/internal/domain/entity"
	domainerror "github.com/rentaldesk/backend/internal/domain/error"
	"github.com/rentaldesk/backend/internal/integration/persistence/model"
)

type channelRepository struct {
	db *gorm.DB
}

// NewChannelRepository creates a new channel repository instance.
func NewChannelRepository(db *gorm.DB) adapter.ChannelRepository {
	return &channelRepository{db: db}
}

func (r *channelRepository) Create(ctx context.Context, channel *entity.Channel) error {
	return r.db.WithContext(ctx).Create(model.ChannelModelFromEntity(channel)).Error
}

func (r *channelRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.Channel, error) {
	var m model.ChannelModel
	result := r.db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrChannelNotFound
		}
		return nil, result.Error
	}
	return m.ToEntity(), nil
}

func (r *channelRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Channel, error) {
	var models []model.ChannelModel
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("name ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	channels := make([]*entity.Channel, len(models))
	for i := range models {
		channels[i] = models[i].ToEntity()
	}
	return channels, nil
}

func (r *channelRepository) ExistsByName(ctx context.Context, ownerID uuid.UUID, name string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.ChannelModel{}).
		Where("owner_id = ? AND LOWER(name) = ?", ownerID, strings.ToLower(strings.TrimSpace(name))).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Delete removes the channel and its property overrides in one transaction.
func (r *channelRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND owner_id = ?", id, ownerID).Delete(&model.ChannelModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrChannelNotFound
		}
		return tx.Where("channel_id = ?", id).Delete(&model.PropertyChannelModel{}).Error
	})
}

func (r *channelRepository) UpsertOverride(ctx context.Context, override *entity.PropertyChannel) error {
	m := model.PropertyChannelModelFromEntity(override)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "property_id"}, {Name: "channel_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"channel_commission_percent", "collection_commission_percent", "updated_at"}),
		}).
		Create(m).Error
}

func (r *channelRepository) FindOverride(ctx context.Context, propertyID, channelID uuid.UUID) (*entity.PropertyChannel, error) {
	var m model.PropertyChannelModel
	result := r.db.WithContext(ctx).
		Where("property_id = ? AND channel_id = ?", propertyID, channelID).
		First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return m.ToEntity(), nil
}

func (r *channelRepository) FindOverridesByProperty(ctx context.Context, propertyID uuid.UUID) ([]*entity.PropertyChannel, error) {
	var models []model.PropertyChannelModel
	if err := r.db.WithContext(ctx).Where("property_id = ?", propertyID).Find(&models).Error; err != nil {
		return nil, err
	}

	overrides := make([]*entity.PropertyChannel, len(models))
	for i := range models {
		overrides[i] = models[i].ToEntity()
	}
	return overrides, nil
}
