package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rentaldesk/backend/internal/application/adapter"
	"github.com/rentaldesk/backend/internal/domain/entity"
	domainerror "github.com/rentaldesk/backend/internal/domain/error"
	"github.com/rentaldesk/backend/internal/integration/persistence/model"
)

type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository creates a new property repository instance.
func NewPropertyRepository(db *gorm.DB) adapter.PropertyRepository {
	return &propertyRepository{db: db}
}

func (r *propertyRepository) Create(ctx context.Context, property *entity.Property) error {
	return r.db.WithContext(ctx).Create(model.PropertyModelFromEntity(property)).Error
}

func (r *propertyRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.Property, error) {
	var m model.PropertyModel
	result := r.db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPropertyNotFound
		}
		return nil, result.Error
	}
	return m.ToEntity(), nil
}

func (r *propertyRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Property, error) {
	var models []model.PropertyModel
	result := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("name ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	properties := make([]*entity.Property, len(models))
	for i := range models {
		properties[i] = models[i].ToEntity()
	}
	return properties, nil
}

func (r *propertyRepository) Update(ctx context.Context, property *entity.Property) error {
	return r.db.WithContext(ctx).Save(model.PropertyModelFromEntity(property)).Error
}

func (r *propertyRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&model.PropertyModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrPropertyNotFound
	}
	return nil
}
