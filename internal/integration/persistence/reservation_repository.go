package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rentaldesk/backend/internal/application/adapter"
	"github.com/rentaldesk/backend/internal/domain/entity"
	domainerror "github.com/rentaldesk/backend/internal/domain/error"
	"github.com/rentaldesk/backend/internal/domain/valueobject"
	"github.com/rentaldesk/backend/internal/integration/persistence/model"
)

type reservationRepository struct {
	db *gorm.DB
}

// NewReservationRepository creates a new reservation repository instance.
func NewReservationRepository(db *gorm.DB) adapter.ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) Create(ctx context.Context, reservation *entity.Reservation) error {
	return r.db.WithContext(ctx).Create(model.ReservationModelFromEntity(reservation)).Error
}

func (r *reservationRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.Reservation, error) {
	m, err := r.findModel(ctx, r.db.WithContext(ctx), ownerID, id)
	if err != nil {
		return nil, err
	}
	return m.ToEntity(), nil
}

func (r *reservationRepository) FindByIDWithChannel(ctx context.Context, ownerID, id uuid.UUID) (*entity.ReservationWithChannel, error) {
	m, err := r.findModel(ctx, r.db.WithContext(ctx).Preload("Channel"), ownerID, id)
	if err != nil {
		return nil, err
	}

	out := &entity.ReservationWithChannel{Reservation: m.ToEntity()}
	if m.Channel == nil {
		return out, nil
	}
	out.Channel = m.Channel.ToEntity()

	var override model.PropertyChannelModel
	result := r.db.WithContext(ctx).
		Where("property_id = ? AND channel_id = ?", m.PropertyID, m.Channel.ID).
		First(&override)
	switch {
	case result.Error == nil:
		out.Override = override.ToEntity()
	case !errors.Is(result.Error, gorm.ErrRecordNotFound):
		return nil, result.Error
	}
	return out, nil
}

func (r *reservationRepository) findModel(ctx context.Context, query *gorm.DB, ownerID, id uuid.UUID) (*model.ReservationModel, error) {
	var m model.ReservationModel
	result := query.Where("id = ? AND owner_id = ?", id, ownerID).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrReservationNotFound
		}
		return nil, result.Error
	}
	return &m, nil
}

func (r *reservationRepository) FindByFilter(ctx context.Context, filter adapter.ReservationFilter, pagination adapter.ReservationPagination) (*adapter.ReservationListResult, error) {
	query := r.db.WithContext(ctx).Model(&model.ReservationModel{}).Where("owner_id = ?", filter.OwnerID)

	if filter.PropertyID != nil {
		query = query.Where("property_id = ?", *filter.PropertyID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.PaymentStatus != nil {
		query = query.Where("payment_status = ?", string(*filter.PaymentStatus))
	}
	if filter.To != nil {
		query = query.Where("check_in < ?", valueobject.Day(*filter.To))
	}
	if filter.From != nil {
		query = query.Where("check_out > ?", valueobject.Day(*filter.From))
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(guest_name) LIKE ? OR LOWER(guest_email) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (pagination.Page - 1) * pagination.Limit
	totalPages := int((total + int64(pagination.Limit) - 1) / int64(pagination.Limit))
	if totalPages == 0 {
		totalPages = 1
	}

	var models []model.ReservationModel
	result := query.
		Order("check_in DESC, created_at DESC").
		Offset(offset).
		Limit(pagination.Limit).
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	return &adapter.ReservationListResult{
		Reservations: toReservations(models),
		Total:        total,
		Page:         pagination.Page,
		Limit:        pagination.Limit,
		TotalPages:   totalPages,
	}, nil
}

func (r *reservationRepository) FindOverlapping(ctx context.Context, ownerID, propertyID uuid.UUID, from, to time.Time) ([]*entity.Reservation, error) {
	var models []model.ReservationModel
	result := r.db.WithContext(ctx).
		Where("owner_id = ? AND property_id = ?", ownerID, propertyID).
		Where("check_in <= ? AND check_out >= ?", valueobject.Day(to), valueobject.Day(from)).
		Order("check_in ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}
	return toReservations(models), nil
}

func (r *reservationRepository) Update(ctx context.Context, reservation *entity.Reservation) error {
	return r.db.WithContext(ctx).Save(model.ReservationModelFromEntity(reservation)).Error
}

func (r *reservationRepository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status valueobject.SettlementStatus) error {
	return r.db.WithContext(ctx).
		Model(&model.ReservationModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"payment_status": string(status),
			"updated_at":     time.Now().UTC(),
		}).Error
}

func (r *reservationRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&model.ReservationModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrReservationNotFound
	}
	return nil
}

func (r *reservationRepository) CountActiveByProperty(ctx context.Context, ownerID, propertyID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.ReservationModel{}).
		Where("owner_id = ? AND property_id = ?", ownerID, propertyID).
		Where("status IN ?", []string{string(entity.ReservationStatusConfirmed), string(entity.ReservationStatusPending)}).
		Count(&count).Error
	return count, err
}

func (r *reservationRepository) CountByChannel(ctx context.Context, ownerID, channelID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.ReservationModel{}).
		Where("owner_id = ? AND channel_id = ?", ownerID, channelID).
		Count(&count).Error
	return count, err
}

func (r *reservationRepository) CompletePastStays(ctx context.Context, before time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.ReservationModel{}).
		Where("status = ? AND check_out <= ?", string(entity.ReservationStatusConfirmed), valueobject.Day(before)).
		Updates(map[string]any{
			"status":     string(entity.ReservationStatusCompleted),
			"updated_at": time.Now().UTC(),
		})
	return result.RowsAffected, result.Error
}

func toReservations(models []model.ReservationModel) []*entity.Reservation {
	reservations := make([]*entity.Reservation, len(models))
	for i := range models {
		reservations[i] = models[i].ToEntity()
	}
	return reservations
}
