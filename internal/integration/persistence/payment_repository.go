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

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository instance.
func NewPaymentRepository(db *gorm.DB) adapter.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	return r.db.WithContext(ctx).Create(model.PaymentModelFromEntity(payment)).Error
}

func (r *paymentRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.Payment, error) {
	var m model.PaymentModel
	result := r.db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPaymentNotFound
		}
		return nil, result.Error
	}
	return m.ToEntity(), nil
}

func (r *paymentRepository) FindByFilter(ctx context.Context, filter adapter.PaymentFilter) ([]*entity.Payment, error) {
	query := r.db.WithContext(ctx).Where("owner_id = ?", filter.OwnerID)
	if filter.ReservationID != nil {
		query = query.Where("reservation_id = ?", *filter.ReservationID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}

	var models []model.PaymentModel
	if err := query.Order("paid_at DESC, created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}
	return toPayments(models), nil
}

func (r *paymentRepository) FindByReservation(ctx context.Context, reservationID uuid.UUID) ([]*entity.Payment, error) {
	var models []model.PaymentModel
	result := r.db.WithContext(ctx).
		Where("reservation_id = ?", reservationID).
		Order("paid_at ASC, created_at ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}
	return toPayments(models), nil
}

func (r *paymentRepository) FindByReservations(ctx context.Context, reservationIDs []uuid.UUID) (map[uuid.UUID][]*entity.Payment, error) {
	grouped := make(map[uuid.UUID][]*entity.Payment, len(reservationIDs))
	if len(reservationIDs) == 0 {
		return grouped, nil
	}

	var models []model.PaymentModel
	if err := r.db.WithContext(ctx).Where("reservation_id IN ?", reservationIDs).Find(&models).Error; err != nil {
		return nil, err
	}
	for i := range models {
		p := models[i].ToEntity()
		grouped[p.ReservationID] = append(grouped[p.ReservationID], p)
	}
	return grouped, nil
}

func (r *paymentRepository) Update(ctx context.Context, payment *entity.Payment) error {
	return r.db.WithContext(ctx).Save(model.PaymentModelFromEntity(payment)).Error
}

func (r *paymentRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&model.PaymentModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrPaymentNotFound
	}
	return nil
}

func toPayments(models []model.PaymentModel) []*entity.Payment {
	payments := make([]*entity.Payment, len(models))
	for i := range models {
		payments[i] = models[i].ToEntity()
	}
	return payments
}
