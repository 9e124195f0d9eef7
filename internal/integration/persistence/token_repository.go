package persistence

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rentaldesk/backend/internal/integration/persistence/model"
)

// TokenRepository tracks issued refresh tokens so they can be revoked.
type TokenRepository interface {
	// SaveRefreshToken records a newly issued refresh token.
	SaveRefreshToken(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error

	// IsRefreshTokenValid checks that the token was issued, is not revoked and has not expired.
	IsRefreshTokenValid(ctx context.Context, token string) (bool, error)

	// InvalidateRefreshToken revokes a refresh token.
	InvalidateRefreshToken(ctx context.Context, token string) error

	// DeleteExpired removes tokens past their expiry and returns how many were removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository creates a new token repository instance.
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) SaveRefreshToken(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error {
	return r.db.WithContext(ctx).Create(&model.RefreshTokenModel{
		ID:        uuid.New(),
		TokenHash: hashToken(token),
		UserID:    userID,
		ExpiresAt: expiresAt.UTC(),
		CreatedAt: time.Now().UTC(),
	}).Error
}

func (r *tokenRepository) IsRefreshTokenValid(ctx context.Context, token string) (bool, error) {
	var refreshToken model.RefreshTokenModel
	result := r.db.WithContext(ctx).
		Where("token_hash = ? AND invalidated = ? AND expires_at > ?", hashToken(token), false, time.Now().UTC()).
		First(&refreshToken)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, result.Error
	}
	return true, nil
}

func (r *tokenRepository) InvalidateRefreshToken(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).
		Model(&model.RefreshTokenModel{}).
		Where("token_hash = ?", hashToken(token)).
		Update("invalidated", true).Error
}

func (r *tokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at <= ?", now.UTC()).
		Delete(&model.RefreshTokenModel{})
	return result.RowsAffected, result.Error
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
