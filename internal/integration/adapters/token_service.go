// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/rentaldesk/backend/internal/application/adapter"
	"github.com/rentaldesk/backend/internal/integration/persistence"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"

	tokenIssuer = "rentaldesk"
)

// TokenDurations configures how long issued tokens live.
type TokenDurations struct {
	Access            time.Duration
	Refresh           time.Duration
	RememberMeAccess  time.Duration
	RememberMeRefresh time.Duration
}

// DefaultTokenDurations returns 15m/7d tokens, or 7d/30d with remember-me.
func DefaultTokenDurations() TokenDurations {
	return TokenDurations{
		Access:            15 * time.Minute,
		Refresh:           7 * 24 * time.Hour,
		RememberMeAccess:  7 * 24 * time.Hour,
		RememberMeRefresh: 30 * 24 * time.Hour,
	}
}

var errWrongTokenType = errors.New("unexpected token type")

// Claims are the JWT claims issued for operators.
type Claims struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

type tokenService struct {
	secret    []byte
	durations TokenDurations
	tokenRepo persistence.TokenRepository
	now       func() time.Time
}

// NewTokenService creates a new token service instance.
func NewTokenService(secret string, durations TokenDurations, tokenRepo persistence.TokenRepository) adapter.TokenService {
	return &tokenService{
		secret:    []byte(secret),
		durations: durations,
		tokenRepo: tokenRepo,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *tokenService) GenerateTokenPair(ctx context.Context, userID uuid.UUID, email string, rememberMe bool) (*adapter.TokenPair, error) {
	accessTTL, refreshTTL := s.durations.Access, s.durations.Refresh
	if rememberMe {
		accessTTL, refreshTTL = s.durations.RememberMeAccess, s.durations.RememberMeRefresh
	}

	now := s.now()
	accessToken, err := s.sign(userID, email, tokenTypeAccess, now, accessTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}
	refreshToken, err := s.sign(userID, email, tokenTypeRefresh, now, refreshTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	if err := s.tokenRepo.SaveRefreshToken(ctx, refreshToken, userID, now.Add(refreshTTL)); err != nil {
		return nil, fmt.Errorf("failed to save refresh token: %w", err)
	}

	return &adapter.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (s *tokenService) ValidateAccessToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	return s.validate(token, tokenTypeAccess)
}

func (s *tokenService) ValidateRefreshToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	return s.validate(token, tokenTypeRefresh)
}

func (s *tokenService) InvalidateRefreshToken(ctx context.Context, token string) error {
	return s.tokenRepo.InvalidateRefreshToken(ctx, token)
}

func (s *tokenService) IsRefreshTokenValid(ctx context.Context, token string) (bool, error) {
	return s.tokenRepo.IsRefreshTokenValid(ctx, token)
}

// sign issues a token with a random jti so two tokens minted in the same
// second never collide in the refresh token store.
func (s *tokenService) sign(userID uuid.UUID, email, tokenType string, now time.Time, ttl time.Duration) (string, error) {
	claims := Claims{
		UserID:    userID.String(),
		Email:     email,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    tokenIssuer,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *tokenService) validate(raw, tokenType string) (*adapter.TokenClaims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	if claims.TokenType != tokenType {
		return nil, fmt.Errorf("%w: want %s", errWrongTokenType, tokenType)
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id in token: %w", err)
	}

	return &adapter.TokenClaims{
		UserID:    userID,
		Email:     claims.Email,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
