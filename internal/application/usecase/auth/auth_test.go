package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentaldesk/backend/internal/application/adapter"
	"github.com/rentaldesk/backend/internal/application/adapter/mocks"
	"github.com/rentaldesk/backend/internal/domain/entity"
	domainerror "github.com/rentaldesk/backend/internal/domain/error"
)

type fixture struct {
	users     *mocks.MockUserRepository
	passwords *mocks.MockPasswordService
	tokens    *mocks.MockTokenService
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	return &fixture{
		users:     mocks.NewMockUserRepository(ctrl),
		passwords: mocks.NewMockPasswordService(ctrl),
		tokens:    mocks.NewMockTokenService(ctrl),
	}
}

func authCode(t *testing.T, err error) domainerror.AuthErrorCode {
	t.Helper()
	var authErr *domainerror.AuthError
	require.ErrorAs(t, err, &authErr)
	return authErr.Code
}

func TestRegisterUserUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("registers and signs in", func(t *testing.T) {
		f := newFixture(t)
		uc := NewRegisterUserUseCase(f.users, f.passwords, f.tokens)

		f.passwords.EXPECT().ValidatePasswordStrength("Secret123!").Return(nil)
		f.users.EXPECT().ExistsByEmail(ctx, "ops@example.com").Return(false, nil)
		f.passwords.EXPECT().HashPassword("Secret123!").Return("hash", nil)
		f.users.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		f.tokens.EXPECT().GenerateTokenPair(ctx, gomock.Any(), "ops@example.com", false).
			Return(&adapter.TokenPair{AccessToken: "a", RefreshToken: "r"}, nil)

		got, err := uc.Execute(ctx, RegisterUserInput{
			Email:         " Ops@Example.com ",
			Name:          "Ops",
			Password:      "Secret123!",
			Currency:      "usd",
			TermsAccepted: true,
		})
		require.NoError(t, err)
		assert.Equal(t, "ops@example.com", got.User.Email)
		assert.Equal(t, "USD", got.User.Currency)
		assert.Equal(t, "hash", got.User.PasswordHash)
		assert.Equal(t, "a", got.AccessToken)
	})

	t.Run("rejections", func(t *testing.T) {
		tests := []struct {
			name  string
			input RegisterUserInput
			setup func(f *fixture)
			code  domainerror.AuthErrorCode
		}{
			{
				name:  "terms not accepted",
				input: RegisterUserInput{Email: "a@b.co", Password: "x"},
				code:  domainerror.ErrCodeTermsNotAccepted,
			},
			{
				name:  "invalid email",
				input: RegisterUserInput{Email: "nope", Password: "x", TermsAccepted: true},
				code:  domainerror.ErrCodeInvalidEmail,
			},
			{
				name:  "invalid currency",
				input: RegisterUserInput{Email: "a@b.co", Password: "x", Currency: "euro", TermsAccepted: true},
				code:  domainerror.ErrCodeMissingFields,
			},
			{
				name:  "weak password",
				input: RegisterUserInput{Email: "a@b.co", Password: "x", TermsAccepted: true},
				setup: func(f *fixture) {
					f.passwords.EXPECT().ValidatePasswordStrength("x").Return(errors.New("too short"))
				},
				code: domainerror.ErrCodeWeakPassword,
			},
			{
				name:  "email taken",
				input: RegisterUserInput{Email: "a@b.co", Password: "Secret123!", TermsAccepted: true},
				setup: func(f *fixture) {
					f.passwords.EXPECT().ValidatePasswordStrength("Secret123!").Return(nil)
					f.users.EXPECT().ExistsByEmail(ctx, "a@b.co").Return(true, nil)
				},
				code: domainerror.ErrCodeEmailExists,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := newFixture(t)
				if tt.setup != nil {
					tt.setup(f)
				}
				_, err := NewRegisterUserUseCase(f.users, f.passwords, f.tokens).Execute(ctx, tt.input)
				assert.Equal(t, tt.code, authCode(t, err))
			})
		}
	})
}

func TestLoginUserUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	user := entity.NewUser("ops@example.com", "Ops", "hash", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	t.Run("valid credentials", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().FindByEmail(ctx, "ops@example.com").Return(user, nil)
		f.passwords.EXPECT().VerifyPassword("hash", "pw").Return(nil)
		f.tokens.EXPECT().GenerateTokenPair(ctx, user.ID, user.Email, true).
			Return(&adapter.TokenPair{AccessToken: "a", RefreshToken: "r"}, nil)

		got, err := NewLoginUserUseCase(f.users, f.passwords, f.tokens).
			Execute(ctx, LoginUserInput{Email: "OPS@example.com", Password: "pw", RememberMe: true})
		require.NoError(t, err)
		assert.Equal(t, "r", got.RefreshToken)
	})

	t.Run("unknown email and wrong password look the same", func(t *testing.T) {
		f := newFixture(t)
		uc := NewLoginUserUseCase(f.users, f.passwords, f.tokens)

		f.users.EXPECT().FindByEmail(ctx, "who@example.com").Return(nil, domainerror.ErrUserNotFound)
		_, err := uc.Execute(ctx, LoginUserInput{Email: "who@example.com", Password: "pw"})
		assert.Equal(t, domainerror.ErrCodeInvalidCredentials, authCode(t, err))

		f.users.EXPECT().FindByEmail(ctx, "ops@example.com").Return(user, nil)
		f.passwords.EXPECT().VerifyPassword("hash", "bad").Return(errors.New("mismatch"))
		_, err = uc.Execute(ctx, LoginUserInput{Email: "ops@example.com", Password: "bad"})
		assert.Equal(t, domainerror.ErrCodeInvalidCredentials, authCode(t, err))
	})

	t.Run("storage failure is not masked", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().FindByEmail(ctx, "ops@example.com").Return(nil, errors.New("db down"))

		_, err := NewLoginUserUseCase(f.users, f.passwords, f.tokens).Execute(ctx, LoginUserInput{Email: "ops@example.com"})
		var authErr *domainerror.AuthError
		assert.False(t, errors.As(err, &authErr))
	})
}

func TestRefreshTokenUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("rotates", func(t *testing.T) {
		f := newFixture(t)
		f.tokens.EXPECT().ValidateRefreshToken(ctx, "old").Return(&adapter.TokenClaims{UserID: userID, Email: "ops@example.com"}, nil)
		f.tokens.EXPECT().IsRefreshTokenValid(ctx, "old").Return(true, nil)
		f.tokens.EXPECT().InvalidateRefreshToken(ctx, "old").Return(nil)
		f.tokens.EXPECT().GenerateTokenPair(ctx, userID, "ops@example.com", false).
			Return(&adapter.TokenPair{AccessToken: "a2", RefreshToken: "r2"}, nil)

		got, err := NewRefreshTokenUseCase(f.tokens).Execute(ctx, RefreshTokenInput{RefreshToken: "old"})
		require.NoError(t, err)
		assert.Equal(t, "r2", got.RefreshToken)
	})

	t.Run("revoked", func(t *testing.T) {
		f := newFixture(t)
		f.tokens.EXPECT().ValidateRefreshToken(ctx, "old").Return(&adapter.TokenClaims{UserID: userID}, nil)
		f.tokens.EXPECT().IsRefreshTokenValid(ctx, "old").Return(false, nil)

		_, err := NewRefreshTokenUseCase(f.tokens).Execute(ctx, RefreshTokenInput{RefreshToken: "old"})
		assert.Equal(t, domainerror.ErrCodeInvalidToken, authCode(t, err))
	})
}

func TestLogoutUserUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.tokens.EXPECT().InvalidateRefreshToken(ctx, "r").Return(errors.New("unknown token"))

	NewLogoutUserUseCase(f.tokens).Execute(ctx, LogoutUserInput{RefreshToken: "r"})
}
