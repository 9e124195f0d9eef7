package auth

import (
	"context"
	"log/slog"

	"github.com/rentaldesk/backend/internal/application/adapter"
)

// LogoutUserInput represents the input for operator logout.
type LogoutUserInput struct {
	RefreshToken string
}

// LogoutUserUseCase revokes the refresh token of a session.
type LogoutUserUseCase struct {
	tokenService adapter.TokenService
}

// NewLogoutUserUseCase creates a new LogoutUserUseCase instance.
func NewLogoutUserUseCase(tokenService adapter.TokenService) *LogoutUserUseCase {
	return &LogoutUserUseCase{
		tokenService: tokenService,
	}
}

// Execute performs the logout. It always succeeds: an unknown or already
// revoked token leaves nothing to revoke.
func (uc *LogoutUserUseCase) Execute(ctx context.Context, input LogoutUserInput) {
	if err := uc.tokenService.InvalidateRefreshToken(ctx, input.RefreshToken); err != nil {
		slog.Debug("Refresh token not invalidated on logout", "error", err)
	}
}
