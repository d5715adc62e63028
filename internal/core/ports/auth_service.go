package ports

import (
	"context"

	"github.com/Vladoochka/ProjectTask/internal/core/domain"
)

// AuthService implements login, logout, and current-identity resolution.
// Identity creation happens through the profile operations, not here.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// Logout revokes the token (by jti) until its expiry.
	Logout(ctx context.Context, tokenID string, expiresAt int64) error
	CurrentUser(ctx context.Context, userID string) (*domain.User, error)
}

// TokenStore abstracts the revocation list (Redis).
type TokenStore interface {
	Revoke(ctx context.Context, tokenID string, expiresAt int64) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
