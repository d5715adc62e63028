package ports

import (
	"context"

	"github.com/Vladoochka/ProjectTask/internal/core/domain"
)

// UserRepository defines persistence for identities. Create must surface
// domain.ErrUserExists on username/email/phone uniqueness conflicts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
