package ports

import (
	"context"

	"github.com/trtonmoy/rhythmic-academy-server/internal/core/domain"
)

// UserRepository defines persistence operations for user records.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	// UpdateRole sets the role on the record with the given id.
	UpdateRole(ctx context.Context, id string, role domain.Role) error
}
