package ports

import (
	"context"

	"github.com/trtonmoy/rhythmic-academy-server/internal/core/domain"
)

// RoleResolver derives the caller's role from the stored user record.
// Implementations must hit the store on every call: role changes take
// effect immediately without re-issuing tokens, so no caching.
type RoleResolver interface {
	// ResolveRole returns RoleNone when no record exists or the record
	// has no role set; a missing user is not an error here.
	ResolveRole(ctx context.Context, email string) (domain.Role, error)
}

// RegisterResult reports whether registration created a record or found
// an existing one; a repeat registration is a no-op, not an error.
type RegisterResult struct {
	User           *domain.User
	AlreadyExisted bool
}

// UserService defines use-case operations on user records.
type UserService interface {
	RoleResolver

	Register(ctx context.Context, name, email, photoURL string) (*RegisterResult, error)
	List(ctx context.Context) ([]*domain.User, error)
	// UpdateRole assigns a role to the user with the given id. Unknown
	// role names are rejected with domain.ErrInvalidRole.
	UpdateRole(ctx context.Context, id, role string) error
}
