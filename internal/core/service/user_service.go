package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/trtonmoy/rhythmic-academy-server/internal/core/domain"
	"github.com/trtonmoy/rhythmic-academy-server/internal/core/ports"
)

// UserService implements registration, role administration and the
// per-request role resolution used by the access gates.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// Register creates a user record on first registration. A repeat
// registration with the same email is a no-op reporting existence.
// Two concurrent first registrations can both pass the existence check
// and both insert; accepted, the lookup key stays usable either way.
func (s *UserService) Register(ctx context.Context, name, email, photoURL string) (*ports.RegisterResult, error) {
	existing, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return &ports.RegisterResult{User: existing, AlreadyExisted: true}, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	user := &domain.User{
		Name:      name,
		Email:     email,
		PhotoURL:  photoURL,
		Role:      domain.RoleNone,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", email).Msg("user registered")
	return &ports.RegisterResult{User: created}, nil
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.FindAll(ctx)
}

// UpdateRole assigns a role to the user with the given id. Only the
// closed role names are accepted; there is no automatic promotion path.
func (s *UserService) UpdateRole(ctx context.Context, id, role string) error {
	if !domain.IsAssignable(role) {
		return domain.ErrInvalidRole
	}
	if err := s.repo.UpdateRole(ctx, id, domain.Role(role)); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", id).Str("role", role).Msg("role updated")
	return nil
}

// ResolveRole looks up the stored role for email, fresh on every call.
// A missing record or an unset role resolves to RoleNone rather than an
// error; only store failures propagate.
func (s *UserService) ResolveRole(ctx context.Context, email string) (domain.Role, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.RoleNone, nil
		}
		return domain.RoleNone, err
	}
	return user.Role, nil
}
