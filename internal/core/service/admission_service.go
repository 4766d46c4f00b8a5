package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/trtonmoy/rhythmic-academy-server/internal/core/domain"
	"github.com/trtonmoy/rhythmic-academy-server/internal/core/ports"
)

// AdmissionService implements enrollment record operations. Every call
// maps to a single store operation; no transactions.
type AdmissionService struct {
	repo   ports.AdmissionRepository
	logger zerolog.Logger
}

func NewAdmissionService(repo ports.AdmissionRepository, logger zerolog.Logger) *AdmissionService {
	return &AdmissionService{repo: repo, logger: logger}
}

// ListByEmail returns the admissions for a student. An empty email
// yields an empty list, never an error.
func (s *AdmissionService) ListByEmail(ctx context.Context, email string) ([]*domain.Admission, error) {
	if email == "" {
		return []*domain.Admission{}, nil
	}
	return s.repo.FindByEmail(ctx, email)
}

func (s *AdmissionService) Create(ctx context.Context, input ports.CreateAdmissionInput) (*domain.Admission, error) {
	admission := &domain.Admission{
		Email:          input.Email,
		InstrumentID:   input.InstrumentID,
		InstrumentName: input.InstrumentName,
		InstructorName: input.InstructorName,
		Price:          input.Price,
		Date:           time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, admission)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", created.Email).Str("instrument", created.InstrumentName).Msg("admission created")
	return created, nil
}

func (s *AdmissionService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
