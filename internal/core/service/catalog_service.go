package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/trtonmoy/rhythmic-academy-server/internal/core/domain"
	"github.com/trtonmoy/rhythmic-academy-server/internal/core/ports"
)

// CatalogService implements the instrument catalog and the read-only
// instructor directory.
type CatalogService struct {
	instruments ports.InstrumentRepository
	instructors ports.InstructorRepository
	logger      zerolog.Logger
}

func NewCatalogService(instruments ports.InstrumentRepository, instructors ports.InstructorRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{instruments: instruments, instructors: instructors, logger: logger}
}

func (s *CatalogService) ListInstruments(ctx context.Context) ([]*domain.Instrument, error) {
	return s.instruments.FindAll(ctx)
}

// CreateInstrument inserts a new catalog entry in pending state. The
// submitting instructor's identity comes from the verified token, not
// the request body.
func (s *CatalogService) CreateInstrument(ctx context.Context, input ports.CreateInstrumentInput) (*domain.Instrument, error) {
	ins := &domain.Instrument{
		Name:            input.Name,
		Image:           input.Image,
		InstructorName:  input.InstructorName,
		InstructorEmail: input.InstructorEmail,
		Price:           input.Price,
		AvailableSeats:  input.AvailableSeats,
		Status:          domain.InstrumentPending,
		CreatedAt:       time.Now().UTC(),
	}

	created, err := s.instruments.Insert(ctx, ins)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("instrument", created.Name).Str("instructor", created.InstructorEmail).Msg("instrument submitted")
	return created, nil
}

// ReviewInstrument records an admin's verdict and feedback, creating
// the review fields when the document lacks them.
func (s *CatalogService) ReviewInstrument(ctx context.Context, id, status, feedback string) error {
	st, err := domain.ParseInstrumentStatus(status)
	if err != nil {
		return err
	}
	return s.instruments.UpsertReview(ctx, id, st, feedback)
}

// SetInstrumentStatus updates only the status field.
func (s *CatalogService) SetInstrumentStatus(ctx context.Context, id, status string) error {
	st, err := domain.ParseInstrumentStatus(status)
	if err != nil {
		return err
	}
	return s.instruments.UpdateStatus(ctx, id, st)
}

func (s *CatalogService) ListInstructors(ctx context.Context) ([]*domain.Instructor, error) {
	return s.instructors.FindAll(ctx)
}

func (s *CatalogService) GetInstructor(ctx context.Context, id string) (*domain.Instructor, error) {
	return s.instructors.FindByID(ctx, id)
}
