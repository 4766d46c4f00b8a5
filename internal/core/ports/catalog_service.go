package ports

import (
	"context"

	"github.com/trtonmoy/rhythmic-academy-server/internal/core/domain"
)

// CreateInstrumentInput carries the data an instructor submits for a
// new catalog entry. Status is always set server-side.
type CreateInstrumentInput struct {
	Name            string
	Image           string
	InstructorName  string
	InstructorEmail string
	Price           float64
	AvailableSeats  int
}

// CatalogService defines use-case operations for instruments and
// instructor profiles.
type CatalogService interface {
	ListInstruments(ctx context.Context) ([]*domain.Instrument, error)
	CreateInstrument(ctx context.Context, input CreateInstrumentInput) (*domain.Instrument, error)
	ReviewInstrument(ctx context.Context, id, status, feedback string) error
	SetInstrumentStatus(ctx context.Context, id, status string) error

	ListInstructors(ctx context.Context) ([]*domain.Instructor, error)
	GetInstructor(ctx context.Context, id string) (*domain.Instructor, error)
}
