package ports

import (
	"context"

	"github.com/trtonmoy/rhythmic-academy-server/internal/core/domain"
)

// InstrumentRepository defines persistence operations for the catalog.
type InstrumentRepository interface {
	FindAll(ctx context.Context) ([]*domain.Instrument, error)
	Insert(ctx context.Context, ins *domain.Instrument) (*domain.Instrument, error)
	// UpsertReview writes status and feedback on the entry with the
	// given id, creating the document when it does not exist.
	UpsertReview(ctx context.Context, id string, status domain.InstrumentStatus, feedback string) error
	// UpdateStatus sets only the status on an existing entry.
	UpdateStatus(ctx context.Context, id string, status domain.InstrumentStatus) error
}

// InstructorRepository defines read operations for instructor profiles.
type InstructorRepository interface {
	FindAll(ctx context.Context) ([]*domain.Instructor, error)
	FindByID(ctx context.Context, id string) (*domain.Instructor, error)
}
