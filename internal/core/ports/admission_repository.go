package ports

import (
	"context"

	"github.com/trtonmoy/rhythmic-academy-server/internal/core/domain"
)

// AdmissionRepository defines persistence operations for admissions.
type AdmissionRepository interface {
	FindByEmail(ctx context.Context, email string) ([]*domain.Admission, error)
	Insert(ctx context.Context, a *domain.Admission) (*domain.Admission, error)
	Delete(ctx context.Context, id string) error
}

// CreateAdmissionInput carries the enrollment data submitted by a student.
type CreateAdmissionInput struct {
	Email          string
	InstrumentID   string
	InstrumentName string
	InstructorName string
	Price          float64
}

// AdmissionService defines use-case operations for enrollment records.
type AdmissionService interface {
	ListByEmail(ctx context.Context, email string) ([]*domain.Admission, error)
	Create(ctx context.Context, input CreateAdmissionInput) (*domain.Admission, error)
	Delete(ctx context.Context, id string) error
}
