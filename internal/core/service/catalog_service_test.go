package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/trtonmoy/rhythmic-academy-server/internal/core/domain"
	"github.com/trtonmoy/rhythmic-academy-server/internal/core/ports"
)

type stubInstrumentRepo struct {
	instruments []*domain.Instrument
	reviews     map[string]string // id -> status
}

func newStubInstrumentRepo() *stubInstrumentRepo {
	return &stubInstrumentRepo{reviews: make(map[string]string)}
}

func (r *stubInstrumentRepo) FindAll(_ context.Context) ([]*domain.Instrument, error) {
	return r.instruments, nil
}

func (r *stubInstrumentRepo) Insert(_ context.Context, ins *domain.Instrument) (*domain.Instrument, error) {
	copy := *ins
	copy.ID = "ins_1"
	r.instruments = append(r.instruments, &copy)
	return &copy, nil
}

func (r *stubInstrumentRepo) UpsertReview(_ context.Context, id string, status domain.InstrumentStatus, _ string) error {
	r.reviews[id] = string(status)
	return nil
}

func (r *stubInstrumentRepo) UpdateStatus(_ context.Context, id string, status domain.InstrumentStatus) error {
	r.reviews[id] = string(status)
	return nil
}

type stubInstructorRepo struct{}

func (stubInstructorRepo) FindAll(_ context.Context) ([]*domain.Instructor, error) {
	return []*domain.Instructor{}, nil
}

func (stubInstructorRepo) FindByID(_ context.Context, id string) (*domain.Instructor, error) {
	return nil, domain.ErrInstructorNotFound
}

func TestCatalogService_CreateInstrument_StartsPending(t *testing.T) {
	repo := newStubInstrumentRepo()
	svc := NewCatalogService(repo, stubInstructorRepo{}, zerolog.Nop())

	created, err := svc.CreateInstrument(context.Background(), ports.CreateInstrumentInput{
		Name:            "Violin Basics",
		InstructorName:  "Dana",
		InstructorEmail: "dana@example.com",
		Price:           120,
		AvailableSeats:  10,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Status != domain.InstrumentPending {
		t.Fatalf("expected pending status, got %q", created.Status)
	}
	if created.EnrolledStudents != 0 {
		t.Fatalf("new entry should have no enrolled students")
	}
	if created.InstructorEmail != "dana@example.com" {
		t.Fatalf("unexpected instructor email: %s", created.InstructorEmail)
	}
}

func TestCatalogService_ReviewInstrument_InvalidStatus(t *testing.T) {
	repo := newStubInstrumentRepo()
	svc := NewCatalogService(repo, stubInstructorRepo{}, zerolog.Nop())

	if err := svc.ReviewInstrument(context.Background(), "ins_1", "published", "nice"); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if len(repo.reviews) != 0 {
		t.Fatalf("invalid status must not reach the repository")
	}
}

func TestCatalogService_SetInstrumentStatus(t *testing.T) {
	repo := newStubInstrumentRepo()
	svc := NewCatalogService(repo, stubInstructorRepo{}, zerolog.Nop())

	if err := svc.SetInstrumentStatus(context.Background(), "ins_1", "approved"); err != nil {
		t.Fatalf("set status failed: %v", err)
	}
	if repo.reviews["ins_1"] != "approved" {
		t.Fatalf("status not written, got %q", repo.reviews["ins_1"])
	}
}
