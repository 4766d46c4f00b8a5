package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/trtonmoy/rhythmic-academy-server/internal/core/domain"
	"github.com/trtonmoy/rhythmic-academy-server/internal/core/ports"
)

type stubAdmissionRepo struct {
	admissions []*domain.Admission
	findCalls  int
}

func (r *stubAdmissionRepo) FindByEmail(_ context.Context, email string) ([]*domain.Admission, error) {
	r.findCalls++
	out := make([]*domain.Admission, 0)
	for _, a := range r.admissions {
		if a.Email == email {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *stubAdmissionRepo) Insert(_ context.Context, a *domain.Admission) (*domain.Admission, error) {
	copy := *a
	copy.ID = "adm_1"
	r.admissions = append(r.admissions, &copy)
	return &copy, nil
}

func (r *stubAdmissionRepo) Delete(_ context.Context, id string) error {
	for i, a := range r.admissions {
		if a.ID == id {
			r.admissions = append(r.admissions[:i], r.admissions[i+1:]...)
			return nil
		}
	}
	return domain.ErrAdmissionNotFound
}

func TestAdmissionService_ListByEmail_EmptyEmail(t *testing.T) {
	repo := &stubAdmissionRepo{}
	svc := NewAdmissionService(repo, zerolog.Nop())

	out, err := svc.ListByEmail(context.Background(), "")
	if err != nil {
		t.Fatalf("empty email should not error: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty list, got %d items", len(out))
	}
	if repo.findCalls != 0 {
		t.Fatalf("empty email must not hit the store")
	}
}

func TestAdmissionService_CreateAndDelete(t *testing.T) {
	repo := &stubAdmissionRepo{}
	svc := NewAdmissionService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateAdmissionInput{
		Email:          "student@example.com",
		InstrumentID:   "ins_1",
		InstrumentName: "Violin Basics",
		Price:          120,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Date.IsZero() {
		t.Fatalf("expected date to be set")
	}

	listed, err := svc.ListByEmail(context.Background(), "student@example.com")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected 1 admission, got %d", len(listed))
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if len(repo.admissions) != 0 {
		t.Fatalf("record not deleted")
	}
}
