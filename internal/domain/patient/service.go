package patient

import (
	"context"
	"fmt"
)

// Service implements patient operations over a Repository. Inputs are
// validated at the routing layer before they reach the service.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns all patients ordered by creation time, newest first.
func (s *Service) List(ctx context.Context) ([]*Patient, error) {
	return s.repo.List(ctx)
}

// Get returns the patient or (nil, nil) when the id does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*Patient, error) {
	return s.repo.GetByID(ctx, id)
}

// Create inserts the patient and re-reads the row by its new id so the
// caller receives the canonical persisted form with server-assigned
// timestamps. A missing re-read is an invariant violation.
func (s *Service) Create(ctx context.Context, in *CreateInput) (*Patient, error) {
	id, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("patient %d not found after insert", id)
	}
	return p, nil
}

// Update applies the supplied fields to an existing patient. It returns
// (nil, nil) when the id does not exist, and the unchanged row without
// touching updated_at when the partial input is empty.
func (s *Service) Update(ctx context.Context, id int64, in *UpdateInput) (*Patient, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	if in.Empty() {
		return existing, nil
	}

	if err := s.repo.Update(ctx, id, in); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// Delete reports whether a patient row was removed. Dependent notes and
// summaries go with it via the store's cascade.
func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.Delete(ctx, id)
}
