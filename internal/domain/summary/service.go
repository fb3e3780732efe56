package summary

import (
	"context"
	"fmt"
)

// Service implements summary operations over a Repository.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, patientID *int64) ([]*Summary, error) {
	return s.repo.List(ctx, patientID)
}

func (s *Service) Get(ctx context.Context, id int64) (*Summary, error) {
	return s.repo.GetByID(ctx, id)
}

// Create inserts the summary and re-reads it so the response carries
// store-assigned id and timestamps.
func (s *Service) Create(ctx context.Context, in *CreateInput) (*Summary, error) {
	id, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	sm, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sm == nil {
		return nil, fmt.Errorf("summary %d not found after insert", id)
	}
	return sm, nil
}

// Update applies a partial update. It returns (nil, nil) when the summary
// does not exist, and the unchanged row when the input supplies no fields.
func (s *Service) Update(ctx context.Context, id int64, in *UpdateInput) (*Summary, error) {
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

// Delete removes the summary, reporting whether a row was actually deleted.
func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.Delete(ctx, id)
}
