package summary

import "context"

// Repository is the persistence boundary for summaries. GetByID returns
// (nil, nil) when no row matches. List filters to a single patient when
// patientID is non-nil.
type Repository interface {
	List(ctx context.Context, patientID *int64) ([]*Summary, error)
	GetByID(ctx context.Context, id int64) (*Summary, error)
	Create(ctx context.Context, in *CreateInput) (int64, error)
	Update(ctx context.Context, id int64, in *UpdateInput) error
	Delete(ctx context.Context, id int64) (bool, error)
}
