package patient

import "context"

// Repository is the persistence contract for patients. GetByID returns
// (nil, nil) when no row exists; Delete reports whether a row was removed.
type Repository interface {
	List(ctx context.Context) ([]*Patient, error)
	GetByID(ctx context.Context, id int64) (*Patient, error)
	Create(ctx context.Context, in *CreateInput) (int64, error)
	Update(ctx context.Context, id int64, in *UpdateInput) error
	Delete(ctx context.Context, id int64) (bool, error)
}
