package vehicle

import "context"

// Repository is the backing store for vehicle records. List returns the full
// current snapshot in listing order; Create assigns the id.
type Repository interface {
	List(ctx context.Context) ([]Vehicle, error)
	FindByID(ctx context.Context, id int64) (*Vehicle, error)
	Create(ctx context.Context, v *Vehicle) error
	Update(ctx context.Context, v *Vehicle) error
	Delete(ctx context.Context, id int64) error

	// Engagement counters and metric tooling
	IncrementViews(ctx context.Context, id int64) error
	IncrementLeads(ctx context.Context, id int64) error
	ResetMetrics(ctx context.Context) error
}
