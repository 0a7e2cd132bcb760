package ports

import (
	"context"

	"github.com/jsamuelsen11/construction-stages/internal/domain/stage"
)

// StageStore defines the service port for construction-stage records.
// Implemented by the application layer; called by inbound adapters (handlers).
type StageStore interface {
	// ListAll returns every stage in primary-key order.
	ListAll(ctx context.Context) ([]stage.Stage, error)

	// GetByID returns the stage with the given ID as a slice of zero or one
	// element. A missing stage is an empty slice, not an error.
	GetByID(ctx context.Context, id int64) ([]stage.Stage, error)

	// Create validates the input, inserts one row and returns the stored stage.
	// Returns domain.ErrValidation if any supplied field is rejected.
	Create(ctx context.Context, in *stage.Input) (*stage.Stage, error)

	// Update applies a partial patch and returns the refreshed stage.
	// Returns domain.ErrValidation if any supplied field is rejected, in which
	// case nothing is written.
	// Returns domain.ErrNotFound if the stage does not exist.
	Update(ctx context.Context, id int64, patch *stage.Patch) (*stage.Stage, error)

	// SoftDelete marks the stage as DELETED. It does not report whether the
	// stage existed.
	SoftDelete(ctx context.Context, id int64) error
}
