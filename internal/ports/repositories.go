package ports

import (
	"context"

	"github.com/jsamuelsen11/construction-stages/internal/domain/stage"
)

// StageRepository defines the persistence port for construction stages.
// Implemented by the postgres adapter; called by the application layer.
// Every method issues parameterized statements against a single table.
type StageRepository interface {
	// List returns all rows ordered by ID.
	List(ctx context.Context) ([]stage.Stage, error)

	// Get returns the row with the given ID, or an empty slice.
	Get(ctx context.Context, id int64) ([]stage.Stage, error)

	// Insert writes a new row and returns the ID assigned by the store.
	// The stage's ID field is ignored.
	Insert(ctx context.Context, s *stage.Stage) (int64, error)

	// Update overwrites every mutable column of the row identified by s.ID.
	Update(ctx context.Context, s *stage.Stage) error

	// SetStatus changes only the status column of the given row.
	SetStatus(ctx context.Context, id int64, status stage.Status) error
}
