// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/construction-stages/internal/domain"
	"github.com/jsamuelsen11/construction-stages/internal/domain/stage"
	"github.com/jsamuelsen11/construction-stages/internal/platform/logging"
	"github.com/jsamuelsen11/construction-stages/internal/platform/telemetry"
	"github.com/jsamuelsen11/construction-stages/internal/ports"
)

// Compile-time check that StageStore implements ports.StageStore.
var _ ports.StageStore = (*StageStore)(nil)

// StageStore implements ports.StageStore on top of a StageRepository. It runs
// the domain validation gate before every write and re-reads rows after
// writing so callers always see what the database holds.
type StageStore struct {
	repo    ports.StageRepository
	logger  *slog.Logger
	metrics *telemetry.Metrics
}

// Option configures a StageStore.
type Option func(*StageStore)

// WithMetrics counts rejected fields on m. A nil m disables counting.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(s *StageStore) { s.metrics = m }
}

// NewStageStore creates a StageStore. A nil logger discards output.
func NewStageStore(repo ports.StageRepository, logger *slog.Logger, opts ...Option) *StageStore {
	if logger == nil {
		logger = logging.Discard()
	}
	s := &StageStore{
		repo:   repo,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListAll returns every stage in primary-key order.
func (s *StageStore) ListAll(ctx context.Context) ([]stage.Stage, error) {
	s.logger.InfoContext(ctx, "listing stages")

	stages, err := s.repo.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list stages",
			slog.String("operation", "ListAll"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return stages, nil
}

// GetByID returns zero or one stage.
func (s *StageStore) GetByID(ctx context.Context, id int64) ([]stage.Stage, error) {
	s.logger.InfoContext(ctx, "fetching stage", slog.Int64("id", id))

	stages, err := s.repo.Get(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch stage",
			slog.String("operation", "GetByID"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return stages, nil
}

// Create validates and inserts a new stage, then returns it re-read by the
// newly assigned ID.
func (s *StageStore) Create(ctx context.Context, in *stage.Input) (*stage.Stage, error) {
	s.logger.InfoContext(ctx, "creating stage", slog.String("name", in.Name))

	st, err := in.Build()
	if err != nil {
		s.logger.InfoContext(ctx, "stage rejected",
			slog.String("operation", "Create"),
			slog.Any("error", err),
		)
		s.countRejections(ctx, "Create", err)
		return nil, err
	}

	id, err := s.repo.Insert(ctx, &st)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to insert stage",
			slog.String("operation", "Create"),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("inserting stage: %w", err)
	}

	return s.reload(ctx, "Create", id)
}

// Update applies a partial patch. The stored row is read first; absent patch
// fields keep their stored values. When any supplied field is rejected the
// *domain.ValidationError is returned and nothing is written.
func (s *StageStore) Update(ctx context.Context, id int64, patch *stage.Patch) (*stage.Stage, error) {
	s.logger.InfoContext(ctx, "updating stage", slog.Int64("id", id))

	current, err := s.repo.Get(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to read stage before update",
			slog.String("operation", "Update"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("reading stage: %w", err)
	}
	if len(current) == 0 {
		return nil, fmt.Errorf("stage %d: %w", id, domain.ErrNotFound)
	}

	next, err := patch.Apply(current[0])
	if err != nil {
		s.logger.InfoContext(ctx, "stage patch rejected",
			slog.String("operation", "Update"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		s.countRejections(ctx, "Update", err)
		return nil, err
	}

	if err := s.repo.Update(ctx, &next); err != nil {
		s.logger.ErrorContext(ctx, "failed to update stage",
			slog.String("operation", "Update"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("updating stage: %w", err)
	}

	return s.reload(ctx, "Update", id)
}

// SoftDelete marks the stage as DELETED without checking that it exists.
func (s *StageStore) SoftDelete(ctx context.Context, id int64) error {
	s.logger.InfoContext(ctx, "deleting stage", slog.Int64("id", id))

	if err := s.repo.SetStatus(ctx, id, stage.StatusDeleted); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete stage",
			slog.String("operation", "SoftDelete"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return fmt.Errorf("deleting stage: %w", err)
	}

	return nil
}

// reload reads back a row that was just written.
func (s *StageStore) reload(ctx context.Context, op string, id int64) (*stage.Stage, error) {
	stages, err := s.repo.Get(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to re-read stage",
			slog.String("operation", op),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("re-reading stage: %w", err)
	}
	if len(stages) == 0 {
		return nil, fmt.Errorf("stage %d missing after write: %w", id, domain.ErrNotFound)
	}
	return &stages[0], nil
}

func (s *StageStore) countRejections(ctx context.Context, op string, err error) {
	var verr *domain.ValidationError
	if s.metrics == nil || !errors.As(err, &verr) {
		return
	}
	for _, f := range verr.Fields {
		s.metrics.StageRejections.Add(ctx, 1, metric.WithAttributes(
			telemetry.AttrStageOp.String(op),
			telemetry.AttrStageField.String(f.Field),
		))
	}
}
