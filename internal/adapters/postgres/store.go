// Package postgres implements ports.StageRepository on PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jsamuelsen11/construction-stages/internal/domain/stage"
	"github.com/jsamuelsen11/construction-stages/internal/platform/database"
	"github.com/jsamuelsen11/construction-stages/internal/ports"
)

var _ ports.StageRepository = (*StageRepository)(nil)

const selectColumns = `id, name, start_date, end_date, duration, duration_unit, color, external_id, status`

const (
	listStagesSQL = `SELECT ` + selectColumns + ` FROM construction_stages ORDER BY id`

	getStageSQL = `SELECT ` + selectColumns + ` FROM construction_stages WHERE id = $1`

	insertStageSQL = `INSERT INTO construction_stages
		(name, start_date, end_date, duration, duration_unit, color, external_id, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	updateStageSQL = `UPDATE construction_stages SET
		name = $1, start_date = $2, end_date = $3, duration = $4,
		duration_unit = $5, color = $6, external_id = $7, status = $8
		WHERE id = $9`

	setStatusSQL = `UPDATE construction_stages SET status = $1 WHERE id = $2`
)

// StageRepository reads and writes the construction_stages table.
type StageRepository struct {
	db *database.DB
}

// NewStageRepository creates a StageRepository on top of db.
func NewStageRepository(db *database.DB) *StageRepository {
	return &StageRepository{db: db}
}

// List returns every stage ordered by id, including DELETED ones.
func (r *StageRepository) List(ctx context.Context) ([]stage.Stage, error) {
	stages := []stage.Stage{}
	err := r.db.Query(ctx, "list_stages", listStagesSQL, func(rows *sql.Rows) error {
		s, err := scanStage(rows)
		if err != nil {
			return err
		}
		stages = append(stages, s)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing stages: %w", err)
	}
	return stages, nil
}

// Get returns the stage with id as a zero- or one-element slice.
func (r *StageRepository) Get(ctx context.Context, id int64) ([]stage.Stage, error) {
	stages := []stage.Stage{}
	err := r.db.Query(ctx, "get_stage", getStageSQL, func(rows *sql.Rows) error {
		s, err := scanStage(rows)
		if err != nil {
			return err
		}
		stages = append(stages, s)
		return nil
	}, id)
	if err != nil {
		return nil, fmt.Errorf("getting stage %d: %w", id, err)
	}
	return stages, nil
}

// Insert stores s and returns the id Postgres assigned to it.
func (r *StageRepository) Insert(ctx context.Context, s *stage.Stage) (int64, error) {
	var id int64
	err := r.db.Query(ctx, "insert_stage", insertStageSQL, func(rows *sql.Rows) error {
		return rows.Scan(&id)
	}, stageArgs(s)...)
	if err != nil {
		return 0, fmt.Errorf("inserting stage: %w", err)
	}
	if id == 0 {
		return 0, fmt.Errorf("inserting stage: %w", sql.ErrNoRows)
	}
	return id, nil
}

// Update overwrites every column of the row with id s.ID.
func (r *StageRepository) Update(ctx context.Context, s *stage.Stage) error {
	args := append(stageArgs(s), s.ID)
	if _, err := r.db.Exec(ctx, "update_stage", updateStageSQL, args...); err != nil {
		return fmt.Errorf("updating stage %d: %w", s.ID, err)
	}
	return nil
}

// SetStatus does not check that the row exists.
func (r *StageRepository) SetStatus(ctx context.Context, id int64, status stage.Status) error {
	if _, err := r.db.Exec(ctx, "set_stage_status", setStatusSQL, status.String(), id); err != nil {
		return fmt.Errorf("setting status of stage %d: %w", id, err)
	}
	return nil
}

// stageArgs returns the mutable columns in insert order.
func stageArgs(s *stage.Stage) []any {
	return []any{
		s.Name,
		nullTime(s.StartDate),
		nullTime(s.EndDate),
		nullInt64(s.Duration),
		s.DurationUnit.String(),
		nullString(s.Color),
		nullString(s.ExternalID),
		s.Status.String(),
	}
}

func scanStage(rows *sql.Rows) (stage.Stage, error) {
	var (
		s          stage.Stage
		startDate  sql.NullTime
		endDate    sql.NullTime
		duration   sql.NullInt64
		unit       string
		color      sql.NullString
		externalID sql.NullString
		status     string
	)
	if err := rows.Scan(&s.ID, &s.Name, &startDate, &endDate, &duration, &unit, &color, &externalID, &status); err != nil {
		return stage.Stage{}, fmt.Errorf("scanning stage: %w", err)
	}

	s.StartDate = timePtr(startDate)
	s.EndDate = timePtr(endDate)
	if duration.Valid {
		s.Duration = &duration.Int64
	}
	s.DurationUnit = stage.ValidUnit(unit)
	if color.Valid {
		s.Color = &color.String
	}
	if externalID.Valid {
		s.ExternalID = &externalID.String
	}
	s.Status = stage.ValidStatus(status)

	return s, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func nullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	u := t.Time.UTC()
	return &u
}
