package postgres

import (
	"context"
	"errors"
	"io/fs"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/jsamuelsen11/construction-stages/internal/domain/stage"
	"github.com/jsamuelsen11/construction-stages/internal/platform/config"
	"github.com/jsamuelsen11/construction-stages/internal/platform/database"
	"github.com/jsamuelsen11/construction-stages/internal/platform/logging"
)

var stageColumns = []string{
	"id", "name", "start_date", "end_date", "duration", "duration_unit", "color", "external_id", "status",
}

func newMockStore(t *testing.T) (*StageRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	cfg := &config.DatabaseConfig{
		QueryTimeout:   time.Second,
		CircuitBreaker: config.CircuitBreakerConfig{MaxFailures: 5, Timeout: time.Minute},
	}
	db := database.New(sqlDB, cfg, nil, logging.Discard())
	t.Cleanup(func() { _ = db.Close() })

	return NewStageRepository(db), mock
}

func ptr[T any](v T) *T { return &v }

func TestList_Success(t *testing.T) {
	store, mock := newMockStore(t)
	ctx := context.Background()

	start := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 3, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT .* FROM construction_stages ORDER BY id`).
		WillReturnRows(sqlmock.NewRows(stageColumns).
			AddRow(int64(1), "Foundations", start, end, int64(2), "DAYS", "#FF0000", "EXT-1", "NEW").
			AddRow(int64(2), "Framing", nil, nil, nil, "WEEKS", nil, nil, "PLANNED"))

	stages, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(stages) != 2 {
		t.Fatalf("got %d stages, want 2", len(stages))
	}

	first := stages[0]
	if first.ID != 1 || first.Name != "Foundations" {
		t.Errorf("first stage = %d %q, want 1 Foundations", first.ID, first.Name)
	}
	if first.StartDate == nil || !first.StartDate.Equal(start) {
		t.Errorf("StartDate = %v, want %v", first.StartDate, start)
	}
	if first.Duration == nil || *first.Duration != 2 {
		t.Errorf("Duration = %v, want 2", first.Duration)
	}
	if first.Color == nil || *first.Color != "#FF0000" {
		t.Errorf("Color = %v, want #FF0000", first.Color)
	}

	second := stages[1]
	if second.StartDate != nil || second.EndDate != nil || second.Duration != nil {
		t.Errorf("second stage has non-nil dates or duration: %+v", second)
	}
	if second.Color != nil || second.ExternalID != nil {
		t.Errorf("second stage has non-nil color or externalId: %+v", second)
	}
	if second.DurationUnit != stage.UnitWeeks || second.Status != stage.StatusPlanned {
		t.Errorf("second stage unit/status = %s/%s, want WEEKS/PLANNED", second.DurationUnit, second.Status)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestList_Empty(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT .* FROM construction_stages`).
		WillReturnRows(sqlmock.NewRows(stageColumns))

	stages, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if stages == nil || len(stages) != 0 {
		t.Errorf("got %v, want empty non-nil slice", stages)
	}
}

func TestGet_NotFoundIsEmpty(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT .* FROM construction_stages WHERE id = \$1`).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(stageColumns))

	stages, err := store.Get(context.Background(), 99)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if len(stages) != 0 {
		t.Errorf("got %d stages, want 0", len(stages))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestGet_DatabaseError(t *testing.T) {
	store, mock := newMockStore(t)

	dbErr := errors.New("connection reset")
	mock.ExpectQuery(`SELECT .* FROM construction_stages WHERE id`).
		WithArgs(int64(1)).
		WillReturnError(dbErr)

	_, err := store.Get(context.Background(), 1)
	if !errors.Is(err, dbErr) {
		t.Errorf("Get error = %v, want wrapped %v", err, dbErr)
	}
}

func TestInsert_Success(t *testing.T) {
	store, mock := newMockStore(t)

	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	s := &stage.Stage{
		Name:         "Roofing",
		StartDate:    &start,
		DurationUnit: stage.UnitDays,
		Color:        ptr("#00ff00"),
		Status:       stage.StatusNew,
	}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO construction_stages`)).
		WithArgs("Roofing", start, nil, nil, "DAYS", "#00ff00", nil, "NEW").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

	id, err := store.Insert(context.Background(), s)
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if id != 42 {
		t.Errorf("got id %d, want 42", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestInsert_NoReturnedID(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`INSERT INTO construction_stages`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	if _, err := store.Insert(context.Background(), &stage.Stage{Name: "x"}); err == nil {
		t.Error("expected error, got nil")
	}
}

func TestUpdate_Success(t *testing.T) {
	store, mock := newMockStore(t)

	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(72 * time.Hour)
	s := &stage.Stage{
		ID:           7,
		Name:         "Roofing",
		StartDate:    &start,
		EndDate:      &end,
		Duration:     ptr(int64(3)),
		DurationUnit: stage.UnitDays,
		ExternalID:   ptr("EXT-7"),
		Status:       stage.StatusPlanned,
	}

	mock.ExpectExec(`UPDATE construction_stages SET`).
		WithArgs("Roofing", start, end, int64(3), "DAYS", nil, "EXT-7", "PLANNED", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := store.Update(context.Background(), s); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestSetStatus_Success(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE construction_stages SET status = $1 WHERE id = $2`)).
		WithArgs("DELETED", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := store.SetStatus(context.Background(), 3, stage.StatusDeleted); err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestSetStatus_DatabaseError(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec(`UPDATE construction_stages SET status`).
		WillReturnError(errors.New("read-only transaction"))

	if err := store.SetStatus(context.Background(), 3, stage.StatusDeleted); err == nil {
		t.Error("expected error, got nil")
	}
}

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := fs.ReadDir(migrationFS, "migrations")
	if err != nil {
		t.Fatalf("reading embedded migrations: %v", err)
	}

	var up, down int
	for _, e := range entries {
		switch {
		case regexp.MustCompile(`\.up\.sql$`).MatchString(e.Name()):
			up++
		case regexp.MustCompile(`\.down\.sql$`).MatchString(e.Name()):
			down++
		}
	}
	if up == 0 || up != down {
		t.Errorf("got %d up and %d down migrations, want a matching non-zero count", up, down)
	}
}
