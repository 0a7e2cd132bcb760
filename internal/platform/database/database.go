// Package database wraps a PostgreSQL connection pool with the resilience and
// observability the service applies to every statement.
//
// Statements pass through these stages in order:
//
//	Circuit Breaker → Rate Limiter → Query Timeout → OTEL Span → driver
//
// Construction:
//
//	db, err := database.Open(&cfg.Database, metrics, logger)
//	defer db.Close()
//
// Executing statements:
//
//	res, err := db.Exec(ctx, "update_stage", "UPDATE ...", args...)
//	err = db.Query(ctx, "list_stages", "SELECT ...", func(rows *sql.Rows) error {
//	    return rows.Scan(&id, &name)
//	})
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	_ "github.com/lib/pq" // registers the "postgres" driver
	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/construction-stages/internal/domain"
	"github.com/jsamuelsen11/construction-stages/internal/platform/config"
	"github.com/jsamuelsen11/construction-stages/internal/platform/telemetry"
)

const (
	driverName = "postgres"
	systemName = "postgresql"
)

// DB is an instrumented PostgreSQL handle with circuit breaker, rate limiting,
// per-statement timeouts and OpenTelemetry tracing.
type DB struct {
	db           *sql.DB
	name         string
	breaker      *gobreaker.CircuitBreaker[struct{}]
	limiter      *rate.Limiter // nil when rate limiting is disabled
	queryTimeout time.Duration
	metrics      *telemetry.Metrics
	logger       *slog.Logger
}

// Open connects to PostgreSQL using the lib/pq driver and applies the pool
// settings from cfg. sql.Open does not dial; the first statement or
// HealthCheck does.
func Open(cfg *config.DatabaseConfig, metrics *telemetry.Metrics, logger *slog.Logger) (*DB, error) {
	sqlDB, err := sql.Open(driverName, cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return New(sqlDB, cfg, metrics, logger), nil
}

// New wraps an existing *sql.DB. If metrics is nil, metric recording is
// skipped.
func New(sqlDB *sql.DB, cfg *config.DatabaseConfig, metrics *telemetry.Metrics, logger *slog.Logger) *DB {
	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        driverName,
		MaxRequests: toUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.CircuitBreaker.MaxFailures
		},
		IsSuccessful: isSuccessful,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	var limiter *rate.Limiter
	if cfg.RateLimit.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.BurstSize)
	}

	return &DB{
		db:           sqlDB,
		name:         driverName,
		breaker:      cb,
		limiter:      limiter,
		queryTimeout: cfg.QueryTimeout,
		metrics:      metrics,
		logger:       logger,
	}
}

// Exec runs a statement that returns no rows. The op names the statement in
// spans and metrics (e.g. "update_stage").
func (d *DB) Exec(ctx context.Context, op, query string, args ...any) (sql.Result, error) {
	var res sql.Result
	err := d.run(ctx, op, query, func(ctx context.Context) error {
		var err error
		res, err = d.db.ExecContext(ctx, query, args...)
		return err
	})
	return res, err
}

// Query runs a statement and calls scan once per returned row. Rows are
// consumed and closed before Query returns, inside the statement timeout.
func (d *DB) Query(ctx context.Context, op, query string, scan func(*sql.Rows) error, args ...any) error {
	return d.run(ctx, op, query, func(ctx context.Context) error {
		rows, err := d.db.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer func() { _ = rows.Close() }()

		for rows.Next() {
			if err := scan(rows); err != nil {
				return err
			}
		}
		return rows.Err()
	})
}

// SQL returns the underlying pool, for callers such as migrations that need
// the raw handle.
func (d *DB) SQL() *sql.DB {
	return d.db
}

// Close closes the underlying pool.
func (d *DB) Close() error {
	return d.db.Close()
}

// Name identifies the database in readiness results. Together with
// HealthCheck it satisfies ports.HealthChecker.
func (d *DB) Name() string {
	return d.name
}

// HealthCheck reports database availability. An open or half-open breaker
// fails without touching the network; a closed breaker pings the server.
func (d *DB) HealthCheck(ctx context.Context) error {
	state := d.breaker.State()
	switch state {
	case gobreaker.StateClosed:
		if err := d.db.PingContext(ctx); err != nil {
			return fmt.Errorf("%s: ping failed: %w", d.name, err)
		}
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", d.name)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", d.name)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", d.name, state)
	}
}

func (d *DB) run(ctx context.Context, op, query string, fn func(context.Context) error) error {
	start := time.Now()

	_, err := d.breaker.Execute(func() (struct{}, error) {
		if err := d.waitForRateLimit(ctx); err != nil {
			return struct{}{}, err
		}

		stmtCtx := ctx
		if d.queryTimeout > 0 {
			var cancel context.CancelFunc
			stmtCtx, cancel = context.WithTimeout(ctx, d.queryTimeout)
			defer cancel()
		}

		spanCtx, span := d.startSpan(stmtCtx, op, query)
		defer span.End()

		err := fn(spanCtx)
		finishSpan(span, err)

		return struct{}{}, err
	})

	d.recordMetrics(ctx, op, start, err)

	if isBreakerRejection(err) {
		return fmt.Errorf("%s %s: %w: %w", d.name, op, domain.ErrUnavailable, err)
	}
	return err
}

// waitForRateLimit blocks until the limiter admits the statement or the
// context is canceled.
func (d *DB) waitForRateLimit(ctx context.Context) error {
	if d.limiter == nil {
		return nil
	}
	return d.limiter.Wait(ctx)
}

func (d *DB) startSpan(ctx context.Context, op, query string) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer("database")

	return tracer.Start(ctx, fmt.Sprintf("%s %s", d.name, op),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", systemName),
			attribute.String("db.operation", op),
			attribute.String("db.statement", query),
		),
	)
}

func finishSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// recordMetrics records statement duration and count. It runs outside the
// breaker so rejections are counted too.
func (d *DB) recordMetrics(ctx context.Context, op string, start time.Time, err error) {
	if d.metrics == nil {
		return
	}

	result := "success"
	switch {
	case isBreakerRejection(err):
		result = "circuit_open"
	case err != nil:
		result = "error"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrDBSystem.String(systemName),
		telemetry.AttrDBOperation.String(op),
		telemetry.AttrResult.String(result),
	)

	d.metrics.DBOperationDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	d.metrics.DBOperationTotal.Add(ctx, 1, attrs)
}

// isSuccessful decides which errors count against the breaker. Caller
// cancellation and empty results say nothing about database health.
func isSuccessful(err error) bool {
	return err == nil ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, sql.ErrNoRows)
}

func isBreakerRejection(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

// toUint32 converts a non-negative int to uint32, clamping at the uint32
// maximum. Negative values become zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
