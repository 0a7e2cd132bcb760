package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/construction-stages/internal/platform/telemetry"
)

// Middleware wraps an http.Handler.
type Middleware = func(http.Handler) http.Handler

// StackConfig holds what the default pipeline needs. Metrics may be nil when
// telemetry is disabled.
type StackConfig struct {
	Logger         *slog.Logger
	Metrics        *telemetry.Metrics
	RequestTimeout time.Duration
}

// Stack returns the service pipeline, outermost first. Recovery is outermost
// so that panics anywhere below still produce a problem response, and Timeout
// is innermost so the deadline covers only handler work.
func Stack(cfg StackConfig) []Middleware {
	return []Middleware{
		Recovery(cfg.Logger),
		RequestID(),
		CorrelationID(),
		OpenTelemetry(cfg.Metrics),
		Logging(cfg.Logger),
		Timeout(cfg.RequestTimeout),
	}
}

// Chain folds mws into one Middleware; mws[0] sees the request first.
func Chain(mws ...Middleware) Middleware {
	return func(h http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			h = mws[i](h)
		}
		return h
	}
}
