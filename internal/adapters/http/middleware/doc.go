// Package middleware provides the inbound HTTP pipeline wrapped around the
// construction-stage routes. Stack returns the pipeline in order:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Timeout → Handler
package middleware
