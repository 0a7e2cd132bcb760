package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/construction-stages/internal/adapters/http/dto"
)

// Recovery turns a handler panic into a 500 problem response and logs the
// panic value with its stack. The response is skipped when the handler had
// already started writing. http.ErrAbortHandler is re-panicked so net/http
// can abort the connection quietly.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := newStatusRecorder(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)

				if !rec.started {
					dto.WriteProblem(rec, r, http.StatusInternalServerError, "an unexpected error occurred")
				}
			}()

			next.ServeHTTP(rec, r)
		})
	}
}
