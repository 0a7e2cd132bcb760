package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/construction-stages/internal/adapters/http/dto"
	"github.com/jsamuelsen11/construction-stages/internal/platform/logging"
)

// Timeout bounds handler work by d. The handler gets a context with that
// deadline, so store and database calls below it are cancelled too. If the
// handler has not started a response when the deadline passes, a 504
// problem response is sent and anything the handler writes afterwards is
// dropped. A handler panic is re-raised on the request goroutine so Recovery
// above can answer it.
func Timeout(d time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			bw := &bufferedWriter{header: make(http.Header)}
			done := make(chan struct{})
			panicked := make(chan any, 1)

			go func() {
				defer func() {
					if p := recover(); p != nil {
						panicked <- p
					}
				}()
				next.ServeHTTP(bw, r.WithContext(ctx))
				close(done)
			}()

			select {
			case p := <-panicked:
				panic(p)
			case <-done:
				bw.copyTo(w)
			case <-ctx.Done():
				if bw.abandon() {
					logging.FromContext(ctx).WarnContext(ctx, "request deadline exceeded",
						slog.Duration("timeout", d),
						slog.String("path", r.URL.Path),
					)
					dto.WriteProblem(w, r, http.StatusGatewayTimeout, "request deadline exceeded")
					return
				}
				// The handler already committed a status; let it finish.
				select {
				case p := <-panicked:
					panic(p)
				case <-done:
				}
				bw.copyTo(w)
			}
		})
	}
}

// bufferedWriter holds the handler's response until Timeout decides which
// side owns the real writer.
type bufferedWriter struct {
	mu        sync.Mutex
	header    http.Header
	body      bytes.Buffer
	status    int
	abandoned bool
}

func (b *bufferedWriter) Header() http.Header {
	return b.header
}

func (b *bufferedWriter) WriteHeader(code int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.status == 0 {
		b.status = code
	}
}

func (b *bufferedWriter) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.abandoned {
		return 0, http.ErrHandlerTimeout
	}
	if b.status == 0 {
		b.status = http.StatusOK
	}
	return b.body.Write(p)
}

// abandon marks the buffer dead unless a status was already set. It reports
// whether the timeout path now owns the response.
func (b *bufferedWriter) abandon() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.status != 0 {
		return false
	}
	b.abandoned = true
	return true
}

func (b *bufferedWriter) copyTo(w http.ResponseWriter) {
	b.mu.Lock()
	defer b.mu.Unlock()
	maps.Copy(w.Header(), b.header)
	if b.status != 0 {
		w.WriteHeader(b.status)
	}
	if b.body.Len() > 0 {
		_, _ = w.Write(b.body.Bytes())
	}
}
