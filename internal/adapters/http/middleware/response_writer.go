package middleware

import "net/http"

// statusRecorder remembers the status and body size of a response for the
// recovery, otel, and logging middleware.
type statusRecorder struct {
	http.ResponseWriter
	status  int
	bytes   int64
	started bool
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

// WriteHeader records the first status only.
func (s *statusRecorder) WriteHeader(code int) {
	if s.started {
		return
	}
	s.status = code
	s.started = true
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	s.started = true
	n, err := s.ResponseWriter.Write(b)
	s.bytes += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (s *statusRecorder) Unwrap() http.ResponseWriter {
	return s.ResponseWriter
}
