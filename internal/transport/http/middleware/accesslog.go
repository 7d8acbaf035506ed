package middleware

import (
	"net/http"
	"time"

	zlog "github.com/rs/zerolog/log"

	appctx "github.com/NipunDemintha/sustainable-shopping-planner/internal/pkg/context"
)

type recordingWriter struct {
	http.ResponseWriter
	status int
	size   int
}

func (w *recordingWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *recordingWriter) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

// AccessLog emits one line per request, tagged with the request id set by the
// RequestID middleware. Must be mounted after it.
func AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := &recordingWriter{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(rw, r)

		zlog.Info().
			Str("request_id", appctx.RequestID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rw.status).
			Int("size", rw.size).
			Dur("took", time.Since(start)).
			Str("remote_ip", r.RemoteAddr).
			Msg("request")
	})
}
