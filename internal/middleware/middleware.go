package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"regexp"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"folio.dev/internal/logger"
)

// RequestIDHeader carries the request ID in both directions
const RequestIDHeader = "X-Request-ID"

type ctxKey struct{}

// Client IDs end up in log lines; anything outside this set is replaced
var clientRequestID = regexp.MustCompile(`^[a-zA-Z0-9\-_]{1,128}$`)

// RequestID tags the request with the client's ID when it is safe to log,
// otherwise with a fresh UUID
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if !clientRequestID.MatchString(id) {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, id)))
	})
}

// GetRequestID returns the ID set by RequestID, or "" outside it
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// Recovery turns a panicking handler into a JSON 500 in the same shape the
// handlers use for their own errors
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			log := logger.GetAPILogger()
			log.Error().
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Str("path", r.URL.Path).
				Str("request_id", GetRequestID(r.Context())).
				Msg("Handler panicked")

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": "internal server error"})
		}()
		next.ServeHTTP(w, r)
	})
}

// Logger writes one line per request. Page requests also record the
// filter they were rendered with.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseRecorder{ResponseWriter: w}
		next.ServeHTTP(rw, r)

		log := logger.GetAPILogger()
		var ev *zerolog.Event
		if rw.Status() >= http.StatusInternalServerError {
			ev = log.Warn()
		} else {
			ev = log.Info()
		}
		if filter := r.URL.Query().Get("filter"); filter != "" {
			ev = ev.Str("filter", filter)
		}
		ev.Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rw.Status()).
			Int("bytes", rw.bytes).
			Dur("duration", time.Since(start)).
			Str("request_id", GetRequestID(r.Context())).
			Msg("HTTP request")
	})
}

// responseRecorder remembers the first status written and counts the body
type responseRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

// Status returns the status sent, 200 when the handler never set one
func (w *responseRecorder) Status() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

func (w *responseRecorder) WriteHeader(code int) {
	if w.status != 0 {
		return
	}
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *responseRecorder) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}
