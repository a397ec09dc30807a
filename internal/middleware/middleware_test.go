package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecovery(t *testing.T) {
	h := Recovery(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	tests := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{name: "generated when absent", header: ""},
		{name: "client id kept", header: "abc-123_x", wantSame: true},
		{name: "unsafe id replaced", header: "bad id\n", wantSame: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("X-Request-ID", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			got := rec.Header().Get("X-Request-ID")
			assert.NotEmpty(t, got)
			assert.Equal(t, got, seen)
			if tt.wantSame {
				assert.Equal(t, tt.header, got)
			} else {
				assert.NotEqual(t, tt.header, got)
			}
		})
	}
}

func TestLoggerRecordsStatus(t *testing.T) {
	h := Logger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)

	assert.Empty(t, GetRequestID(httptest.NewRequest(http.MethodGet, "/", nil).Context()))
}

func TestResponseRecorder(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseRecorder{ResponseWriter: rec}
	assert.Equal(t, http.StatusOK, rw.Status(), "nothing written yet")

	rw.Write([]byte("<html>"))
	rw.Write([]byte("</html>"))
	rw.WriteHeader(http.StatusNotFound)

	assert.Equal(t, http.StatusOK, rw.Status())
	assert.Equal(t, 13, rw.bytes)
	assert.Equal(t, "<html></html>", rec.Body.String())
}
