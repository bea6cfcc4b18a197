package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-panel/internal/logger"
)

func TestRequestTraceID(t *testing.T) {
	const parent = "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01"

	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{"client id", map[string]string{traceIDHeader: "egg-import.42"}, "egg-import.42"},
		{"client id wins over traceparent", map[string]string{traceIDHeader: "egg-import.42", traceParentHeader: parent}, "egg-import.42"},
		{"traceparent", map[string]string{traceParentHeader: parent}, "4bf92f3577b34da6a3ce929d0e0e4736"},
		{"unsafe client id falls back to traceparent", map[string]string{traceIDHeader: "a\nb", traceParentHeader: parent}, "4bf92f3577b34da6a3ce929d0e0e4736"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			assert.Equal(t, tt.want, requestTraceID(req))
		})
	}
}

func TestRequestTraceID_Generated(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
	}{
		{"no headers", nil},
		{"newline in client id", map[string]string{traceIDHeader: "bad id\nwith newline"}},
		{"client id too long", map[string]string{traceIDHeader: strings.Repeat("a", 129)}},
		{"uppercase traceparent", map[string]string{traceParentHeader: "00-4BF92F3577B34DA6A3CE929D0E0E4736-00F067AA0BA902B7-01"}},
		{"truncated traceparent", map[string]string{traceParentHeader: "00-4bf92f3577b34da6-01"}},
	}

	seen := make(map[string]bool)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			id := requestTraceID(req)
			_, err := uuid.Parse(id)
			require.NoError(t, err)
			assert.False(t, seen[id])
			seen[id] = true
		})
	}
}

func TestWithTraceID_EchoesAndLogs(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.NewLoggerTo("go-panel-server", &buf)}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("validating variables")
	})

	req := httptest.NewRequest(http.MethodPost, "/api/eggs/1/variables/validate", nil)
	req.Header.Set(traceIDHeader, "egg-import.42")
	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)

	assert.Equal(t, "egg-import.42", rr.Header().Get(traceIDHeader))
	assert.Contains(t, buf.String(), `"trace_id":"egg-import.42"`)
	assert.Contains(t, buf.String(), `"role":"go-panel-server"`)
}
