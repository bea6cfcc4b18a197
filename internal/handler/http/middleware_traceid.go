package http

import (
	"net/http"
	"regexp"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-panel/internal/utils"
)

const (
	traceIDHeader     = "X-Trace-ID"
	traceParentHeader = "traceparent"
)

var (
	// client supplied ids are echoed back and logged, so only plain tokens pass
	traceIDPattern = regexp.MustCompile(`^[A-Za-z0-9._-]{1,128}$`)

	// version-traceid-parentid-flags, W3C Trace Context
	traceParentPattern = regexp.MustCompile(`^[0-9a-f]{2}-([0-9a-f]{32})-[0-9a-f]{16}-[0-9a-f]{2}$`)
)

// withTraceID stores a request logger carrying "trace_id" in the request
// context and echoes the id in the X-Trace-ID response header.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := requestTraceID(r)

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(l.WithContext(r.Context())))
	})
}

// requestTraceID prefers X-Trace-ID, then the trace id of a traceparent
// header, and otherwise makes a new id.
func requestTraceID(r *http.Request) string {
	if id := r.Header.Get(traceIDHeader); traceIDPattern.MatchString(id) {
		return id
	}
	if m := traceParentPattern.FindStringSubmatch(r.Header.Get(traceParentHeader)); m != nil {
		return m[1]
	}
	return utils.NewID()
}
