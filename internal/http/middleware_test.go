package http

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	var contextLogger *slog.Logger
	handler := RequestLogger(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contextLogger = LoggerFromContext(r.Context())
		if contextLogger != nil {
			contextLogger.InfoContext(r.Context(), "handler reached")
		}
		w.WriteHeader(http.StatusNoContent)
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/bookings", nil))

	if recorder.Code != http.StatusNoContent {
		t.Fatalf("unexpected status %d", recorder.Code)
	}
	if contextLogger == nil {
		t.Fatalf("expected a request-scoped logger in the context")
	}

	output := buf.String()
	if !strings.Contains(output, `"request_id":1`) {
		t.Fatalf("expected request_id 1 in log output: %s", output)
	}
	if !strings.Contains(output, `"path":"/api/bookings"`) {
		t.Fatalf("expected request path in log output: %s", output)
	}
	if !strings.Contains(output, "request started") || !strings.Contains(output, "request completed") {
		t.Fatalf("expected start and completion entries: %s", output)
	}
	if !strings.Contains(output, "handler reached") {
		t.Fatalf("expected the context logger to carry request attributes: %s", output)
	}

	t.Run("request ids are sequential", func(t *testing.T) {
		buf.Reset()
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/bookings", nil))
		if !strings.Contains(buf.String(), `"request_id":2`) {
			t.Fatalf("expected request_id 2 in log output: %s", buf.String())
		}
	})
}
