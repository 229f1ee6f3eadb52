package middleware_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"

	"github.com/acd-annotator/acd-annotator-go/internal/middleware"
	"github.com/acd-annotator/acd-annotator-go/internal/utils"
)

// captureLogs swaps the global logger for one writing to a buffer
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var logBuf bytes.Buffer
	original := log.Logger
	log.Logger = zerolog.New(&logBuf)
	t.Cleanup(func() { log.Logger = original })
	return &logBuf
}

func TestRecovery(t *testing.T) {
	const panicBody = `{"code":500,"message":"Internal Server Error","level":"ERROR","description":"Unknown error. See logs for details.","correlationId":"test-correlation-id"}`

	tests := []struct {
		name           string
		handler        http.Handler
		expectedStatus int
		expectedBody   string
		expectPanicLog bool
	}{
		{
			name: "No panic occurs",
			handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte("Success"))
			}),
			expectedStatus: http.StatusOK,
			expectedBody:   "Success",
		},
		{
			name: "Panic with error",
			handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				panic(errors.New("test error"))
			}),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   panicBody,
			expectPanicLog: true,
		},
		{
			name: "Panic with string",
			handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				panic("test panic")
			}),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   panicBody,
			expectPanicLog: true,
		},
	}

	logBuf := captureLogs(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logBuf.Reset()

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req = req.WithContext(utils.WithCorrelationID(req.Context(), "test-correlation-id"))
			rr := httptest.NewRecorder()

			middleware.Recovery()(tt.handler).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectPanicLog {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
				assert.Contains(t, logBuf.String(), "Panic recovered")
				assert.Contains(t, logBuf.String(), "test-correlation-id")
				assert.Contains(t, logBuf.String(), `"path":"/test"`)
			} else {
				assert.Equal(t, tt.expectedBody, rr.Body.String())
				assert.Empty(t, logBuf.String())
			}
		})
	}
}

func TestRecoveryRepanicsAbort(t *testing.T) {
	handler := middleware.Recovery()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}
