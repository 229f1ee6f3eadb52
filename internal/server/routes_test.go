package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acd-annotator/acd-annotator-go/internal/constants"
)

func serve(t *testing.T, h http.Handler, method, path, contentType, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set(constants.HeaderContentType, contentType)
	}
	req.Header.Set(constants.HeaderCorrelationID, "corr-42")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestRoutes(t *testing.T) {
	base := constants.DefaultBaseURL

	tests := []struct {
		name        string
		annotator   *markingAnnotator
		method      string
		path        string
		contentType string
		body        string
		wantStatus  int
		wantBody    string
	}{
		{
			name:        "process",
			annotator:   &markingAnnotator{},
			method:      http.MethodPost,
			path:        base + constants.ProcessPath,
			contentType: "application/json; charset=utf-8",
			body:        `{"unstructured": [{"text": "😀 abc", "data": {"concepts": [{"begin": 3, "end": 6}]}}]}`,
			wantStatus:  http.StatusOK,
			wantBody:    `{"unstructured": [{"text": "😀 abc", "data": {"seenBy": "corr-42", "concepts": [{"begin": 3, "end": 6}]}}]}`,
		},
		{
			name:        "process invalid input",
			annotator:   &markingAnnotator{},
			method:      http.MethodPost,
			path:        base + constants.ProcessPath,
			contentType: constants.ContentTypeJSON,
			body:        `{"unstructured": [{"text": "abc", "data": {"concepts": [{"begin": 2, "end": 1}]}}]}`,
			wantStatus:  http.StatusBadRequest,
			wantBody: `{"code": 400, "message": "Bad Request", "level": "ERROR",
			  "description": "Input container failed validation", "correlationId": "corr-42"}`,
		},
		{
			name:        "process wrong content type",
			annotator:   &markingAnnotator{},
			method:      http.MethodPost,
			path:        base + constants.ProcessPath,
			contentType: "text/plain",
			body:        `{}`,
			wantStatus:  http.StatusUnsupportedMediaType,
			wantBody: `{"code": 415, "message": "Unsupported Media Type", "level": "ERROR",
			  "description": "Unsupported Media Type", "correlationId": "corr-42"}`,
		},
		{
			name:        "process annotator panic",
			annotator:   &markingAnnotator{panics: true},
			method:      http.MethodPost,
			path:        base + constants.ProcessPath,
			contentType: constants.ContentTypeJSON,
			body:        `{"unstructured": [{"text": "abc"}]}`,
			wantStatus:  http.StatusInternalServerError,
		},
		{
			name:       "health check",
			annotator:  &markingAnnotator{},
			method:     http.MethodGet,
			path:       base + constants.HealthCheckPath,
			wantStatus: http.StatusOK,
			wantBody:   `{"serviceState": "OK"}`,
		},
		{
			name:       "health check unhealthy",
			annotator:  &markingAnnotator{unhealthy: true},
			method:     http.MethodGet,
			path:       base + constants.HealthCheckPath,
			wantStatus: http.StatusInternalServerError,
			wantBody: `{"code": 500, "message": "Internal Server Error", "level": "ERROR",
			  "description": "Health check failed. See log for details.", "correlationId": "corr-42"}`,
		},
		{
			name:       "status unhealthy",
			annotator:  &markingAnnotator{unhealthy: true},
			method:     http.MethodGet,
			path:       base + constants.StatusPath,
			wantStatus: http.StatusInternalServerError,
			wantBody: `{"code": 500, "message": "Internal Server Error", "level": "ERROR",
			  "description": "Status check failed. See log for details.", "correlationId": "corr-42"}`,
		},
		{
			name:       "unknown path",
			annotator:  &markingAnnotator{},
			method:     http.MethodGet,
			path:       "/process",
			wantStatus: http.StatusNotFound,
			wantBody: `{"code": 404, "message": "Not Found", "level": "ERROR",
			  "description": "No route for /process", "correlationId": "corr-42"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, base, tt.annotator)

			rr := serve(t, s.GetRouter(), tt.method, tt.path, tt.contentType, tt.body)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, "corr-42", rr.Header().Get(constants.HeaderCorrelationID))
			assert.Equal(t, constants.ContentTypeOptionsNoSniff, rr.Header().Get(constants.HeaderXContentTypeOptions))
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rr.Body.String())
			}
			assert.Equal(t, int64(1), s.ServiceInfo().RequestCount())
		})
	}
}

func TestStatusRoute(t *testing.T) {
	s := newTestServer(t, constants.DefaultBaseURL, &markingAnnotator{})
	router := s.GetRouter()

	serve(t, router, http.MethodGet, constants.DefaultBaseURL+constants.HealthCheckPath, "", "")
	rr := serve(t, router, http.MethodGet, constants.DefaultBaseURL+constants.StatusPath, "", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var status map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &status))
	assert.Equal(t, "2021-04-06T15:37:31Z", status["version"])
	assert.Equal(t, "OK", status["serviceState"])
	// The status request itself is counted
	assert.Equal(t, float64(2), status["requestCount"])
	assert.Regexp(t, `^\d+d \d{2}:\d{2}:\d{2}$`, status["upTime"])
}

func TestRootBaseURL(t *testing.T) {
	s := newTestServer(t, "/", &markingAnnotator{})
	router := s.GetRouter()

	rr := serve(t, router, http.MethodGet, constants.HealthCheckPath, "", "")
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = serve(t, router, http.MethodGet, constants.ProcessPath, "", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.JSONEq(t, `{"code": 405, "message": "Method Not Allowed", "level": "ERROR",
	  "description": "GET is not supported for /process", "correlationId": "corr-42"}`, rr.Body.String())
}

func TestRoutesExist(t *testing.T) {
	s := newTestServer(t, constants.DefaultBaseURL, &markingAnnotator{})

	var routes []string
	err := chi.Walk(s.GetRouter(), func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		routes = append(routes, method+" "+route)
		return nil
	})
	require.NoError(t, err)

	base := constants.DefaultBaseURL
	assert.ElementsMatch(t, []string{
		"POST " + base + constants.ProcessPath,
		"GET " + base + constants.StatusPath,
		"GET " + base + constants.HealthCheckPath,
	}, routes)
}
