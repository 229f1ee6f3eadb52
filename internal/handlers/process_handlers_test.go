package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/acd-annotator/acd-annotator-go/internal/constants"
	"github.com/acd-annotator/acd-annotator-go/internal/handlers"
	"github.com/acd-annotator/acd-annotator-go/internal/utils"
	"github.com/acd-annotator/acd-annotator-go/pkg/annotator"
)

// MockProcessService is a mock implementation of the ProcessService
type MockProcessService struct {
	mock.Mock
}

func (m *MockProcessService) Process(ctx context.Context, req *annotator.Request, raw map[string]any) (map[string]any, error) {
	args := m.Called(ctx, req, raw)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

func newProcessRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/process", strings.NewReader(body))
	req.Header.Set(constants.HeaderContentType, constants.ContentTypeJSON)
	req.Header.Set("X-Custom", "kept")
	return req.WithContext(utils.WithCorrelationID(req.Context(), "corr-1"))
}

func decodeErrorBody(t *testing.T, rr *httptest.ResponseRecorder) utils.ErrorBody {
	t.Helper()
	var body utils.ErrorBody
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestProcess(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockProcessService)
		handler := handlers.NewProcessHandler(mockService)

		result := map[string]any{"unstructured": []any{map[string]any{"text": "abc", "data": map[string]any{}}}}
		mockService.On("Process", mock.Anything, mock.MatchedBy(func(req *annotator.Request) bool {
			return req.CorrelationID == "corr-1" && req.Header.Get("X-Custom") == "kept"
		}), mock.MatchedBy(func(raw map[string]any) bool {
			_, ok := raw["unstructured"]
			return ok
		})).Return(result, nil).Once()

		rr := httptest.NewRecorder()
		handler.Process(rr, newProcessRequest(`{"unstructured": [{"text": "abc"}]}`))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, constants.ContentTypeJSON, rr.Header().Get(constants.HeaderContentType))
		assert.JSONEq(t, `{"unstructured": [{"text": "abc", "data": {}}]}`, rr.Body.String())
		mockService.AssertExpectations(t)
	})

	t.Run("Service Error", func(t *testing.T) {
		mockService := new(MockProcessService)
		handler := handlers.NewProcessHandler(mockService)

		mockService.On("Process", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, annotator.NewError(http.StatusUnprocessableEntity, "document too short", nil)).Once()

		rr := httptest.NewRecorder()
		handler.Process(rr, newProcessRequest(`{}`))

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		body := decodeErrorBody(t, rr)
		assert.Equal(t, utils.ErrorBody{
			Code:          http.StatusUnprocessableEntity,
			Message:       "Unprocessable Entity",
			Level:         "ERROR",
			Description:   "document too short",
			CorrelationID: "corr-1",
		}, body)
		mockService.AssertExpectations(t)
	})

	t.Run("Unexpected Error", func(t *testing.T) {
		mockService := new(MockProcessService)
		handler := handlers.NewProcessHandler(mockService)

		mockService.On("Process", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("database down")).Once()

		rr := httptest.NewRecorder()
		handler.Process(rr, newProcessRequest(`{}`))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		body := decodeErrorBody(t, rr)
		assert.Equal(t, constants.MsgUnknownError, body.Description)
		assert.NotContains(t, rr.Body.String(), "database down")
	})

	t.Run("Serialize Error", func(t *testing.T) {
		mockService := new(MockProcessService)
		handler := handlers.NewProcessHandler(mockService)

		mockService.On("Process", mock.Anything, mock.Anything, mock.Anything).
			Return(map[string]any{"bad": math.Inf(1)}, nil).Once()

		rr := httptest.NewRecorder()
		handler.Process(rr, newProcessRequest(`{}`))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		body := decodeErrorBody(t, rr)
		assert.True(t, strings.HasPrefix(body.Description, constants.MsgSerializeFailure+": *json.UnsupportedValueError="))
	})
}

func TestProcessBadBodies(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantDesc   string
	}{
		{name: "Empty", body: "", wantStatus: http.StatusBadRequest, wantDesc: "Request body is empty"},
		{name: "Malformed", body: `{"unstructured": [`, wantStatus: http.StatusBadRequest, wantDesc: constants.MsgMalformedJSON},
		{name: "Not An Object", body: `[1, 2]`, wantStatus: http.StatusBadRequest, wantDesc: constants.MsgMalformedJSON},
		{name: "Too Large", body: `{"text": "` + strings.Repeat("a", constants.MaxRequestBodySize) + `"}`,
			wantStatus: http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockProcessService)
			handler := handlers.NewProcessHandler(mockService)

			rr := httptest.NewRecorder()
			handler.Process(rr, newProcessRequest(tt.body))

			assert.Equal(t, tt.wantStatus, rr.Code)
			body := decodeErrorBody(t, rr)
			assert.Equal(t, tt.wantStatus, body.Code)
			assert.Equal(t, "ERROR", body.Level)
			if tt.wantDesc != "" {
				assert.Equal(t, tt.wantDesc, body.Description)
			}
			mockService.AssertNotCalled(t, "Process", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}
