package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/acd-annotator/acd-annotator-go/internal/constants"
	"github.com/acd-annotator/acd-annotator-go/internal/handlers"
	"github.com/acd-annotator/acd-annotator-go/internal/service"
	"github.com/acd-annotator/acd-annotator-go/pkg/annotator"
	"github.com/acd-annotator/acd-annotator-go/pkg/container"
)

// MockStatusService is a mock implementation of the ServiceInfo
type MockStatusService struct {
	mock.Mock
}

func (m *MockStatusService) Status(ctx context.Context, ann annotator.Annotator) (*service.Status, bool) {
	args := m.Called(ctx, ann)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*service.Status), args.Bool(1)
}

// stubAnnotator reports a fixed health
type stubAnnotator struct {
	annotator.Base
	healthy bool
}

func (a stubAnnotator) IsHealthy(context.Context) bool { return a.healthy }

func (stubAnnotator) Annotate(context.Context, *annotator.Request, *container.UnstructuredContainer) error {
	return nil
}

func TestStatus(t *testing.T) {
	ann := stubAnnotator{healthy: true}

	t.Run("Success", func(t *testing.T) {
		mockService := new(MockStatusService)
		handler := handlers.NewStatusHandler(mockService, ann)

		mockService.On("Status", mock.Anything, ann).Return(&service.Status{
			Version:             "2021-04-06T15:37:31Z",
			UpTime:              "0d 00:01:02",
			ServiceState:        constants.ServiceStateOK,
			HostName:            "acd-host",
			RequestCount:        7,
			MaxMemoryMb:         512,
			InUseMemoryMb:       12,
			CommitedMemoryMb:    20,
			AvailableProcessors: 4,
		}, true).Once()

		rr := httptest.NewRecorder()
		handler.Status(rr, httptest.NewRequest(http.MethodGet, "/status", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{
		  "version": "2021-04-06T15:37:31Z", "upTime": "0d 00:01:02", "serviceState": "OK",
		  "hostName": "acd-host", "requestCount": 7, "maxMemoryMb": 512, "inUseMemoryMb": 12,
		  "commitedMemoryMb": 20, "availableProcessors": 4
		}`, rr.Body.String())
		mockService.AssertExpectations(t)
	})

	t.Run("Unhealthy", func(t *testing.T) {
		mockService := new(MockStatusService)
		handler := handlers.NewStatusHandler(mockService, ann)

		mockService.On("Status", mock.Anything, ann).Return(nil, false).Once()

		rr := httptest.NewRecorder()
		handler.Status(rr, httptest.NewRequest(http.MethodGet, "/status", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"code": 500, "message": "Internal Server Error", "level": "ERROR",
		  "description": "Status check failed. See log for details."}`, rr.Body.String())
	})
}

func TestHealthCheck(t *testing.T) {
	tests := []struct {
		name       string
		healthy    bool
		wantStatus int
		wantBody   string
	}{
		{
			name:       "Healthy",
			healthy:    true,
			wantStatus: http.StatusOK,
			wantBody:   `{"serviceState": "OK"}`,
		},
		{
			name:       "Unhealthy",
			healthy:    false,
			wantStatus: http.StatusInternalServerError,
			wantBody: `{"code": 500, "message": "Internal Server Error", "level": "ERROR",
			  "description": "Health check failed. See log for details."}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := handlers.NewStatusHandler(new(MockStatusService), stubAnnotator{healthy: tt.healthy})

			rr := httptest.NewRecorder()
			handler.HealthCheck(rr, httptest.NewRequest(http.MethodGet, "/status/health_check", nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
		})
	}
}
