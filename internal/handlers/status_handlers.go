package handlers

import (
	"net/http"

	"github.com/acd-annotator/acd-annotator-go/internal/constants"
	"github.com/acd-annotator/acd-annotator-go/internal/service"
	"github.com/acd-annotator/acd-annotator-go/internal/utils"
	"github.com/acd-annotator/acd-annotator-go/pkg/annotator"
)

// StatusHandler serves the status and health check endpoints
type StatusHandler struct {
	statusService StatusServiceInterface
	annotator     annotator.Annotator
}

// NewStatusHandler creates a new StatusHandler
func NewStatusHandler(statusService StatusServiceInterface, ann annotator.Annotator) *StatusHandler {
	return &StatusHandler{
		statusService: statusService,
		annotator:     ann,
	}
}

// Status returns the service status document
func (h *StatusHandler) Status(w http.ResponseWriter, r *http.Request) {
	status, ok := h.statusService.Status(r.Context(), h.annotator)
	if !ok {
		utils.ErrorFromAppError(w, r, utils.NewUnhealthyError(constants.MsgStatusFailed))
		return
	}

	utils.JSON(w, http.StatusOK, status)
}

// HealthCheck reports whether the annotator is healthy
func (h *StatusHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if !service.CheckHealth(r.Context(), h.annotator) {
		utils.ErrorFromAppError(w, r, utils.NewUnhealthyError(constants.MsgHealthFailed))
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{
		"serviceState": constants.ServiceStateOK,
	})
}
