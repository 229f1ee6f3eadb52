package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/acd-annotator/acd-annotator-go/internal/constants"
	"github.com/acd-annotator/acd-annotator-go/internal/utils"
	"github.com/acd-annotator/acd-annotator-go/pkg/annotator"
)

// ProcessHandler serves the process endpoint
type ProcessHandler struct {
	processService ProcessServiceInterface
}

// NewProcessHandler creates a new ProcessHandler
func NewProcessHandler(processService ProcessServiceInterface) *ProcessHandler {
	return &ProcessHandler{
		processService: processService,
	}
}

// Process runs the annotator over the container group in the request body
// and returns the annotated group.
func (h *ProcessHandler) Process(w http.ResponseWriter, r *http.Request) {
	raw, err := utils.DecodeJSONObject(r)
	if err != nil {
		utils.SendError(w, r, err)
		return
	}

	correlationID := utils.RequestCorrelationID(r)
	req := &annotator.Request{
		CorrelationID: correlationID,
		Header:        r.Header.Clone(),
		Logger:        utils.RequestLogger(correlationID, r.Method, r.URL.Path),
	}

	result, err := h.processService.Process(r.Context(), req, raw)
	if err != nil {
		utils.SendError(w, r, err)
		return
	}

	body, err := json.Marshal(result)
	if err != nil {
		utils.ErrorFromAppError(w, r, utils.NewWithDevInfo(utils.ErrInternalServer,
			http.StatusInternalServerError,
			fmt.Sprintf("%s: %T=%v", constants.MsgSerializeFailure, err, err), err.Error()))
		return
	}

	utils.RawJSON(w, http.StatusOK, body)
}
