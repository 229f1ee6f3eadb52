// Package utils provides utility functions and helpers for the application.
// This file writes HTTP responses in the shapes ACD expects.
//
// Successful responses carry the payload as-is: the processed container group
// or the status document. Failures use the ACD error body:
//
//	{"code":400,"message":"Bad Request","level":"ERROR",
//	 "description":"Input container failed validation","correlationId":"..."}
package utils

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/acd-annotator/acd-annotator-go/internal/constants"
)

// ErrorBody is the JSON body of every ACD error response.
type ErrorBody struct {
	Code          int    `json:"code"`                    // The HTTP status code
	Message       string `json:"message"`                 // The HTTP status text
	Level         string `json:"level"`                   // Always ERROR
	Description   string `json:"description"`             // What went wrong, without document content
	CorrelationID string `json:"correlationId,omitempty"` // The request correlation id
}

// JSON sends data as a JSON response with the given status code.
//
// Parameters:
//   - w: The HTTP response writer
//   - statusCode: The HTTP status code
//   - data: The value to encode
func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal JSON response")
		RawJSON(w, http.StatusInternalServerError, fallbackErrorBody())
		return
	}
	RawJSON(w, statusCode, jsonData)
}

// RawJSON sends pre-encoded JSON with the given status code.
//
// Parameters:
//   - w: The HTTP response writer
//   - statusCode: The HTTP status code
//   - body: The encoded JSON document
func RawJSON(w http.ResponseWriter, statusCode int, body []byte) {
	w.Header().Set(constants.HeaderContentType, constants.ContentTypeJSON)
	w.WriteHeader(statusCode)

	if _, err := w.Write(body); err != nil {
		// Log write errors but don't try to recover
		log.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// Error sends an ACD error response.
//
// Parameters:
//   - w: The HTTP response writer
//   - r: The request being answered; its correlation id is echoed back
//   - statusCode: The HTTP status code
//   - description: A description that must not contain document content
func Error(w http.ResponseWriter, r *http.Request, statusCode int, description string) {
	JSON(w, statusCode, ErrorBody{
		Code:          statusCode,
		Message:       StatusMessage(statusCode),
		Level:         constants.ServiceStateError,
		Description:   description,
		CorrelationID: RequestCorrelationID(r),
	})
}

// ErrorFromAppError logs err and sends it as an ACD error response.
//
// Parameters:
//   - w: The HTTP response writer
//   - r: The request being answered
//   - err: The application error
//
// Server errors are logged at error level with their developer information;
// client errors at warn level.
func ErrorFromAppError(w http.ResponseWriter, r *http.Request, err *AppError) {
	event := log.Warn()
	if err.StatusCode >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.
		Str(constants.LogKeyCorrelationID, RequestCorrelationID(r)).
		Int(constants.LogKeyStatus, err.StatusCode).
		Str("description", err.Description).
		Str("dev_info", err.DevInfo).
		Msg("Request failed")

	Error(w, r, err.StatusCode, err.Description)
}

// SendError converts any error to an AppError and sends it.
func SendError(w http.ResponseWriter, r *http.Request, err error) {
	ErrorFromAppError(w, r, ParseError(err))
}

func fallbackErrorBody() []byte {
	return []byte(`{"code":500,"message":"Internal Server Error","level":"ERROR","description":"Failed to generate response"}`)
}
