package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/acd-annotator/acd-annotator-go/internal/constants"
	"github.com/acd-annotator/acd-annotator-go/pkg/annotator"
	"github.com/acd-annotator/acd-annotator-go/pkg/container"
)

// Custom error types for the application
var (
	ErrBadRequest           = errors.New("invalid request")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrInvalidContainer     = errors.New("invalid container")
	ErrAnnotator            = errors.New("annotator error")
	ErrInternalServer       = errors.New("internal server error")
	ErrUnhealthy            = errors.New("annotator unhealthy")
)

// AppError represents an application error with additional context.
// Message is the HTTP status text; Description is returned to the caller
// and DevInfo is only logged.
type AppError struct {
	Err         error  // The underlying error
	StatusCode  int    // HTTP status code
	Message     string // Status text for the ACD error body
	Description string // Caller-facing description
	DevInfo     string // Additional information for developers
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Description != "" {
		return e.Description
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusMessage returns the message field of an ACD error body for a status code.
func StatusMessage(statusCode int) string {
	if text := http.StatusText(statusCode); text != "" {
		return text
	}
	return constants.ServiceStateError
}

// New creates a new AppError with the given error, status code and description
func New(err error, statusCode int, description string) *AppError {
	return &AppError{
		Err:         err,
		StatusCode:  statusCode,
		Message:     StatusMessage(statusCode),
		Description: description,
	}
}

// NewWithDevInfo creates a new AppError with developer information
func NewWithDevInfo(err error, statusCode int, description, devInfo string) *AppError {
	appErr := New(err, statusCode, description)
	appErr.DevInfo = devInfo
	return appErr
}

// NewBadRequestError creates a new bad request error
func NewBadRequestError(description string) *AppError {
	return New(ErrBadRequest, http.StatusBadRequest, description)
}

// NewUnsupportedMediaTypeError creates the error returned for non-JSON process requests
func NewUnsupportedMediaTypeError() *AppError {
	return New(ErrUnsupportedMediaType, http.StatusUnsupportedMediaType, constants.MsgUnsupportedMediaType)
}

// NewInvalidInputError reports an input container group that failed validation.
// The schema error is kept for logs only.
func NewInvalidInputError(err error) *AppError {
	return NewWithDevInfo(fmt.Errorf("%w: %w", ErrInvalidContainer, err),
		http.StatusBadRequest, constants.MsgInvalidInput, errString(err))
}

// NewInvalidOutputError reports a container that annotator logic left invalid
func NewInvalidOutputError(err error) *AppError {
	return NewWithDevInfo(fmt.Errorf("%w: %w", ErrInvalidContainer, err),
		http.StatusInternalServerError, constants.MsgInvalidOutput, errString(err))
}

// NewAnnotatorFailureError reports an unexpected error raised by annotator logic.
// The description names the error type and message.
func NewAnnotatorFailureError(err error) *AppError {
	return NewWithDevInfo(fmt.Errorf("%w: %w", ErrAnnotator, err),
		http.StatusInternalServerError,
		fmt.Sprintf("%s: %T=%v", constants.MsgAnnotatorFailure, err, err), errString(err))
}

// NewUnhealthyError creates the error returned by status endpoints when the
// annotator is not healthy
func NewUnhealthyError(description string) *AppError {
	return New(ErrUnhealthy, http.StatusInternalServerError, description)
}

// NewInternalServerError creates a new internal server error
func NewInternalServerError(err error) *AppError {
	return NewWithDevInfo(ErrInternalServer, http.StatusInternalServerError,
		constants.MsgUnknownError, errString(err))
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// ParseError attempts to parse various types of errors into an AppError.
// Errors raised by annotators keep their status and description; schema
// errors surfacing after annotation mean the service broke the container.
func ParseError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var annErr *annotator.Error
	if errors.As(err, &annErr) {
		statusCode := annErr.StatusCode
		if statusCode == 0 {
			statusCode = http.StatusInternalServerError
		}
		description := annErr.Description
		if description == "" {
			description = constants.MsgUnknownError
		}
		return NewWithDevInfo(fmt.Errorf("%w: %w", ErrAnnotator, err), statusCode, description, errString(annErr.Err))
	}

	if container.IsSchemaError(err) {
		return NewInvalidOutputError(err)
	}

	switch {
	case errors.Is(err, ErrBadRequest):
		return NewBadRequestError(err.Error())
	case errors.Is(err, ErrUnsupportedMediaType):
		return NewUnsupportedMediaTypeError()
	case errors.Is(err, ErrUnhealthy):
		return NewUnhealthyError(constants.MsgHealthFailed)
	}

	return NewInternalServerError(err)
}

// StatusCode returns the HTTP status code for an error
func StatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	var annErr *annotator.Error
	if errors.As(err, &annErr) && annErr.StatusCode != 0 {
		return annErr.StatusCode
	}
	return http.StatusInternalServerError
}
