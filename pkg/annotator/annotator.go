// Package annotator defines the contract between the ACD service and the
// annotation logic it hosts.
//
// The service decodes each request into a container.ContainerGroup and hands
// every unstructured container to Annotate, one at a time, on the request
// goroutine. Annotators edit the container in place; the service validates
// and serializes the result.
package annotator

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/acd-annotator/acd-annotator-go/pkg/container"
)

// Annotator is the logic behind an ACD service.
type Annotator interface {
	// OnStartup loads resources before the service accepts requests.
	OnStartup(ctx context.Context) error

	// IsHealthy reports whether the annotator can serve requests.
	IsHealthy(ctx context.Context) bool

	// Annotate edits one unstructured container in place. Its Data is never nil.
	Annotate(ctx context.Context, req *Request, doc *container.UnstructuredContainer) error
}

// StructuredAnnotator is implemented by annotators that also process
// structured containers.
type StructuredAnnotator interface {
	Annotator

	// AnnotateStructured edits one structured container in place. Its Data is never nil.
	AnnotateStructured(ctx context.Context, req *Request, doc *container.StructuredContainer) error
}

// Request is the per-request context handed to annotators.
type Request struct {
	// CorrelationID tracks the request across ACD services.
	CorrelationID string

	// Header holds the incoming request headers.
	Header http.Header

	// Logger is a request-scoped logger tagged with the correlation id.
	Logger zerolog.Logger

	// Validator is the service validator. Use it to create annotations and
	// to set fields by name so edits follow the service's validation mode.
	Validator *container.Validator
}

// Base provides no-op OnStartup and IsHealthy methods.
type Base struct{}

// OnStartup does nothing
func (Base) OnStartup(context.Context) error { return nil }

// IsHealthy always reports true
func (Base) IsHealthy(context.Context) bool { return true }

// Error is returned by annotators to fail a request with a specific HTTP
// status and description.
type Error struct {
	StatusCode  int
	Description string
	Err         error
}

// NewError creates an Error with the given status and description.
func NewError(statusCode int, description string, err error) *Error {
	return &Error{StatusCode: statusCode, Description: description, Err: err}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Description, e.Err)
	}
	return e.Description
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}
