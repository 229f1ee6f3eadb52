// Package handlers provides the HTTP handlers of an ACD annotator service
// and the service interfaces they depend on.
//
// Handlers only translate between HTTP and the service layer: they decode
// the request, hand it to a service, and write the result or an ACD error
// body. The interfaces allow tests to replace the services with mocks.
package handlers

import (
	"context"

	"github.com/acd-annotator/acd-annotator-go/internal/service"
	"github.com/acd-annotator/acd-annotator-go/pkg/annotator"
)

// ProcessServiceInterface defines the methods required from ProcessService.
type ProcessServiceInterface interface {
	// Process annotates a raw container group and returns the annotated
	// group.
	//
	// Parameters:
	//   - ctx: The request context
	//   - req: The per-request context handed to the annotator
	//   - raw: The decoded request body, with offsets in UTF-16 units
	//
	// Returns:
	//   - The annotated container group, with offsets in UTF-16 units
	//   - An error carrying the HTTP status of the failure
	Process(ctx context.Context, req *annotator.Request, raw map[string]any) (map[string]any, error)
}

// StatusServiceInterface defines the methods required from ServiceInfo.
type StatusServiceInterface interface {
	// Status reports the service state, or false when the annotator is not
	// healthy.
	Status(ctx context.Context, ann annotator.Annotator) (*service.Status, bool)
}
