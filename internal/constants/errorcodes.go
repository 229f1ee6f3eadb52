// Package constants provides shared constant values used throughout the application.
//
// The errorcodes.go file defines the error descriptions returned in ACD error
// bodies. Descriptions never include document content, since they are logged
// and returned to callers verbatim.
package constants

// Error Descriptions define the description field of ACD error responses.
const (
	// MsgUnsupportedMediaType is returned when a process request is not JSON.
	MsgUnsupportedMediaType = "Unsupported Media Type"

	// MsgMalformedJSON is returned when the request body cannot be decoded.
	MsgMalformedJSON = "Request body is not a valid JSON object"

	// MsgInvalidInput is returned when the input container group fails validation.
	MsgInvalidInput = "Input container failed validation"

	// MsgInvalidOutput is returned when annotator logic produced an invalid container.
	MsgInvalidOutput = "This service produced an invalid container."

	// MsgAnnotatorFailure prefixes unexpected annotator errors.
	MsgAnnotatorFailure = "Encountered an unexpected error while running annotator logic"

	// MsgSerializeFailure prefixes unexpected serialization errors.
	MsgSerializeFailure = "Encountered an unexpected error while serializing container"

	// MsgStatusFailed is returned when the status check finds the annotator unhealthy.
	MsgStatusFailed = "Status check failed. See log for details."

	// MsgHealthFailed is returned when the health check finds the annotator unhealthy.
	MsgHealthFailed = "Health check failed. See log for details."

	// MsgUnknownError is the description of errors without one.
	MsgUnknownError = "Unknown error. See logs for details."
)
