// Package constants provides shared constant values used throughout the application.
//
// The httpcodes.go file defines HTTP-related constants such as header names,
// content types and the fields of the ACD error body.
package constants

// HTTP Header Names define common HTTP headers used in requests and responses.
const (
	// HeaderContentType specifies the media type of the resource.
	HeaderContentType = "Content-Type"

	// HeaderContentLength specifies the size of the entity-body in bytes.
	HeaderContentLength = "Content-Length"

	// HeaderAuthorization provides authentication credentials. It is masked in logs.
	HeaderAuthorization = "Authorization"

	// HeaderCookie carries client cookies. It is removed from logs.
	HeaderCookie = "Cookie"

	// HeaderSetCookie carries server cookies. It is removed from logs.
	HeaderSetCookie = "Set-Cookie"

	// HeaderCorrelationID tracks a request across ACD microservices.
	HeaderCorrelationID = "X-Correlation-Id"

	// HeaderXContentTypeOptions controls MIME type sniffing.
	HeaderXContentTypeOptions = "X-Content-Type-Options"

	// HeaderCacheControl directs caching behavior for the request/response chain.
	HeaderCacheControl = "Cache-Control"
)

// HTTP Content Types define media types used in the Content-Type header.
const (
	// ContentTypeJSON specifies the content is in JSON format.
	ContentTypeJSON = "application/json"
)

// Security Header Values are added to every response.
const (
	// ContentTypeOptionsNoSniff prevents MIME type sniffing.
	ContentTypeOptionsNoSniff = "nosniff"

	// CacheControlNoStore prevents caching of annotated clinical documents.
	CacheControlNoStore = "no-store"
)

// Service States are reported by the status endpoints and the error body.
const (
	// ServiceStateOK means the annotator is healthy.
	ServiceStateOK = "OK"

	// ServiceStateError is the level of every ACD error body.
	ServiceStateError = "ERROR"
)

// Log Redaction Values replace header values in request logs.
const (
	// LogMaskedValue replaces masked header values.
	LogMaskedValue = "*****"
)
