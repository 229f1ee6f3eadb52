// Package constants provides shared constant values used throughout the application.
//
// The defaults.go file defines default values used when neither the config file
// nor the environment provides a setting. The service identity defaults match
// the example ACD microservice so that a fresh deployment answers on the
// familiar base URL.
package constants

// Default Configuration Values define fallback settings when not specified in configuration.
const (
	// DefaultServerPort is the default HTTP server port.
	DefaultServerPort = 8000

	// DefaultLogLevel is the default logging verbosity level.
	DefaultLogLevel = "info"

	// DefaultLogFormat is the default logging output format.
	DefaultLogFormat = "json"
)

// Service Identity Defaults describe the annotator to ACD.
const (
	// DefaultServiceName is the annotator name reported in logs.
	DefaultServiceName = "Example ACD Microservice"

	// DefaultServiceDescription is the annotator description reported in logs.
	DefaultServiceDescription = "An example ACD annotator microservice"

	// DefaultBaseURL is the path prefix under which every endpoint is served.
	DefaultBaseURL = "/services/example_acd_service/api/v1"

	// DefaultServiceVersion is the version reported by the status endpoint.
	DefaultServiceVersion = "2021-04-06T15:37:31Z"

	// DefaultMaxThreads bounds the number of requests processed concurrently.
	DefaultMaxThreads = 10

	// ThrottleBacklogPerThread is how many process requests may wait for
	// each worker slot before the service answers 429.
	ThrottleBacklogPerThread = 10

	// DefaultAnnotatorKind selects the annotator when none is configured.
	DefaultAnnotatorKind = "regex"

	// DefaultPermissiveValidation is the validation mode when none is configured.
	DefaultPermissiveValidation = true
)

// Environment Types define the recognized application running environments.
const (
	// EnvDevelopment identifies a development environment with debugging features enabled.
	EnvDevelopment = "development"

	// EnvTesting identifies a testing environment for automated tests.
	EnvTesting = "testing"

	// EnvProduction identifies a production environment with optimized settings.
	EnvProduction = "production"
)

// Request Limits protect the service from oversized documents.
const (
	// MaxRequestBodySize is the maximum size in bytes for a process request body.
	MaxRequestBodySize = 32 << 20
)

// Memory Units used by the status endpoint. ACD reports decimal megabytes.
const (
	// BytesPerMegabyte converts byte counts to megabytes.
	BytesPerMegabyte = 1000 * 1000
)
