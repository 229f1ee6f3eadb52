package constants

// Log Field Names
const (
	LogKeyCorrelationID = "correlation_id"
	LogKeyRequestID     = "request_id"
	LogKeyMethod        = "method"
	LogKeyPath          = "path"
	LogKeyStatus        = "status"
	LogKeyAnnotator     = "annotator"
	LogKeyDocument      = "document"
)

// KV Summary Keys are the fields of the kv|...| request summary.
const (
	KVVerb = "api_verb"
	KVTime = "api_time"
	KVCode = "api_rc"
	KVSize = "api_size_i"
)
