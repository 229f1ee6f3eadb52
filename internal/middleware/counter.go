package middleware

import "net/http"

// RequestRecorder counts requests served. internal/service.ServiceInfo
// implements it.
type RequestRecorder interface {
	IncrementRequestCount()
}

// RequestCounter counts every request that reaches it, including status and
// health checks, the way the request count of ACD services is defined.
func RequestCounter(recorder RequestRecorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			recorder.IncrementRequestCount()
			next.ServeHTTP(w, r)
		})
	}
}
