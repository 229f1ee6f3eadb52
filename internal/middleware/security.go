package middleware

import (
	"net/http"

	"github.com/acd-annotator/acd-annotator-go/internal/constants"
)

// SecurityHeaders adds security-related HTTP headers to responses. Responses
// carry clinical text, so they must not be cached.
func SecurityHeaders() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(constants.HeaderXContentTypeOptions, constants.ContentTypeOptionsNoSniff)
			w.Header().Set(constants.HeaderCacheControl, constants.CacheControlNoStore)

			next.ServeHTTP(w, r)
		})
	}
}
