package middleware

import (
	"net/http"

	"github.com/acd-annotator/acd-annotator-go/internal/utils"
)

// RequireJSON rejects requests whose Content-Type is not application/json
// with 415 Unsupported Media Type. It runs before the body is read, so a bad
// media type wins over a malformed body.
func RequireJSON() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !utils.HasJSONContentType(r) {
				utils.ErrorFromAppError(w, r, utils.NewUnsupportedMediaTypeError())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
