package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/acd-annotator/acd-annotator-go/internal/constants"
	"github.com/acd-annotator/acd-annotator-go/internal/utils"
)

// CorrelationID stores the request's x-correlation-id header in the request
// context, generating one when the caller sent none, and echoes it on the
// response so callers can match logs across ACD services.
func CorrelationID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(constants.HeaderCorrelationID)
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set(constants.HeaderCorrelationID, id)

			next.ServeHTTP(w, r.WithContext(utils.WithCorrelationID(r.Context(), id)))
		})
	}
}
