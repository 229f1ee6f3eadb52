package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/rs/zerolog/log"

	"github.com/acd-annotator/acd-annotator-go/internal/constants"
	"github.com/acd-annotator/acd-annotator-go/internal/utils"
)

// Recovery is a middleware that recovers from panics and returns an ACD 500 error body
func Recovery() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				// Let the server abort the connection as intended
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logger := log.With().
					Str(constants.LogKeyCorrelationID, utils.RequestCorrelationID(r)).
					Str(constants.LogKeyMethod, r.Method).
					Str(constants.LogKeyPath, r.URL.Path).
					Logger()
				utils.LogPanic(logger, rec, debug.Stack())

				utils.Error(w, r, http.StatusInternalServerError, constants.MsgUnknownError)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
