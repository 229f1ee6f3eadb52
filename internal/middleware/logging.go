package middleware

import (
	"fmt"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/acd-annotator/acd-annotator-go/internal/constants"
	"github.com/acd-annotator/acd-annotator-go/internal/utils"
)

// RequestLogger logs every request on entry and exit in the ACD format:
// an entry line with the verb, a redacted header line, and an exit line with
// a kv summary of verb, elapsed seconds, status code and request size.
// Document bodies are never logged.
func RequestLogger() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			logger := utils.RequestLogger(utils.RequestCorrelationID(r), r.Method, r.URL.Path)
			if reqID := chimiddleware.GetReqID(r.Context()); reqID != "" {
				logger = logger.With().Str(constants.LogKeyRequestID, reqID).Logger()
			}

			kv := &utils.KVLogBuilder{}
			kv.Add(constants.KVVerb, r.Method)
			logger.Info().Msgf(">%s %s %s", r.Method, r.URL.Path, kv)
			logger.Info().Msgf("Req Headers=%s", utils.HeaderLog(r.Header))

			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			var size interface{}
			if length := r.Header.Get(constants.HeaderContentLength); length != "" {
				size = length
			}
			kv.Add(constants.KVTime, fmt.Sprintf("%.3f", time.Since(start).Seconds())).
				Add(constants.KVCode, status).
				Add(constants.KVSize, size)

			utils.LogHTTPRequest(logger, r.Method, r.URL.Path, status, kv.String())
		})
	}
}
