package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog/log"
)

// Recovery converts a panic below it into a well-formed JSON 500 and
// reports it to sentry. Without it net/http would close the connection
// with no status line or body at all.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				sentry.CurrentHub().Recover(rec)
				log.Error().
					Str("request_id", GetRequestID(r.Context())).
					Interface("panic", rec).
					Msg("panic recovered")

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(map[string]string{
					"detail": "internal server error",
				})
			}
		}()

		next.ServeHTTP(w, r)
	})
}
