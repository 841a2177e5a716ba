package middleware

import (
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"
)

// maxDrainBytes caps how much of an unread body is consumed so the
// connection can be reused. Bigger leftovers are just closed.
const maxDrainBytes = 256 << 10

// DrainAndCloseRequest drains what the handler left unread of the request
// body and closes it.
func DrainAndCloseRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			if r.Body == nil || r.Body == http.NoBody {
				return
			}

			n, err := io.CopyN(io.Discard, r.Body, maxDrainBytes)
			if err == nil {
				log.Tracef("request body for [%s] not drained, more than %d bytes left", r.URL.Path, n)
			}
			if err := r.Body.Close(); err != nil {
				log.Tracef("close request body: %s", err)
			}
		})
	}
}
