package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	phttp "moodlog/internal/platform/net/http"
	"moodlog/internal/platform/net/middleware"
)

const (
	// requestTimeout bounds a whole API request including its statements
	requestTimeout = 30 * time.Second
	slowRequest    = 500 * time.Millisecond
)

// CommonStack is the middleware every API version runs behind
// origins feed CORS; none falls back to the go-chi/cors default
func CommonStack(origins ...string) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.RecoverJSON,
		middleware.NoCache(),
		middleware.AccessLog(slowRequest),
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: origins}),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/health"),
		middleware.StripSlashes(),
		middleware.Timeout(requestTimeout),
	}
}

// Auth answers rejected callers with the JSON envelope
func Auth(p middleware.AuthPort) func(http.Handler) http.Handler {
	return middleware.Auth(p, phttp.JSON)
}
