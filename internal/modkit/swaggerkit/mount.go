// Package swaggerkit serves the generated OpenAPI document and the swagger UI
package swaggerkit

import (
	"net/http"

	phttp "moodlog/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Mount serves the UI under /api/docs/ and the document at /api/docs/doc.json.
// It does nothing unless enabled.
func Mount(r phttp.Router, enabled bool) {
	if !enabled {
		return
	}
	r.Get("/api/docs", http.RedirectHandler("/api/docs/", http.StatusPermanentRedirect).ServeHTTP)
	r.Get("/api/docs/doc.json", serveDoc)
	r.Handle("/api/docs/*", httpSwagger.Handler(httpSwagger.URL("/api/docs/doc.json")))
}
