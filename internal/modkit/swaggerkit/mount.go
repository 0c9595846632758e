// Package swaggerkit provides helpers to mount Swagger UI and JSON spec
package swaggerkit

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	phttp "github.com/shivxmhere/ai-voice-detector/internal/platform/net/http"
)

// Mount the Swagger UI and JSON spec if enabled
func Mount(r phttp.Router, enabled bool) {
	if !enabled {
		return
	}
	r.Get("/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/docs/", http.StatusPermanentRedirect)
	})
	r.Get("/docs/doc.json", serveDocJSON())
	r.Handle("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))
}
