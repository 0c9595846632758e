package httpkit

import (
	"net/http"
	"time"

	phttp "github.com/shivxmhere/ai-voice-detector/internal/platform/net/http"
	"github.com/shivxmhere/ai-voice-detector/internal/platform/net/middleware"
)

// CommonStack returns a baseline middleware slice for the whole API.
// Compose with the API-key middleware on guarded routes in the composition root
func CommonStack() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		// tracing / correlation
		middleware.RequestID(),
		middleware.RealIP(),

		// safety
		middleware.RecoverJSON,

		// cache / freshness
		middleware.NoCache(),

		// observability
		middleware.AccessLog(middleware.AccessLogOptions{Slow: 500 * time.Millisecond}),
		middleware.Metrics,

		// cross-origin (tweak config in main if needed)
		middleware.CORS(middleware.CORSOptions{}),
		middleware.Timeout(30 * time.Second),
	}
}

// APIKey wires the key middleware to the platform JSON writer
func APIKey(p middleware.KeyPort) func(http.Handler) http.Handler {
	return middleware.APIKey(p, phttp.JSON)
}
