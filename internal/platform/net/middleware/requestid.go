package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/shivxmhere/ai-voice-detector/internal/platform/logger"
	pnet "github.com/shivxmhere/ai-voice-detector/internal/platform/net"
)

// requestIDHeader is the correlation header propagated end to end
const requestIDHeader = "X-Request-ID"

// RequestID propagates an inbound X-Request-ID or assigns a fresh UUIDv4,
// stores it on the context for logging and error envelopes, and mirrors it
// on the response
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := r.Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}
			ctx := pnet.WithRequest(r.Context(), reqID)
			ctx = logger.WithRequest(ctx, reqID)
			w.Header().Set(requestIDHeader, reqID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
