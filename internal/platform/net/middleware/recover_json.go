package middleware

import (
	stdjson "encoding/json"
	"fmt"
	stdhttp "net/http"
	"runtime/debug"
	"strings"

	"github.com/shivxmhere/ai-voice-detector/internal/platform/logger"
	pnet "github.com/shivxmhere/ai-voice-detector/internal/platform/net"
)

// RecoverJSON converts panics into a JSON 500 and logs the stack with request id.
// The body carries a stable "Internal server error" message plus a detail string
func RecoverJSON(next stdhttp.Handler) stdhttp.Handler {
	return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		defer func() {
			if v := recover(); v != nil {
				reqID := pnet.RequestID(r.Context())

				raw := debug.Stack()
				stack := strings.Join(strings.Split(string(raw), "\n"), "\n\t")

				log := logger.C(r.Context())
				log.Error().
					Str("request_id", reqID).
					Interface("panic", v).
					Msgf("panic recovered\n%s", stack)

				if reqID != "" {
					w.Header().Set("X-Request-ID", reqID)
				}

				body := pnet.Wire{
					StatusCode: stdhttp.StatusInternalServerError,
					Status:     stdhttp.StatusText(stdhttp.StatusInternalServerError),
					Error:      "Internal server error",
					Detail:     fmt.Sprint(v),
					RequestID:  reqID,
				}

				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				w.WriteHeader(stdhttp.StatusInternalServerError)
				_ = stdjson.NewEncoder(w).Encode(body)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
