package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	perr "github.com/shivxmhere/ai-voice-detector/internal/platform/errors"
	pnet "github.com/shivxmhere/ai-voice-detector/internal/platform/net"
)

// KeyPort is the seam a credential checker implements
type KeyPort interface {
	// Verify inspects the request credential and returns nil when it is valid
	Verify(r *http.Request) error
}

// StaticKey verifies a preconfigured secret carried in a request header.
// A missing header is a schema failure (the header is a required part of the
// request shape); a present-but-wrong key is an auth failure
type StaticKey struct {
	Header string
	Secret string
}

// Verify implements KeyPort
func (k StaticKey) Verify(r *http.Request) error {
	got := r.Header.Get(k.Header)
	if got == "" {
		return perr.WithField(
			perr.ValidationErrf("missing required header %s", k.Header),
			strings.ToLower(k.Header),
		)
	}
	if subtle.ConstantTimeCompare([]byte(got), []byte(k.Secret)) != 1 {
		return perr.Unauthorizedf("Invalid API key")
	}
	return nil
}

// APIKey guards routes with the given credential checker.
// write is the platform JSON writer; the middleware stays transport-shaped
// and never touches the scoring path on failure
func APIKey(p KeyPort, write func(w http.ResponseWriter, status int, body any)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p == nil {
				next.ServeHTTP(w, r)
				return
			}
			if err := p.Verify(r); err != nil {
				status, body := pnet.Error(err, pnet.RequestID(r.Context()))
				write(w, status, body)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
