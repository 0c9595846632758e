package httpkit

import (
	"net/http"

	phttp "github.com/shivxmhere/ai-voice-detector/internal/platform/net/http"
)

// Get registers a no-body handler whose result is written as a bare JSON body
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, phttp.JSONHandlerNoBody(h))
}

// Post registers a no-body handler under POST
func Post(r Router, path string, h func(*http.Request) (any, error)) {
	r.Post(path, phttp.JSONHandlerNoBody(h))
}

// PostJSON registers a JSON-bound handler under POST
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error), opts ...JSONOptions) {
	r.Post(path, phttp.JSONHandler(h, opts...))
}
