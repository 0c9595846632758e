// Package http provides helpers for writing JSON responses.
//
// Success payloads are written as-is: the service's response bodies are a
// fixed public contract and must appear at the top level of the body.
// Error payloads use the shared wire envelope so every failure carries
// status_code and error fields a client can branch on
package http

import (
	"encoding/json"
	stdhttp "net/http"

	perr "github.com/shivxmhere/ai-voice-detector/internal/platform/errors"
	pnet "github.com/shivxmhere/ai-voice-detector/internal/platform/net"
)

// JSON writes v as application/json with the given status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// RespondOK writes data as a bare 200 JSON body
func RespondOK(w stdhttp.ResponseWriter, _ *stdhttp.Request, data any) {
	JSON(w, stdhttp.StatusOK, data)
}

// RespondError maps a project error into the wire envelope and writes it
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	status, body := pnet.Error(err, pnet.RequestID(r.Context()))
	JSON(w, status, body)
}

// Return-style helpers for early returns in handlers

// Response is a functional response object for return-style handlers
type Response struct {
	Status int
	Body   any
	// optional headers if a handler wants to add any
	Header stdhttp.Header
}

// Handle adapts a Response-returning handler to net/http
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		h(r).write(w, r)
	}
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	status := resp.Status
	if status == 0 {
		status = stdhttp.StatusOK
	}
	if resp.Header != nil {
		for k, vv := range resp.Header {
			for _, v := range vv {
				w.Header().Add(k, v)
			}
		}
	}
	if status == stdhttp.StatusNoContent {
		w.WriteHeader(stdhttp.StatusNoContent)
		return
	}

	// if Body is an error, derive status from the error and use the envelope
	if err, ok := resp.Body.(error); ok && err != nil {
		RespondError(w, r, err)
		return
	}

	JSON(w, status, resp.Body)
}

// OK returns a 200 response
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// NoContent returns a 204 response
func NoContent() Response { return Response{Status: stdhttp.StatusNoContent} }

// Error returns a response that maps the error to status and envelope
func Error(err error) Response { return Response{Body: err} }

// Status returns the HTTP status an error would map to; exported for tests
func Status(err error) int { return perr.HTTPStatus(err) }
