package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "github.com/shivxmhere/ai-voice-detector/internal/platform/errors"
	pnet "github.com/shivxmhere/ai-voice-detector/internal/platform/net"
	phttp "github.com/shivxmhere/ai-voice-detector/internal/platform/net/http"
)

// helper to build a request with a request_id in context
func reqWithReqID(method, path, rid string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	return req.WithContext(pnet.WithRequest(req.Context(), rid))
}

func TestJSONWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	phttp.JSON(rec, http.StatusTeapot, map[string]any{"k": "v"})
	if rec.Code != http.StatusTeapot {
		t.Fatalf("JSON status: expected 418, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct == "" {
		t.Fatal("expected content-type set")
	}
}

func TestRespondOKWritesBareBody(t *testing.T) {
	rec := httptest.NewRecorder()
	req := reqWithReqID("GET", "/x", "rid-1")
	phttp.RespondOK(rec, req, map[string]string{"classification": "HUMAN"})

	if rec.Code != http.StatusOK {
		t.Fatalf("RespondOK code: %d", rec.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	// the payload must be the top level of the body, not nested under data
	if body["classification"] != "HUMAN" {
		t.Fatalf("payload not at top level: %v", body)
	}
	if _, present := body["data"]; present {
		t.Fatalf("success body must not be enveloped: %v", body)
	}
}

func TestRespondErrorEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	req := reqWithReqID("GET", "/err", "rid-3")

	phttp.RespondError(rec, req, perr.Unauthorizedf("Invalid API key"))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	var env pnet.Wire
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	if env.StatusCode != 401 || env.Error != "Invalid API key" || env.RequestID != "rid-3" {
		t.Fatalf("bad error envelope: %+v", env)
	}
}

func TestHandleReturnStyle(t *testing.T) {
	h := phttp.Handle(func(r *http.Request) phttp.Response {
		return phttp.OK(map[string]int{"x": 1})
	})
	rec := httptest.NewRecorder()
	h(rec, reqWithReqID("GET", "/ok", "rid-4"))
	if rec.Code != http.StatusOK {
		t.Fatalf("handle OK code: %d", rec.Code)
	}

	he := phttp.Handle(func(r *http.Request) phttp.Response {
		return phttp.Error(perr.InvalidArgf("Audio data is empty"))
	})
	recE := httptest.NewRecorder()
	he(recE, reqWithReqID("POST", "/bad", "rid-5"))
	if recE.Code != http.StatusBadRequest {
		t.Fatalf("handle error code: %d", recE.Code)
	}
	var env pnet.Wire
	_ = json.Unmarshal(recE.Body.Bytes(), &env)
	if env.Error != "Audio data is empty" || env.StatusCode != 400 {
		t.Fatalf("bad envelope: %+v", env)
	}

	hn := phttp.Handle(func(r *http.Request) phttp.Response { return phttp.NoContent() })
	recN := httptest.NewRecorder()
	hn(recN, reqWithReqID("DELETE", "/none", "rid-6"))
	if recN.Code != http.StatusNoContent || recN.Body.Len() != 0 {
		t.Fatalf("no content: code %d body %q", recN.Code, recN.Body.String())
	}
}
