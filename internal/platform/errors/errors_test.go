package errors_test

import (
	stderrs "errors"
	"net/http"
	"testing"

	perr "github.com/shivxmhere/ai-voice-detector/internal/platform/errors"
)

func TestHTTPStatusCodeMapping(t *testing.T) {
	cases := []struct {
		code perr.ErrorCode
		want int
	}{
		{perr.ErrorCodeValidation, http.StatusUnprocessableEntity},
		{perr.ErrorCodeJSON, http.StatusUnprocessableEntity},
		{perr.ErrorCodeInvalidArgument, http.StatusBadRequest},
		{perr.ErrorCodeUnauthorized, http.StatusUnauthorized},
		{perr.ErrorCodeForbidden, http.StatusForbidden},
		{perr.ErrorCodeNotFound, http.StatusNotFound},
		{perr.ErrorCodeConflict, http.StatusConflict},
		{perr.ErrorCodeTooManyRequests, http.StatusTooManyRequests},
		{perr.ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{perr.ErrorCodePanic, http.StatusInternalServerError},
		{perr.ErrorCodeUnknown, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := perr.HTTPStatusCode(tc.code); got != tc.want {
			t.Fatalf("code %d mapped to %d, want %d", tc.code, got, tc.want)
		}
	}
}

func TestWrapAndUnwrap(t *testing.T) {
	cause := stderrs.New("boom")
	err := perr.Wrap(cause, perr.ErrorCodeInvalidArgument, "decode failed")

	if !stderrs.Is(err, cause) {
		t.Fatal("wrapped cause not reachable via errors.Is")
	}
	if got := perr.CodeOf(err); got != perr.ErrorCodeInvalidArgument {
		t.Fatalf("CodeOf = %d, want InvalidArgument", got)
	}
	if got := perr.Root(err); got != cause {
		t.Fatalf("Root = %v, want %v", got, cause)
	}
	if got := err.Error(); got != "decode failed: boom" {
		t.Fatalf("Error() = %q", got)
	}
}

func TestWithFieldAndWire(t *testing.T) {
	err := perr.WithField(perr.ValidationErrf("must be one of [mp3]"), "audio_format")

	e, ok := perr.As(err)
	if !ok {
		t.Fatal("expected a project error")
	}
	if e.Field() != "audio_format" {
		t.Fatalf("field = %q", e.Field())
	}

	w := perr.WireFrom(err)
	if w.Code != perr.ErrorCodeValidation || w.Field != "audio_format" || w.Message == "" {
		t.Fatalf("bad wire: %+v", w)
	}
}

func TestWireFromForeignError(t *testing.T) {
	w := perr.WireFrom(stderrs.New("plain"))
	if w.Code != perr.ErrorCodeUnknown || w.Message != "plain" {
		t.Fatalf("bad wire for foreign error: %+v", w)
	}
}

func TestHTTPBundle(t *testing.T) {
	status, w := perr.HTTP(perr.Unauthorizedf("Invalid API key"))
	if status != http.StatusUnauthorized {
		t.Fatalf("status = %d", status)
	}
	if w.Message != "Invalid API key" {
		t.Fatalf("message = %q", w.Message)
	}

	status, w = perr.HTTP(nil)
	if status != http.StatusOK || w.Message != "" {
		t.Fatalf("nil error should map to 200 and empty wire, got %d %+v", status, w)
	}
}
