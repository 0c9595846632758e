package net

import (
	"net/http"

	perr "github.com/shivxmhere/ai-voice-detector/internal/platform/errors"
)

// Wire is the common error envelope used by transports.
// Clients branch on status_code and error without parsing free text
type Wire struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status,omitempty"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	Detail     string         `json:"detail,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
}

// Error builds an error envelope from any error
func Error(err error, reqID string) (int, Wire) {
	if err == nil {
		return http.StatusOK, Wire{StatusCode: http.StatusOK, Status: http.StatusText(http.StatusOK), RequestID: reqID}
	}
	status := perr.HTTPStatus(err)
	w := perr.WireFrom(err)
	return status, Wire{
		StatusCode: status,
		Status:     http.StatusText(status),
		Code:       w.Code,
		Error:      w.Message,
		RequestID:  reqID,
	}
}

// HTTPStatus maps a project error to http status
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	return perr.HTTPStatus(err)
}
