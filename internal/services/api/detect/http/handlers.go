// Package http provides http transport for detect
package http

import (
	stdhttp "net/http"

	"github.com/shivxmhere/ai-voice-detector/internal/modkit/httpkit"
	"github.com/shivxmhere/ai-voice-detector/internal/services/api/detect/domain"
	svc "github.com/shivxmhere/ai-voice-detector/internal/services/api/detect/service"
)

// audio payloads are larger than typical JSON bodies; cap at 16MB
const maxDetectBody = 16 << 20

// Register mounts detect endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON(r, "/", h.detect, httpkit.JSONOptions{
		MaxBytes:        maxDetectBody,
		DisallowUnknown: true,
	})
}

type handlers struct{ svc svc.Service }

// @Summary Classify an audio clip as AI-generated or human
// @Tags Detect
// @Accept json
// @Produce json
// @Param x-api-key header string true "API authentication key"
// @Param payload body domain.DetectionRequest true "Audio clip"
// @Success 200 {object} domain.DetectionResponse "ok"
// @Router /detect [post]
func (h *handlers) detect(r *stdhttp.Request, in domain.DetectionRequest) (any, error) {
	return h.svc.Detect(r.Context(), in)
}
