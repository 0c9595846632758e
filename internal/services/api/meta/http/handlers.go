// Package http provides meta endpoints
package http

import (
	"net/http"
	"time"

	"github.com/shivxmhere/ai-voice-detector/internal/core/version"
	"github.com/shivxmhere/ai-voice-detector/internal/modkit/httpkit"
)

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	Buildathon  string
	StartedAt   time.Time
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	httpkit.Get(r, "/", h.root)
	httpkit.Get(r, "/version", h.version)
}

// RootResponse is the health descriptor served at the service root
type RootResponse struct {
	Status     string `json:"status"     example:"active"`
	Service    string `json:"service"    example:"AI Voice Detection API"`
	Timestamp  string `json:"timestamp"  example:"2026-08-30T13:05:00Z"`
	Buildathon string `json:"buildathon" example:"India AI Impact Buildathon"`
}

// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 {object} RootResponse "ok"
// @Router / [get]
func (h *handlers) root(_ *http.Request) (any, error) {
	return RootResponse{
		Status:     "active",
		Service:    h.deps.ServiceName,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Buildathon: h.deps.Buildathon,
	}, nil
}

// VersionResponse is build info plus process uptime
type VersionResponse struct {
	version.BuildInfo
	UptimeSeconds int64 `json:"uptime_seconds" example:"42"`
}

// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} VersionResponse "ok"
// @Router /version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return VersionResponse{
		BuildInfo:     version.Info(),
		UptimeSeconds: int64(time.Since(h.deps.StartedAt).Seconds()),
	}, nil
}
