// Package api provides the HTTP API for the application
package api

import (
	"github.com/prometheus/client_golang/prometheus/promhttp"

	modkit "github.com/shivxmhere/ai-voice-detector/internal/modkit"
	"github.com/shivxmhere/ai-voice-detector/internal/modkit/httpkit"
	"github.com/shivxmhere/ai-voice-detector/internal/modkit/module"
	"github.com/shivxmhere/ai-voice-detector/internal/modkit/swaggerkit"
	"github.com/shivxmhere/ai-voice-detector/internal/platform/config"
	"github.com/shivxmhere/ai-voice-detector/internal/platform/logger"
	phttp "github.com/shivxmhere/ai-voice-detector/internal/platform/net/http"
	"github.com/shivxmhere/ai-voice-detector/internal/platform/net/middleware"

	"github.com/shivxmhere/ai-voice-detector/internal/core/scoring"
	detectmod "github.com/shivxmhere/ai-voice-detector/internal/services/api/detect/module"
	metamod "github.com/shivxmhere/ai-voice-detector/internal/services/api/meta/module"
)

// ServiceName is the public descriptor served at the root endpoint
const ServiceName = "AI Voice Detection API"

// Buildathon names the event this service was built for
const Buildathon = "India AI Impact Buildathon"

// apiKeyHeader carries the caller credential
const apiKeyHeader = "x-api-key"

// defaultAPIKey is the compiled-in credential; override via VOICE_API_KEY
const defaultAPIKey = "buildathon_2024_secret_key"

// Options are the API options
type Options struct {
	Config         config.Conf
	Logger         *logger.Logger
	Scorer         scoring.Scorer
	EnableSwagger  bool
	EnableProfiler bool
	EnableMetrics  bool
}

// Mount mounts the API service onto the given router.
// The public paths are root-level (GET / and POST /detect), so the common
// stack is applied to the whole mux rather than a versioned prefix
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{
		Log:    opt.Logger,
		Cfg:    opt.Config,
		Scorer: opt.Scorer,
	}

	key := middleware.StaticKey{
		Header: apiKeyHeader,
		Secret: opt.Config.MayString("KEY", defaultAPIKey),
	}

	mods := []module.Module{
		metamod.New(deps, metamod.Options{
			ServiceName: ServiceName,
			Buildathon:  Buildathon,
		}),
		// only detect is credentialed; health stays open for probes
		detectmod.New(deps, modkit.WithMiddlewares(httpkit.APIKey(key))),
	}

	r.Use(httpkit.CommonStack()...)

	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)
	if opt.EnableMetrics {
		r.Handle("/metrics", promhttp.Handler())
	}

	for _, m := range mods {
		// register each module's ports under its own name (for cross-module lookups)
		module.Register(m.Name(), m.Ports())

		m.MountRoutes(r)
	}
}
