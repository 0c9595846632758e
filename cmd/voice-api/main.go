// @title       AI Voice Detection API
// @version     1.0.0
// @description Classifies base64-encoded audio clips as AI-generated or human

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shivxmhere/ai-voice-detector/internal/core/scoring"
	"github.com/shivxmhere/ai-voice-detector/internal/platform/config"
	"github.com/shivxmhere/ai-voice-detector/internal/platform/logger"
	phttp "github.com/shivxmhere/ai-voice-detector/internal/platform/net/http"

	"github.com/shivxmhere/ai-voice-detector/internal/services/api"
)

func main() {
	// service-scoped config (VOICE_API_*)
	root := config.New()
	apiCfg := root.Prefix("VOICE_API_")

	// bring up logging early
	l := logger.Get()

	// http server (reads VOICE_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Logger:         l,
			Scorer:         scoring.NewPlaceholder(),
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
			EnableMetrics:  apiCfg.MayBool("METRICS", true),
		},
	)

	// stop on SIGINT/SIGTERM and drain in-flight requests
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	select {
	case err := <-done:
		if err != nil {
			l.Panic().Err(err).Msg("http server stopped")
		}
	case <-ctx.Done():
		shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutCtx); err != nil {
			l.Error().Err(err).Msg("graceful shutdown failed")
		}
		<-done
		l.Info().Msg("http server stopped")
	}
}
