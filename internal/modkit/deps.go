package modkit

import (
	"github.com/shivxmhere/ai-voice-detector/internal/core/scoring"
	"github.com/shivxmhere/ai-voice-detector/internal/platform/config"
	"github.com/shivxmhere/ai-voice-detector/internal/platform/logger"
)

// Deps holds core dependencies passed to modules.
// This is wiring only and does not introduce new abstractions.
// Scorer is the shared detection engine; modules must not construct their own
type Deps struct {
	Log    *logger.Logger
	Cfg    config.Conf
	Scorer scoring.Scorer
}
