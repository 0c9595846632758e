// Package service contains the detect workflow
package service

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/shivxmhere/ai-voice-detector/internal/core/langs"
	"github.com/shivxmhere/ai-voice-detector/internal/core/scoring"
	perr "github.com/shivxmhere/ai-voice-detector/internal/platform/errors"
	"github.com/shivxmhere/ai-voice-detector/internal/platform/logger"
	"github.com/shivxmhere/ai-voice-detector/internal/services/api/detect/domain"
)

// Service defines the detect service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the detect service
type Svc struct {
	scorer scoring.Scorer
}

// New constructs a detect service
func New(scorer scoring.Scorer) *Svc {
	if scorer == nil {
		panic("detect.Service requires a non nil Scorer")
	}
	return &Svc{scorer: scorer}
}

// Detect validates and decodes the payload, then scores the clip.
// Schema violations never reach this point when the transport binds the
// request; the checks here cover direct callers and decode-time failures
func (s *Svc) Detect(ctx context.Context, in domain.DetectionRequest) (domain.DetectionResponse, error) {
	if !langs.Supported(in.Language) {
		return domain.DetectionResponse{}, perr.WithField(
			perr.ValidationErrf("language must be one of %v", langs.Names()), "language")
	}

	audio, err := decodeAudio(in.AudioBase64)
	if err != nil {
		return domain.DetectionResponse{}, perr.WithField(
			perr.ValidationErrf("Invalid base64 encoding in audio_base64"), "audio_base64")
	}
	if len(audio) == 0 {
		return domain.DetectionResponse{}, perr.InvalidArgf("Audio data is empty")
	}

	res := s.scorer.Score(audio, in.Language)

	logger.C(ctx).Debug().
		Str("language", in.Language).
		Int("audio_bytes", len(audio)).
		Str("classification", string(res.Classification)).
		Float64("confidence", res.Confidence).
		Msg("clip scored")

	return domain.DetectionResponse{
		Classification:  string(res.Classification),
		ConfidenceScore: res.Confidence,
		Language:        in.Language,
		Explanation:     res.Explanation,
	}, nil
}

// decodeAudio decodes the clip payload. Padding-only input carries zero
// bytes, so it decodes to an empty slice instead of failing
func decodeAudio(s string) ([]byte, error) {
	if strings.Trim(s, "=") == "" {
		return nil, nil
	}
	return base64.StdEncoding.DecodeString(s)
}
