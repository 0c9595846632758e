// Package config handles application configuration via environment variables
package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/shivxmhere/ai-voice-detector/internal/platform/config/raw"
	"github.com/shivxmhere/ai-voice-detector/internal/platform/logger"
)

// Conf is a namespaced view over environment variables (e.g. "VOICE_API_").
// Use New() for global access, or Prefix("VOICE_API_") for module scopes.
// Values are read on demand; nothing is cached, nothing is mutated.
type Conf struct{ rc raw.Conf }

// New creates a root Conf (no prefix)
func New() Conf { return Conf{rc: raw.New()} }

// Prefix creates a child Conf with an additional prefix, e.g. cfg.Prefix("VOICE_API_")
func (c Conf) Prefix(p string) Conf { return Conf{rc: c.rc.Prefix(p)} }

// MustString panics if the given key is missing or empty
func (c Conf) MustString(key string) string {
	v := c.rc.Get(key, "")
	if v == "" {
		logger.Get().Panic().Str("key", key).Msg("missing required env")
	}
	return v
}

// Require ensures that all given keys are present (non-empty). Panics otherwise
func (c Conf) Require(keys ...string) {
	for _, k := range keys {
		c.MustString(k)
	}
}

// MayString returns the value or def if missing/empty
func (c Conf) MayString(key, def string) string { return c.rc.Get(key, def) }

// MayInt returns the value or def if missing/empty; logs and returns def if invalid
func (c Conf) MayInt(key string, def int) int {
	s := c.rc.Get(key, "")
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		logger.Get().Warn().Str("key", key).Str("value", s).Int("default", def).Msg("invalid int; using default")
		return def
	}
	return v
}

// MayBool returns the value or def if missing/empty; logs and returns def if invalid
func (c Conf) MayBool(key string, def bool) bool {
	s := c.rc.Get(key, "")
	if s == "" {
		return def
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		logger.Get().Warn().Str("key", key).Str("value", s).Bool("default", def).Msg("invalid bool; using default")
		return def
	}
	return v
}

// MayDuration returns the value or def if missing/empty; logs and returns def if invalid
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	s := c.rc.Get(key, "")
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		logger.Get().Warn().Str("key", key).Str("value", s).Dur("default", def).Msg("invalid duration; using default")
		return def
	}
	return d
}

// MayCSV returns a slice of strings from a comma-separated env var; def if missing/empty
func (c Conf) MayCSV(key string, def []string) []string {
	s := c.rc.Get(key, "")
	if s == "" {
		return def
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
