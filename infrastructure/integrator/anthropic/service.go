// Package anthropic wraps the Anthropic Messages API behind a generator that
// never fails the request: when the key is missing or the call errors, the
// caller receives a readable fallback text instead of an error.
package anthropic

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/opsvue/performance-coach-api/infrastructure/integrator/anthropic/anthropicclient"
	"github.com/opsvue/performance-coach-api/internal/config"
	"github.com/opsvue/performance-coach-api/pkg/metrics"
)

// FallbackNotConfigured is returned verbatim when no API key is set, so the
// dashboard can render it inline instead of an error state.
const FallbackNotConfigured = "AI features unavailable - API key not configured."

type Generator struct {
	cfg    *config.Config
	Client anthropicclient.Client
}

func New(cfg *config.Config, client anthropicclient.Client) *Generator {
	return &Generator{
		cfg:    cfg,
		Client: client,
	}
}

// Generate runs one prompt through the model and returns the generated text.
// Kind labels the request on metrics ("summary", "analysis", "plan", "team",
// "chat"). The returned text is always presentable to the end user.
func (s *Generator) Generate(ctx context.Context, kind, system, prompt string) string {
	if !s.Client.Configured() {
		logrus.WithField("kind", kind).Warn("coach: skipping generation, API key not configured")
		metrics.CoachRequestsTotal.WithLabelValues(kind, "unconfigured").Inc()
		return FallbackNotConfigured
	}

	start := time.Now()
	text, err := s.Client.CreateMessage(ctx, system, prompt)
	metrics.CoachRequestDurationSeconds.Observe(time.Since(start).Seconds())

	if err != nil {
		logrus.WithFields(logrus.Fields{
			"kind":  kind,
			"error": err.Error(),
		}).Error("coach: text generation failed")
		metrics.CoachRequestsTotal.WithLabelValues(kind, "error").Inc()
		return "Error calling AI: " + err.Error()
	}

	logrus.WithFields(logrus.Fields{
		"kind":     kind,
		"duration": time.Since(start).String(),
	}).Debug("coach: text generated")
	metrics.CoachRequestsTotal.WithLabelValues(kind, "success").Inc()

	return text
}

// Enabled reports whether live generation is available.
func (s *Generator) Enabled() bool {
	return s.Client.Configured()
}
