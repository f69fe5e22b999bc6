package anthropicclient

import (
	"context"
	"net/http"
	"time"

	"github.com/opsvue/performance-coach-api/internal/config"
)

type Client interface {
	CreateMessage(ctx context.Context, system, prompt string) (string, error)
	Configured() bool
}

type AnthropicClient struct {
	Cfg        *config.Config
	HTTPClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	timeout := time.Duration(cfg.AICoach.RequestTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &AnthropicClient{
		Cfg:        cfg,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// Configured reports whether an API key is present
func (c *AnthropicClient) Configured() bool {
	return c.Cfg.AICoach.APIKey != ""
}
