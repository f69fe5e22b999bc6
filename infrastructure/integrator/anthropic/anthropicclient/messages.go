package anthropicclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
)

type messageParam struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messageRequest struct {
	Model     string         `json:"model"`
	MaxTokens int            `json:"max_tokens"`
	System    string         `json:"system,omitempty"`
	Messages  []messageParam `json:"messages"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type messageResponse struct {
	Content []contentBlock `json:"content"`
}

type errorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// CreateMessage sends a single-turn message to the Anthropic Messages API and
// returns the text of the first content block.
func (c *AnthropicClient) CreateMessage(ctx context.Context, system, prompt string) (string, error) {
	if !c.Configured() {
		return "", errors.New("anthropic API key not configured")
	}

	payload := messageRequest{
		Model:     c.Cfg.AICoach.Model,
		MaxTokens: c.Cfg.AICoach.MaxTokens,
		System:    system,
		Messages: []messageParam{
			{Role: "user", Content: prompt},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/messages", c.Cfg.AICoach.BaseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		logrus.WithError(err).Error("Failed to create Anthropic request")
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.Cfg.AICoach.APIKey)
	req.Header.Set("anthropic-version", c.Cfg.AICoach.Version)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Failed to call Anthropic API")
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr errorResponse
		if err := json.Unmarshal(raw, &apiErr); err == nil && apiErr.Error.Message != "" {
			return "", fmt.Errorf("anthropic API error (%s): %s", apiErr.Error.Type, apiErr.Error.Message)
		}
		return "", fmt.Errorf("anthropic API returned status %d", resp.StatusCode)
	}

	var response messageResponse
	if err := json.Unmarshal(raw, &response); err != nil {
		logrus.WithError(err).Error("Failed to decode Anthropic response")
		return "", err
	}

	if len(response.Content) == 0 {
		return "", errors.New("empty response from Anthropic API")
	}

	return response.Content[0].Text, nil
}
