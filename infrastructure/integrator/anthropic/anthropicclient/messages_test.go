package anthropicclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsvue/performance-coach-api/internal/config"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		AICoach: config.AICoach{
			APIKey:                "test-key",
			BaseURL:               baseURL,
			Version:               "2023-06-01",
			Model:                 "claude-sonnet-4-20250514",
			MaxTokens:             1024,
			RequestTimeoutSeconds: 5,
		},
	}
}

func TestCreateMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload struct {
			Model     string `json:"model"`
			MaxTokens int    `json:"max_tokens"`
			System    string `json:"system"`
			Messages  []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "claude-sonnet-4-20250514", payload.Model)
		assert.Equal(t, 1024, payload.MaxTokens)
		assert.Equal(t, "You are a coach.", payload.System)
		require.Len(t, payload.Messages, 1)
		assert.Equal(t, "user", payload.Messages[0].Role)
		assert.Equal(t, "Summarise my month.", payload.Messages[0].Content)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"Here is your summary."}]}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	text, err := client.CreateMessage(context.Background(), "You are a coach.", "Summarise my month.")

	require.NoError(t, err)
	assert.Equal(t, "Here is your summary.", text)
}

func TestCreateMessage_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"type":"error","error":{"type":"authentication_error","message":"invalid x-api-key"}}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	_, err := client.CreateMessage(context.Background(), "", "hello")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "authentication_error")
	assert.Contains(t, err.Error(), "invalid x-api-key")
}

func TestCreateMessage_ErrorStatusWithoutBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	_, err := client.CreateMessage(context.Background(), "", "hello")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestCreateMessage_EmptyContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"content":[]}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	_, err := client.CreateMessage(context.Background(), "", "hello")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty response")
}

func TestCreateMessage_NotConfigured(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not reach the API without a key")
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	cfg.AICoach.APIKey = ""
	client := NewClient(cfg)

	assert.False(t, client.Configured())

	_, err := client.CreateMessage(context.Background(), "", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestNewClientTimeout(t *testing.T) {
	client := NewClient(testConfig("http://localhost"))
	assert.Equal(t, 5*time.Second, client.(*AnthropicClient).HTTPClient.Timeout)

	cfg := testConfig("http://localhost")
	cfg.AICoach.RequestTimeoutSeconds = 0
	client = NewClient(cfg)
	assert.Equal(t, 60*time.Second, client.(*AnthropicClient).HTTPClient.Timeout)
}
