package anthropic

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/opsvue/performance-coach-api/infrastructure/integrator/anthropic/anthropicclient/mocks"
	"github.com/opsvue/performance-coach-api/internal/config"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(client *mocks.MockClient)
		expected string
	}{
		{
			name: "returns generated text",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().Configured().Return(true)
				client.EXPECT().
					CreateMessage(gomock.Any(), "system prompt", "user prompt").
					Return("Focus on first contact resolution this month.", nil)
			},
			expected: "Focus on first contact resolution this month.",
		},
		{
			name: "falls back when the key is missing",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().Configured().Return(false)
			},
			expected: FallbackNotConfigured,
		},
		{
			name: "degrades API errors into readable text",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().Configured().Return(true)
				client.EXPECT().
					CreateMessage(gomock.Any(), "system prompt", "user prompt").
					Return("", errors.New("anthropic API returned status 529"))
			},
			expected: "Error calling AI: anthropic API returned status 529",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mocks.NewMockClient(ctrl)
			tt.setup(client)

			svc := New(&config.Config{}, client)

			text := svc.Generate(context.Background(), "summary", "system prompt", "user prompt")

			assert.Equal(t, tt.expected, text)
		})
	}
}

func TestEnabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().Configured().Return(true)

	svc := New(&config.Config{}, client)

	assert.True(t, svc.Enabled())
}
