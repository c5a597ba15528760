package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenRouterProvider(t *testing.T) {
	t.Run("requires API key", func(t *testing.T) {
		_, err := NewOpenRouterProvider(OpenRouterConfig{Model: DefaultOpenRouterModel})
		require.Error(t, err)
	})

	t.Run("namespaced model pass-through", func(t *testing.T) {
		// OpenRouter IDs are vendor-prefixed; no alias table applies.
		p, err := NewOpenRouterProvider(OpenRouterConfig{
			APIKey: "sk-or-test",
			Model:  "anthropic/claude-haiku-4.5",
		})
		require.NoError(t, err)
		assert.Equal(t, "anthropic/claude-haiku-4.5", p.ModelID())
	})

	t.Run("custom base URL", func(t *testing.T) {
		p, err := NewOpenRouterProvider(OpenRouterConfig{
			APIKey:  "sk-or-test",
			Model:   DefaultOpenRouterModel,
			BaseURL: "https://proxy.internal.example/v1",
		})
		require.NoError(t, err)
		assert.Equal(t, DefaultOpenRouterModel, p.ModelID())
	})
}
