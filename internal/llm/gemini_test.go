package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestGeminiModelAliases(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"gemini-flash", "gemini-flash-latest"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-2.5-flash", "gemini-2.5-flash"}, // pass-through
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, resolveModel(tt.input, geminiAliases), "input %q", tt.input)
	}
}

func TestGeminiSchemaTranslation(t *testing.T) {
	// The batch envelope shape: an object wrapping an array of objects.
	def := map[string]any{
		"type":        "object",
		"description": "A batch of generated questions",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "object"},
			},
		},
		"required": []any{"questions"},
	}

	schema := geminiSchema(def)

	assert.Equal(t, genai.TypeObject, schema.Type)
	assert.Equal(t, "A batch of generated questions", schema.Description)
	assert.Equal(t, []string{"questions"}, schema.Required)

	questions := schema.Properties["questions"]
	require.NotNil(t, questions)
	assert.Equal(t, genai.TypeArray, questions.Type)
	require.NotNil(t, questions.Items)
	assert.Equal(t, genai.TypeObject, questions.Items.Type)
}

func TestGeminiSchemaEnumAndScalars(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"text":    map[string]any{"type": "string"},
			"ans":     map[string]any{"type": "integer"},
			"flagged": map[string]any{"type": "boolean"},
			"verdict": map[string]any{"type": "string", "enum": []any{"True", "False", "Cannot Say"}},
			"unknown": map[string]any{"type": "blob"},
		},
	}

	schema := geminiSchema(def)

	assert.Equal(t, genai.TypeString, schema.Properties["text"].Type)
	assert.Equal(t, genai.TypeInteger, schema.Properties["ans"].Type)
	assert.Equal(t, genai.TypeBoolean, schema.Properties["flagged"].Type)
	assert.Equal(t, []string{"True", "False", "Cannot Say"}, schema.Properties["verdict"].Enum)
	// Unrecognised types degrade to string rather than failing the request.
	assert.Equal(t, genai.TypeString, schema.Properties["unknown"].Type)
}

func TestGeminiRequiresAPIKey(t *testing.T) {
	_, err := NewGeminiProvider(t.Context(), GeminiConfig{Model: DefaultGeminiModel})
	require.Error(t, err)
}
