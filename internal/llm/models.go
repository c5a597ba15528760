package llm

// Canonical model IDs used as configuration defaults. These are real API
// model names, so cost lookup works on an out-of-box config.
const (
	DefaultAnthropicModel  = "claude-haiku-4-5"
	DefaultOpenAIModel     = "gpt-4o-mini"
	DefaultGeminiModel     = "gemini-flash-latest"
	DefaultOpenRouterModel = "google/gemini-2.0-flash-exp"
)

// Short aliases accepted in APTIQ_*_MODEL for convenience. Anything not in
// a map is passed to the provider unchanged, so full model IDs always work.
// OpenAI and OpenRouter take IDs verbatim and have no alias table.
var (
	anthropicAliases = map[string]string{
		"claude-haiku":  DefaultAnthropicModel,
		"claude-sonnet": "claude-sonnet-4-5",
	}

	geminiAliases = map[string]string{
		"gemini-flash": DefaultGeminiModel,
		"gemini-pro":   "gemini-2.5-pro",
	}
)

func resolveModel(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}
