// Package llm gives the question generator a uniform way to talk to hosted
// language models. A Provider hides which vendor is behind it; middleware
// adds retries and structured logging around any Provider.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is the single abstraction consumers program against. The
// augmenter holds one and never knows which vendor serves it.
type Provider interface {
	// Generate runs one completion. When req.Schema is set the provider
	// asks for schema-conforming JSON through its native structured-output
	// mechanism and validates the reply before returning it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the model this provider was configured with.
	ModelID() string
}

// Request is one generation call.
type Request struct {
	// System sets the model's role. The augmenter puts its psychometrician
	// persona here.
	System string

	// Messages is the turn history. Question generation is single-turn, so
	// this is one user message in practice.
	Messages []Message

	// Schema, when set, constrains the reply shape via the provider's
	// structured-output support and is enforced on the way back. Nil means
	// free-form text.
	Schema *Schema

	// MaxTokens caps the reply length.
	MaxTokens int

	// Temperature in [0,1]; zero means deterministic.
	Temperature float64
}

// Message is one conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the sender of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names and defines a JSON shape the reply must satisfy. Name is
// kebab-case (it doubles as the vendor-side schema/tool name), e.g.
// "question-batch".
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Response is the provider's reply.
type Response struct {
	// Content is the model output. With a Schema it is validated JSON;
	// without one it is the raw text.
	Content json.RawMessage

	// Usage reports token consumption for this call.
	Usage Usage

	// Model is the model that actually served the request, which may be a
	// dated snapshot of the configured alias.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage is the token accounting for one call.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
