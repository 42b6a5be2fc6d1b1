package llm

import (
	"context"

	"github.com/chriscow/charla/pkg/ai"
)

// LLM-specific aliases of the shared classification errors.
var (
	// ErrRecoverable indicates a temporary generator failure.
	// Examples: backend not running yet, timeout, 5xx response.
	ErrRecoverable = ai.ErrRecoverable

	// ErrFatal indicates a permanent generator failure.
	// Examples: invalid API key, unknown model.
	ErrFatal = ai.ErrFatal
)

// MessageRole represents the speaker of a conversation turn.
type MessageRole string

const (
	RoleSystem    MessageRole = "system"
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// Message represents a single message in a chat conversation.
type Message struct {
	Role    MessageRole
	Content string
}

// GenerateRequest contains parameters for a single prompt completion.
type GenerateRequest struct {
	Prompt string
	// Model overrides the provider's default model when non-empty.
	Model       string
	MaxTokens   int
	Temperature float32
}

// GenerateResponse contains the generated text.
type GenerateResponse struct {
	Text string
	// HasText is false when the backend answered but carried no text field.
	HasText    bool
	Model      string
	TokensUsed int
}

// Capabilities describes a text generator.
type Capabilities struct {
	DefaultModel    string
	SupportedModels []string
	Local           bool
}

// Generator is the main interface for text generation backends.
type Generator interface {
	// Generate completes a prompt. Deadlines are carried by ctx.
	Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, error)

	// Capabilities returns the provider's capabilities.
	Capabilities() Capabilities
}
