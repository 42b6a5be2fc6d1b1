package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/chriscow/charla/pkg/ai"
	"github.com/chriscow/charla/pkg/ai/llm"
	openai "github.com/sashabaranov/go-openai"
)

const defaultChatModel = openai.GPT4oMini

// OpenAILLM implements llm.Generator with the chat completions API. The
// composed prompt is sent as a single user message.
type OpenAILLM struct {
	client *openai.Client
	model  string
	logger *slog.Logger
}

// NewOpenAILLM wraps client. An empty model selects gpt-4o-mini.
func NewOpenAILLM(client *openai.Client, model string, logger *slog.Logger) *OpenAILLM {
	if model == "" {
		model = defaultChatModel
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &OpenAILLM{client: client, model: model, logger: logger}
}

// Generate completes req.Prompt.
func (o *OpenAILLM) Generate(ctx context.Context, req llm.GenerateRequest) (llm.GenerateResponse, error) {
	model := req.Model
	if model == "" {
		model = o.model
	}
	start := time.Now()

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	})
	if err != nil {
		return llm.GenerateResponse{}, classify(err, "chat completion request failed")
	}

	if len(resp.Choices) == 0 {
		o.logger.Warn("OpenAI returned no completion choices", slog.String("model", model))
		return llm.GenerateResponse{Model: resp.Model}, nil
	}

	choice := resp.Choices[0]
	o.logger.Debug("OpenAI chat completion finished",
		slog.String("model", resp.Model),
		slog.Int("tokens", resp.Usage.TotalTokens),
		slog.Duration("duration", time.Since(start)))

	return llm.GenerateResponse{
		Text:       choice.Message.Content,
		HasText:    true,
		Model:      resp.Model,
		TokensUsed: resp.Usage.TotalTokens,
	}, nil
}

// Capabilities returns the OpenAI provider's capabilities.
func (o *OpenAILLM) Capabilities() llm.Capabilities {
	return llm.Capabilities{
		DefaultModel:    o.model,
		SupportedModels: []string{openai.GPT4oMini, openai.GPT4o, openai.GPT3Dot5Turbo},
	}
}

// classify maps go-openai errors onto the shared recoverable/fatal split.
func classify(err error, message string) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return ai.NewRecoverableError(err, message)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return byStatus(apiErr.HTTPStatusCode, err, message)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return byStatus(reqErr.HTTPStatusCode, err, message)
	}
	return ai.NewRecoverableError(err, message)
}

func byStatus(status int, err error, message string) error {
	if status == http.StatusTooManyRequests || status >= 500 {
		return ai.NewRecoverableError(err, message)
	}
	return ai.NewFatalError(fmt.Errorf("status %d: %w", status, err), message)
}
