// Package openai registers OpenAI-backed text generation and speech
// synthesis plugins.
package openai

import (
	"fmt"
	"os"

	"github.com/chriscow/charla/pkg/plugin"
	openai "github.com/sashabaranov/go-openai"
)

// newClient builds a go-openai client from api_key (or OPENAI_API_KEY) and
// an optional base_url for OpenAI-compatible servers.
func newClient(cfg plugin.Config) (*openai.Client, error) {
	apiKey := cfg.String("api_key", os.Getenv("OPENAI_API_KEY"))
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required (set OPENAI_API_KEY environment variable or provide api_key in config)")
	}

	clientCfg := openai.DefaultConfig(apiKey)
	if base := cfg.String("base_url", ""); base != "" {
		clientCfg.BaseURL = base
	}
	return openai.NewClientWithConfig(clientCfg), nil
}

func newOpenAILLM(cfg plugin.Config) (any, error) {
	client, err := newClient(cfg)
	if err != nil {
		return nil, err
	}
	return NewOpenAILLM(client, cfg.String("model", ""), cfg.Logger()), nil
}

func newOpenAITTS(cfg plugin.Config) (any, error) {
	client, err := newClient(cfg)
	if err != nil {
		return nil, err
	}
	return NewOpenAITTS(client, cfg.String("model", ""), cfg.String("voice", ""), cfg.Logger()), nil
}

func init() {
	plugin.RegisterWithMetadata(&plugin.Plugin{
		Kind:        plugin.KindLLM,
		Name:        "openai",
		Factory:     newOpenAILLM,
		Description: "OpenAI chat completion service",
		Version:     "1.0.0",
		Config: map[string]any{
			"api_key":  "OpenAI API key (or set OPENAI_API_KEY env var)",
			"base_url": "optional OpenAI-compatible endpoint",
			"model":    defaultChatModel,
		},
	})

	plugin.RegisterWithMetadata(&plugin.Plugin{
		Kind:        plugin.KindTTS,
		Name:        "openai",
		Factory:     newOpenAITTS,
		Description: "OpenAI text-to-speech service",
		Version:     "1.0.0",
		Config: map[string]any{
			"api_key": "OpenAI API key (or set OPENAI_API_KEY env var)",
			"model":   "tts-1",
			"voice":   "nova",
		},
	})
}
