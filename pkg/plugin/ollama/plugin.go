package ollama

import (
	"github.com/chriscow/charla/pkg/plugin"
)

func newOllama(cfg plugin.Config) (any, error) {
	return New(cfg.String("base_url", DefaultBaseURL), cfg.String("model", DefaultModel)), nil
}

func init() {
	plugin.RegisterWithMetadata(&plugin.Plugin{
		Kind:        plugin.KindLLM,
		Name:        "ollama",
		Factory:     newOllama,
		Description: "Local Ollama server (/api/generate)",
		Version:     "1.0.0",
		Config: map[string]any{
			"base_url": DefaultBaseURL,
			"model":    DefaultModel,
		},
	})
}
