// Package fake registers the fake text generator and synthesizers, plus
// the "none" synthesizer that disables audio.
package fake

import (
	llmfake "github.com/chriscow/charla/pkg/ai/llm/fake"
	"github.com/chriscow/charla/pkg/ai/tts"
	ttsfake "github.com/chriscow/charla/pkg/ai/tts/fake"
	"github.com/chriscow/charla/pkg/plugin"
)

// newFakeLLM creates a new fake generator from configuration.
func newFakeLLM(cfg plugin.Config) (any, error) {
	var responses []string
	switch r := cfg["responses"].(type) {
	case []string:
		responses = r
	case []any:
		for _, v := range r {
			if s, ok := v.(string); ok {
				responses = append(responses, s)
			}
		}
	}
	return llmfake.NewFakeLLM(responses...), nil
}

func newFakeTTS(plugin.Config) (any, error) {
	return ttsfake.NewFakeTTS(), nil
}

func newNoneTTS(plugin.Config) (any, error) {
	return tts.None{}, nil
}

func init() {
	plugin.RegisterWithMetadata(&plugin.Plugin{
		Kind:        plugin.KindLLM,
		Name:        "fake",
		Factory:     newFakeLLM,
		Description: "Fake text generator for testing and development",
		Version:     "1.0.0",
		Config: map[string]any{
			"responses": []string{"List of predefined responses"},
		},
	})

	plugin.RegisterWithMetadata(&plugin.Plugin{
		Kind:        plugin.KindTTS,
		Name:        "fake",
		Factory:     newFakeTTS,
		Description: "Fake synthesizer producing a WAV tone",
		Version:     "1.0.0",
		Config:      map[string]any{},
	})

	plugin.RegisterWithMetadata(&plugin.Plugin{
		Kind:        plugin.KindTTS,
		Name:        "none",
		Factory:     newNoneTTS,
		Description: "Disables speech synthesis",
		Version:     "1.0.0",
		Config:      map[string]any{},
	})
}
