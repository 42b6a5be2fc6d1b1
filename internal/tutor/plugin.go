package tutor

import (
	"fmt"
	"log/slog"

	"github.com/chriscow/charla/pkg/ai/llm"
	"github.com/chriscow/charla/pkg/plugin"
)

func newRuleEngine(cfg plugin.Config) (any, error) {
	logger := cfg.Logger()

	var table *ResponseTable
	if path := cfg.String("tables", ""); path != "" {
		t, err := LoadTableFile(path)
		if err != nil {
			return nil, err
		}
		logger.Info("Loaded response tables", slog.String("path", path), slog.Int("topics", len(t.Topics)))
		table = t
	}

	var picker Picker
	if seed := cfg.Int64("seed", 0); seed != 0 {
		picker = NewRandPicker(seed)
	}
	if p, ok := cfg["picker"].(Picker); ok {
		picker = p
	}

	return NewRuleEngine(table, picker, logger), nil
}

func newGenerativeEngine(cfg plugin.Config) (any, error) {
	gen, ok := cfg["generator"].(llm.Generator)
	if !ok || gen == nil {
		return nil, fmt.Errorf("generative engine requires a text generator")
	}
	return NewGenerativeEngine(gen, GenerativeOptions{
		Model:        cfg.String("model", ""),
		Timeout:      cfg.Duration("timeout", DefaultGenerateTimeout),
		HistoryTurns: cfg.Int("history_turns", DefaultHistoryTurns),
		Logger:       cfg.Logger(),
	}), nil
}

// NewEngine builds the engine registered under name.
func NewEngine(name string, cfg plugin.Config) (Engine, error) {
	instance, err := plugin.Create(plugin.KindEngine, name, cfg)
	if err != nil {
		return nil, err
	}
	engine, ok := instance.(Engine)
	if !ok {
		return nil, fmt.Errorf("plugin %s/%s is not an engine", plugin.KindEngine, name)
	}
	return engine, nil
}

func init() {
	plugin.RegisterWithMetadata(&plugin.Plugin{
		Kind:        plugin.KindEngine,
		Name:        "rules",
		Factory:     newRuleEngine,
		Description: "Keyword tables with topic and global defaults",
		Version:     "1.0.0",
		Config: map[string]any{
			"tables": "optional HJSON response table file",
			"seed":   "random seed (0 = clock)",
		},
	})

	plugin.RegisterWithMetadata(&plugin.Plugin{
		Kind:        plugin.KindEngine,
		Name:        "generative",
		Factory:     newGenerativeEngine,
		Description: "Prompt composition over an llm plugin",
		Version:     "1.0.0",
		Config: map[string]any{
			"timeout":       DefaultGenerateTimeout.String(),
			"history_turns": DefaultHistoryTurns,
			"model":         "override the llm plugin's model",
		},
	})
}
