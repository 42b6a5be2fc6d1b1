package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/chriscow/charla/internal/conversation"
	"github.com/chriscow/charla/internal/tutor"
	"github.com/chriscow/charla/pkg/ai/llm"
	"github.com/chriscow/charla/pkg/ai/tts"
	"github.com/chriscow/charla/pkg/plugin"
	"github.com/spf13/viper"
)

type pinger interface {
	Ping(ctx context.Context) error
}

func newStore() *conversation.Store {
	return conversation.NewStore(conversation.Options{
		MaxSessions: viper.GetInt("store.max_sessions"),
		IdleTTL:     viper.GetDuration("store.idle_ttl"),
	})
}

func newGenerator(ctx context.Context, logger *slog.Logger) (llm.Generator, error) {
	provider := viper.GetString("llm.provider")
	instance, err := plugin.Create(plugin.KindLLM, provider, plugin.Config{
		"base_url": viper.GetString("llm.base_url"),
		"model":    viper.GetString("llm.model"),
		"api_key":  viper.GetString("llm.api_key"),
		"logger":   logger,
	})
	if err != nil {
		return nil, err
	}
	gen, ok := instance.(llm.Generator)
	if !ok {
		return nil, fmt.Errorf("plugin %s/%s is not a text generator", plugin.KindLLM, provider)
	}

	if p, ok := gen.(pinger); ok {
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		if err := p.Ping(pingCtx); err != nil {
			logger.Warn("Text generator is not reachable yet",
				slog.String("provider", provider),
				slog.String("error", err.Error()))
		}
	}

	logger.Info("Text generator ready",
		slog.String("provider", provider),
		slog.String("model", gen.Capabilities().DefaultModel))
	return gen, nil
}

func newSynthesizer(logger *slog.Logger) (tts.Synthesizer, error) {
	provider := viper.GetString("tts.provider")
	instance, err := plugin.Create(plugin.KindTTS, provider, plugin.Config{
		"voice":   viper.GetString("tts.voice"),
		"api_key": viper.GetString("llm.api_key"),
		"logger":  logger,
	})
	if err != nil {
		return nil, err
	}
	synth, ok := instance.(tts.Synthesizer)
	if !ok {
		return nil, fmt.Errorf("plugin %s/%s is not a synthesizer", plugin.KindTTS, provider)
	}
	return synth, nil
}

// newEngine builds the configured engine. A rule engine backed by a table
// file reloads the file when it changes.
func newEngine(ctx context.Context, logger *slog.Logger) (tutor.Engine, error) {
	name := viper.GetString("engine")
	cfg := plugin.Config{
		"tables":        viper.GetString("rules.tables"),
		"seed":          viper.GetInt64("rules.seed"),
		"model":         viper.GetString("llm.model"),
		"timeout":       viper.GetDuration("generative.timeout"),
		"history_turns": viper.GetInt("generative.history_turns"),
		"logger":        logger,
	}

	if name == "generative" {
		gen, err := newGenerator(ctx, logger)
		if err != nil {
			return nil, fmt.Errorf("text generator: %w", err)
		}
		cfg["generator"] = gen
	}

	engine, err := tutor.NewEngine(name, cfg)
	if err != nil {
		return nil, err
	}

	if re, ok := engine.(*tutor.RuleEngine); ok {
		if path := viper.GetString("rules.tables"); path != "" {
			if err := tutor.WatchTables(ctx, path, re, logger); err != nil {
				logger.Warn("Response tables will not be reloaded", slog.String("error", err.Error()))
			}
		}
	}
	return engine, nil
}
