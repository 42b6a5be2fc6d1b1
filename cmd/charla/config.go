package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/chriscow/charla/internal/conversation"
	"github.com/chriscow/charla/internal/server"
	"github.com/chriscow/charla/internal/tutor"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	cfgFile  string
	logLevel = new(slog.LevelVar)
)

func setDefaults() {
	viper.SetDefault("server.addr", server.DefaultAddr)
	viper.SetDefault("engine", "rules")

	viper.SetDefault("llm.provider", "ollama")
	viper.SetDefault("llm.base_url", "")
	viper.SetDefault("llm.model", "")
	viper.SetDefault("llm.api_key", "")
	viper.SetDefault("generative.timeout", tutor.DefaultGenerateTimeout)
	viper.SetDefault("generative.history_turns", tutor.DefaultHistoryTurns)

	viper.SetDefault("tts.provider", "google")
	viper.SetDefault("tts.language", "es")
	viper.SetDefault("tts.voice", "")
	viper.SetDefault("tts.timeout", server.DefaultTTSTimeout)

	viper.SetDefault("store.max_sessions", conversation.DefaultMaxSessions)
	viper.SetDefault("store.idle_ttl", conversation.DefaultIdleTTL)
	viper.SetDefault("store.cleanup_interval", 5*time.Minute)

	viper.SetDefault("rules.tables", "")
	viper.SetDefault("rules.seed", 0)

	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "json")
}

// initConfig reads the config file and CHARLA_* environment variables.
// A config file is watched so that log.level can change without a restart.
func initConfig() {
	setDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".charla")
	}

	viper.SetEnvPrefix("CHARLA")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
			os.Exit(1)
		}
		return
	}

	viper.OnConfigChange(func(e fsnotify.Event) {
		level := parseLevel(viper.GetString("log.level"))
		if level != logLevel.Level() {
			logLevel.Set(level)
			slog.Info("Log level changed",
				slog.String("file", e.Name),
				slog.String("level", level.String()))
		}
	})
	viper.WatchConfig()
}

func bindFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("bind flag %s: %v", key, err))
	}
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func setupLogger() *slog.Logger {
	logLevel.Set(parseLevel(viper.GetString("log.level")))
	opts := &slog.HandlerOptions{Level: logLevel}

	var handler slog.Handler
	switch viper.GetString("log.format") {
	case "console", "text":
		handler = slog.NewTextHandler(os.Stderr, opts)
	default:
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
