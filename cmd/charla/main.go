package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/chriscow/charla/internal/conversation"
	"github.com/chriscow/charla/internal/server"
	"github.com/chriscow/charla/internal/tutor"
	_ "github.com/chriscow/charla/pkg/plugin/fake"   // Import to register fake plugins
	_ "github.com/chriscow/charla/pkg/plugin/google" // Import to register Google TTS plugin
	_ "github.com/chriscow/charla/pkg/plugin/ollama" // Import to register Ollama plugin
	_ "github.com/chriscow/charla/pkg/plugin/openai" // Import to register OpenAI plugins
	"github.com/chriscow/charla/pkg/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "charla",
	Short: "Charla - a conversational Spanish tutor",
	Long: `charla holds short Spanish conversations with a learner at a chosen
level and topic, answering from keyword tables or a text generator and
reading each reply aloud.`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.GetVersionInfo())
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the chat page, JSON API and websocket",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := setupLogger()
		logger.Info("Starting tutor",
			slog.String("service", "charla"),
			slog.String("version", version.Version),
			slog.String("commit", version.GitCommit),
			slog.String("engine", viper.GetString("engine")),
			slog.String("addr", viper.GetString("server.addr")))

		// Create context that cancels on interrupt
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		return runServe(ctx, logger)
	},
}

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Practice in the terminal",
	Long: `Chat with the tutor on stdin. Lines starting with a slash are commands:
/level <name>, /topic <name>, /reset, /history and /quit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetString("level")
		topic, _ := cmd.Flags().GetString("topic")

		logger := setupLogger()

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		engine, err := newEngine(ctx, logger)
		if err != nil {
			return fmt.Errorf("failed to create engine: %w", err)
		}
		svc := tutor.NewService(newStore(), engine, logger)
		return runChat(ctx, svc, os.Stdin, os.Stdout, level, topic)
	},
}

func runServe(ctx context.Context, logger *slog.Logger) error {
	store := newStore()
	cleanup := conversation.NewCleanupService(store, viper.GetDuration("store.cleanup_interval"), logger)
	cleanup.Start(ctx)
	defer cleanup.Stop()

	engine, err := newEngine(ctx, logger)
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	synth, err := newSynthesizer(logger)
	if err != nil {
		return fmt.Errorf("failed to create synthesizer: %w", err)
	}

	srv := server.New(tutor.NewService(store, engine, logger), store, server.Options{
		Addr:        viper.GetString("server.addr"),
		Synthesizer: synth,
		Language:    viper.GetString("tts.language"),
		Voice:       viper.GetString("tts.voice"),
		TTSTimeout:  viper.GetDuration("tts.timeout"),
		Logger:      logger,
	})

	if err := srv.Run(ctx); err != nil {
		logger.Error("Server failed", slog.String("error", err.Error()))
		return err
	}
	logger.Info("Tutor stopped")
	return nil
}

var pluginCmd = &cobra.Command{
	Use:   "plugin",
	Short: "Plugin management commands",
}

var pluginListCmd = &cobra.Command{
	Use:   "list [kind]",
	Short: "List registered plugins",
	Long: `List all registered plugins or plugins of a specific kind.
Available kinds: engine, llm, tts`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := ""
		if len(args) > 0 {
			kind = args[0]
		}
		return listPlugins(os.Stdout, kind)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.charla.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "json", "Log format (json, console)")
	rootCmd.PersistentFlags().String("engine", "rules", "Response engine (rules, generative)")
	rootCmd.PersistentFlags().String("tables", "", "HJSON response table file for the rules engine")
	rootCmd.PersistentFlags().String("llm", "ollama", "Text generator plugin for the generative engine")
	rootCmd.PersistentFlags().String("model", "", "Text generator model")

	serveCmd.Flags().String("addr", server.DefaultAddr, "Address to listen on")
	serveCmd.Flags().String("tts", "google", "Speech synthesizer plugin (google, openai, fake, none)")

	chatCmd.Flags().String("level", string(tutor.DefaultLevel), "Starting level")
	chatCmd.Flags().String("topic", string(tutor.DefaultTopic), "Starting topic")

	bindFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	bindFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))
	bindFlag("engine", rootCmd.PersistentFlags().Lookup("engine"))
	bindFlag("rules.tables", rootCmd.PersistentFlags().Lookup("tables"))
	bindFlag("llm.provider", rootCmd.PersistentFlags().Lookup("llm"))
	bindFlag("llm.model", rootCmd.PersistentFlags().Lookup("model"))
	bindFlag("server.addr", serveCmd.Flags().Lookup("addr"))
	bindFlag("tts.provider", serveCmd.Flags().Lookup("tts"))

	pluginCmd.AddCommand(pluginListCmd)
	rootCmd.AddCommand(versionCmd, serveCmd, chatCmd, pluginCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
