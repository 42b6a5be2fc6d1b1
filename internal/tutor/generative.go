package tutor

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/chriscow/charla/internal/conversation"
	"github.com/chriscow/charla/pkg/ai"
	"github.com/chriscow/charla/pkg/ai/llm"
)

const (
	// DefaultHistoryTurns is how many prior turns go into a prompt.
	DefaultHistoryTurns = 5
	// DefaultGenerateTimeout bounds one generator call.
	DefaultGenerateTimeout = 60 * time.Second

	// NoTextReply is used when the generator answers without text.
	NoTextReply = "Lo siento, no puedo responder en este momento."
	// UnavailableReply is used when the generator fails or times out.
	UnavailableReply = "Lo siento, tuve un problema técnico. Por favor, inténtalo de nuevo."
)

// GenerativeOptions configures a GenerativeEngine.
type GenerativeOptions struct {
	Model        string
	Timeout      time.Duration
	HistoryTurns int
	Logger       *slog.Logger
}

// GenerativeEngine composes a tutoring prompt and delegates to an
// llm.Generator. Generator failures never reach the caller.
type GenerativeEngine struct {
	gen     llm.Generator
	model   string
	timeout time.Duration
	turns   int
	logger  *slog.Logger
}

// NewGenerativeEngine wraps gen.
func NewGenerativeEngine(gen llm.Generator, opts GenerativeOptions) *GenerativeEngine {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultGenerateTimeout
	}
	if opts.HistoryTurns <= 0 {
		opts.HistoryTurns = DefaultHistoryTurns
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &GenerativeEngine{
		gen:     gen,
		model:   opts.Model,
		timeout: opts.Timeout,
		turns:   opts.HistoryTurns,
		logger:  opts.Logger,
	}
}

func (e *GenerativeEngine) Name() string { return "generative" }

// HistoryTurns returns the prompt history bound.
func (e *GenerativeEngine) HistoryTurns() int { return e.turns }

// Respond builds the prompt and calls the generator with a timeout.
func (e *GenerativeEngine) Respond(ctx context.Context, req Request) (string, error) {
	level := ParseLevel(string(req.Level))
	topic := ParseTopic(string(req.Topic))
	prompt := BuildPrompt(level, topic, req.History, req.Message, e.turns)

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	start := time.Now()
	resp, err := e.gen.Generate(ctx, llm.GenerateRequest{Prompt: prompt, Model: e.model})
	if err != nil {
		recordGeneratorFailure()
		e.logger.Error("Error calling text generator",
			slog.String("class", ai.Classify(err)),
			slog.Duration("elapsed", time.Since(start)),
			slog.String("error", err.Error()))
		return UnavailableReply, nil
	}

	text := strings.TrimSpace(resp.Text)
	if !resp.HasText || text == "" {
		recordGeneratorNoText()
		e.logger.Warn("Text generator returned no text", slog.String("model", resp.Model))
		return NoTextReply, nil
	}

	e.logger.Debug("Generated reply",
		slog.String("model", resp.Model),
		slog.Int("tokens", resp.TokensUsed),
		slog.Duration("elapsed", time.Since(start)))
	return text, nil
}

// BuildPrompt renders the instruction block, the last maxTurns turns of
// history and the pending user message, ending with an open
// "Assistant:" line for the generator to complete.
func BuildPrompt(level Level, topic Topic, history []conversation.Turn, message string, maxTurns int) string {
	var b strings.Builder

	b.WriteString(level.Instruction())
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "You're having a conversation in Spanish about %s.\n", topic.Description())
	b.WriteString("Respond in Spanish, keep your responses natural and conversational.\n")
	fmt.Fprintf(&b, "Use appropriate Spanish vocabulary and grammar for the %s level.\n", level)
	b.WriteString("Keep responses concise (2-4 sentences).\n\n")

	if maxTurns > 0 && len(history) > maxTurns {
		history = history[len(history)-maxTurns:]
	} else if maxTurns <= 0 {
		history = nil
	}
	for _, turn := range history {
		if turn.Role == llm.RoleUser {
			fmt.Fprintf(&b, "User: %s\n", turn.Content)
		} else {
			fmt.Fprintf(&b, "Assistant: %s\n", turn.Content)
		}
	}

	fmt.Fprintf(&b, "User: %s\nAssistant:", message)
	return b.String()
}
