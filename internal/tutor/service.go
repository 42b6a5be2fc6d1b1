package tutor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/chriscow/charla/internal/conversation"
)

// ErrTurnFailed is returned by ProcessTurn when no reply could be produced.
var ErrTurnFailed = errors.New("turn processing failed")

// FailureReply accompanies ErrTurnFailed.
const FailureReply = "Lo siento, ha ocurrido un error."

// Service runs exchanges: it holds the session for the whole exchange,
// asks the engine for a reply and appends the user and assistant turns.
type Service struct {
	store  *conversation.Store
	engine Engine
	logger *slog.Logger
}

// NewService creates a Service.
func NewService(store *conversation.Store, engine Engine, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, engine: engine, logger: logger}
}

// Engine returns the configured engine.
func (s *Service) Engine() Engine {
	return s.engine
}

// ProcessTurn produces the reply to message. Unknown level and topic
// values are replaced by DefaultLevel and DefaultTopic. On failure it
// returns FailureReply together with an error wrapping ErrTurnFailed, and
// the session is left unchanged. A turn whose ctx ends before the reply is
// ready counts as failed.
func (s *Service) ProcessTurn(ctx context.Context, key, message, level, topic string) (reply string, err error) {
	req := Request{
		Message: message,
		Level:   ParseLevel(level),
		Topic:   ParseTopic(topic),
	}

	h := s.store.Acquire(key)
	defer h.Release()

	if hu, ok := s.engine.(HistoryUser); ok {
		req.History = h.History(hu.HistoryTurns())
	}

	reply, err = s.respond(ctx, req)
	if err == nil && ctx.Err() != nil {
		// the caller is gone; a fallback reply is not a real exchange
		err = ctx.Err()
	}
	if err != nil {
		recordTurnFailure()
		s.logger.Error("Error processing turn",
			slog.String("engine", s.engine.Name()),
			slog.String("error", err.Error()))
		return FailureReply, fmt.Errorf("%w: %v", ErrTurnFailed, err)
	}

	h.Append(conversation.UserTurn(message), conversation.AssistantTurn(reply))
	recordTurn()
	return reply, nil
}

// respond calls the engine, turning panics and empty replies into errors.
func (s *Service) respond(ctx context.Context, req Request) (reply string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("engine %s panicked: %v", s.engine.Name(), r)
		}
	}()

	reply, err = s.engine.Respond(ctx, req)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(reply) == "" {
		return "", fmt.Errorf("engine %s returned an empty reply", s.engine.Name())
	}
	return reply, nil
}

// ResetSession clears the session's history.
func (s *Service) ResetSession(key string) {
	s.store.Reset(key)
}

// History returns the session's full history.
func (s *Service) History(key string) []conversation.Turn {
	h := s.store.Acquire(key)
	defer h.Release()
	return h.History(-1)
}
