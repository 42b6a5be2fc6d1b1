// Package server exposes the tutor over HTTP: a chat page, a JSON API and
// a websocket channel. Every request is tied to a session by cookie.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/chriscow/charla/internal/conversation"
	"github.com/chriscow/charla/internal/tutor"
	"github.com/chriscow/charla/pkg/ai/tts"
)

const (
	DefaultAddr       = ":5001"
	DefaultTTSTimeout = 15 * time.Second

	shutdownTimeout = 10 * time.Second
)

// Options configures a Server.
type Options struct {
	Addr        string
	Synthesizer tts.Synthesizer
	Language    string
	Voice       string
	TTSTimeout  time.Duration
	Logger      *slog.Logger
}

// Server serves the tutor over HTTP.
type Server struct {
	svc    *tutor.Service
	store  *conversation.Store
	synth  tts.Synthesizer
	opts   Options
	logger *slog.Logger
	mux    *http.ServeMux
}

// New creates a server for svc. store is only read for health reporting.
func New(svc *tutor.Service, store *conversation.Store, opts Options) *Server {
	if opts.Addr == "" {
		opts.Addr = DefaultAddr
	}
	if opts.Synthesizer == nil {
		opts.Synthesizer = tts.None{}
	}
	if opts.Language == "" {
		opts.Language = tts.DefaultLanguage
	}
	if opts.TTSTimeout <= 0 {
		opts.TTSTimeout = DefaultTTSTimeout
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	s := &Server{
		svc:    svc,
		store:  store,
		synth:  opts.Synthesizer,
		opts:   opts,
		logger: opts.Logger,
		mux:    http.NewServeMux(),
	}
	s.routes()
	publishSessions(store)
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /{$}", s.handleIndex)
	s.mux.HandleFunc("POST /api/chat", s.handleChat)
	s.mux.HandleFunc("POST /api/reset", s.handleReset)
	s.mux.HandleFunc("GET /api/options", s.handleOptions)
	s.mux.HandleFunc("GET /ws", s.handleWebSocket)
	s.mux.HandleFunc("GET /healthz", s.handleHealthz)
	s.mux.Handle("GET /metrics", metricsHandler())
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Run listens on the configured address until ctx is done, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.opts.Addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", slog.String("addr", s.opts.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// reply runs one exchange and renders its audio. The returned error is
// only non-nil when the exchange failed; reply text is always set.
func (s *Server) reply(ctx context.Context, key, message, level, topic string) (string, []byte, error) {
	text, err := s.svc.ProcessTurn(ctx, key, message, level, topic)
	if err != nil {
		return text, nil, err
	}

	ttsCtx, cancel := context.WithTimeout(ctx, s.opts.TTSTimeout)
	defer cancel()

	audio := tts.SynthesizeOrEmpty(ttsCtx, s.synth, tts.SynthesizeRequest{
		Text:     text,
		Language: s.opts.Language,
		Voice:    s.opts.Voice,
	}, s.logger)
	if len(audio) == 0 {
		recordSilentReply()
	}
	return text, audio, nil
}
