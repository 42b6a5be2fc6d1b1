package tts

import (
	"context"
	"log/slog"
	"strings"

	"github.com/chriscow/charla/pkg/ai"
)

// TTS-specific aliases of the shared classification errors.
var (
	// ErrRecoverable indicates a temporary synthesis failure.
	// Examples: service overload, network issues.
	ErrRecoverable = ai.ErrRecoverable

	// ErrFatal indicates a permanent synthesis failure.
	// Examples: unsupported language, invalid API key.
	ErrFatal = ai.ErrFatal
)

// DefaultLanguage is the language code used when a request leaves it empty.
const DefaultLanguage = "es"

// SynthesizeRequest contains parameters for text-to-speech synthesis.
type SynthesizeRequest struct {
	Text     string
	Language string
	Voice    string
	Speed    float32
}

// Capabilities describes a TTS provider.
type Capabilities struct {
	MIMEType           string
	SupportedLanguages []string
	SupportedVoices    []string
}

// Synthesizer is the main interface for text-to-speech providers.
type Synthesizer interface {
	// Synthesize renders text as a complete audio file.
	Synthesize(ctx context.Context, req SynthesizeRequest) ([]byte, error)

	// Capabilities returns the provider's capabilities.
	Capabilities() Capabilities
}

// SynthesizeOrEmpty calls s and swallows any failure, panics included,
// returning nil audio. Audio is best effort: callers deliver the text reply
// regardless.
func SynthesizeOrEmpty(ctx context.Context, s Synthesizer, req SynthesizeRequest, logger *slog.Logger) (audio []byte) {
	if s == nil || strings.TrimSpace(req.Text) == "" {
		return nil
	}
	if req.Language == "" {
		req.Language = DefaultLanguage
	}
	if logger == nil {
		logger = slog.Default()
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Text to speech conversion panicked",
				slog.String("language", req.Language),
				slog.Any("panic", r))
			audio = nil
		}
	}()

	audio, err := s.Synthesize(ctx, req)
	if err != nil {
		logger.Error("Text to speech conversion failed",
			slog.String("language", req.Language),
			slog.String("class", ai.Classify(err)),
			slog.String("error", err.Error()))
		return nil
	}
	return audio
}

// None is a Synthesizer that never produces audio.
type None struct{}

// Synthesize always returns empty audio.
func (None) Synthesize(context.Context, SynthesizeRequest) ([]byte, error) {
	return nil, nil
}

// Capabilities returns an empty capability set.
func (None) Capabilities() Capabilities {
	return Capabilities{}
}
