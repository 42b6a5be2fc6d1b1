package openai

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/chriscow/charla/pkg/ai"
	"github.com/chriscow/charla/pkg/ai/tts"
	openai "github.com/sashabaranov/go-openai"
)

// maxSpeechBytes bounds how much audio is buffered for one reply.
const maxSpeechBytes = 8 << 20

// OpenAITTS implements tts.Synthesizer using OpenAI's speech endpoint.
// The voices are multilingual, so the language code is not sent.
type OpenAITTS struct {
	client *openai.Client
	model  string
	voice  string
	logger *slog.Logger
}

// NewOpenAITTS wraps client with a default model and voice.
func NewOpenAITTS(client *openai.Client, model, voice string, logger *slog.Logger) *OpenAITTS {
	if model == "" {
		model = string(openai.TTSModel1)
	}
	if voice == "" {
		voice = string(openai.VoiceNova)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &OpenAITTS{client: client, model: model, voice: voice, logger: logger}
}

// Synthesize returns MP3 audio for req.Text.
func (o *OpenAITTS) Synthesize(ctx context.Context, req tts.SynthesizeRequest) ([]byte, error) {
	start := time.Now()
	voice := o.getVoice(req.Voice)

	speechReq := openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(o.model),
		Input:          req.Text,
		Voice:          openai.SpeechVoice(voice),
		ResponseFormat: openai.SpeechResponseFormatMp3,
	}
	if req.Speed > 0 {
		speechReq.Speed = float64(req.Speed)
	}

	resp, err := o.client.CreateSpeech(ctx, speechReq)
	if err != nil {
		return nil, classify(err, "speech request failed")
	}
	defer resp.Close()

	audio, err := io.ReadAll(io.LimitReader(resp, maxSpeechBytes))
	if err != nil {
		return nil, ai.NewRecoverableError(err, "read speech response")
	}

	o.logger.Debug("OpenAI speech synthesis finished",
		slog.String("voice", voice),
		slog.Int("bytes", len(audio)),
		slog.Duration("duration", time.Since(start)))
	return audio, nil
}

// getVoice returns the voice to use, preferring request voice over default
func (o *OpenAITTS) getVoice(requestVoice string) string {
	if requestVoice != "" {
		return requestVoice
	}
	return o.voice
}

// Capabilities returns the OpenAI TTS provider's capabilities
func (o *OpenAITTS) Capabilities() tts.Capabilities {
	return tts.Capabilities{
		MIMEType:           "audio/mpeg",
		SupportedLanguages: []string{"es", "en", "fr", "de", "it", "pt"},
		SupportedVoices:    []string{"alloy", "echo", "fable", "onyx", "nova", "shimmer"},
	}
}
