package fake

import (
	"context"
	"sync"

	"github.com/chriscow/charla/pkg/ai/tts"
	"github.com/chriscow/charla/pkg/audio/wav"
)

const sampleRate = 16000

// FakeTTS is a fake TTS implementation for testing. It renders a short
// tone whose length grows with the text.
type FakeTTS struct {
	mu       sync.Mutex
	err      error
	panicV   any
	requests []tts.SynthesizeRequest
}

// NewFakeTTS creates a new fake TTS provider.
func NewFakeTTS() *FakeTTS {
	return &FakeTTS{}
}

// NewFailingTTS creates a fake TTS provider that always fails with err.
func NewFailingTTS(err error) *FakeTTS {
	return &FakeTTS{err: err}
}

// NewPanickingTTS creates a fake TTS provider whose Synthesize panics with v.
func NewPanickingTTS(v any) *FakeTTS {
	return &FakeTTS{panicV: v}
}

// Synthesize generates a sine-wave WAV for the given text.
func (f *FakeTTS) Synthesize(ctx context.Context, req tts.SynthesizeRequest) ([]byte, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()

	if f.panicV != nil {
		panic(f.panicV)
	}
	if f.err != nil {
		return nil, f.err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// 20ms of tone per character, capped at two seconds
	durationMs := len([]rune(req.Text)) * 20
	if durationMs > 2000 {
		durationMs = 2000
	}

	w := wav.NewWriter(sampleRate, 1)
	w.WriteSineWave(440.0, durationMs)
	return w.Bytes(), nil
}

// Requests returns every request received so far.
func (f *FakeTTS) Requests() []tts.SynthesizeRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]tts.SynthesizeRequest(nil), f.requests...)
}

// Capabilities returns the fake TTS capabilities.
func (f *FakeTTS) Capabilities() tts.Capabilities {
	return tts.Capabilities{
		MIMEType:           "audio/wav",
		SupportedLanguages: []string{"es", "en"},
		SupportedVoices:    []string{"fake-voice"},
	}
}
