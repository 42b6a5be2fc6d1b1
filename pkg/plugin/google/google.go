// Package google registers a speech synthesizer backed by the Google
// Translate text-to-speech endpoint, the same service gTTS uses.
package google

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"unicode"

	"github.com/chriscow/charla/pkg/ai"
	"github.com/chriscow/charla/pkg/ai/tts"
	"github.com/chriscow/charla/pkg/plugin"
)

const (
	DefaultBaseURL = "https://translate.google.com"
	// maxChunk is the longest text the endpoint accepts per request.
	maxChunk = 200
)

// TranslateTTS fetches MP3 audio from the translate_tts endpoint.
type TranslateTTS struct {
	BaseURL string
	HTTP    *http.Client
	Slow    bool
}

// New returns a synthesizer for baseURL.
func New(baseURL string) *TranslateTTS {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &TranslateTTS{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{},
	}
}

// Synthesize splits text into endpoint-sized chunks and concatenates the
// returned MP3 streams.
func (g *TranslateTTS) Synthesize(ctx context.Context, req tts.SynthesizeRequest) ([]byte, error) {
	lang := req.Language
	if lang == "" {
		lang = tts.DefaultLanguage
	}

	var audio bytes.Buffer
	chunks := splitText(req.Text, maxChunk)
	for i, chunk := range chunks {
		if err := g.fetch(ctx, &audio, chunk, lang, i, len(chunks)); err != nil {
			return nil, err
		}
	}
	return audio.Bytes(), nil
}

func (g *TranslateTTS) fetch(ctx context.Context, dst *bytes.Buffer, text, lang string, idx, total int) error {
	speed := "1"
	if g.Slow {
		speed = "0.3"
	}
	q := url.Values{}
	q.Set("ie", "UTF-8")
	q.Set("client", "tw-ob")
	q.Set("q", text)
	q.Set("tl", lang)
	q.Set("ttsspeed", speed)
	q.Set("total", fmt.Sprint(total))
	q.Set("idx", fmt.Sprint(idx))
	q.Set("textlen", fmt.Sprint(len([]rune(text))))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, g.BaseURL+"/translate_tts?"+q.Encode(), nil)
	if err != nil {
		return ai.NewFatalError(err, "build tts request")
	}
	httpReq.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := g.HTTP.Do(httpReq)
	if err != nil {
		return ai.NewRecoverableError(err, "google tts")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		statusErr := fmt.Errorf("google tts status %s", resp.Status)
		if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
			return ai.NewRecoverableError(statusErr, "")
		}
		return ai.NewFatalError(statusErr, "")
	}

	if _, err := io.Copy(dst, resp.Body); err != nil {
		return ai.NewRecoverableError(err, "read google tts response")
	}
	return nil
}

// Capabilities returns the provider's capabilities.
func (g *TranslateTTS) Capabilities() tts.Capabilities {
	return tts.Capabilities{
		MIMEType:           "audio/mpeg",
		SupportedLanguages: []string{"es", "es-ES", "es-MX", "en", "fr", "de", "it", "pt"},
	}
}

// splitText breaks text into pieces of at most limit runes, preferring
// sentence punctuation, then whitespace, as cut points.
func splitText(text string, limit int) []string {
	var chunks []string
	runes := []rune(strings.TrimSpace(text))

	for len(runes) > 0 {
		if len(runes) <= limit {
			chunks = append(chunks, string(runes))
			break
		}

		cut := -1
		for i := limit - 1; i > 0; i-- {
			if strings.ContainsRune(".!?;:,", runes[i]) {
				cut = i + 1
				break
			}
		}
		if cut < 0 {
			for i := limit; i > 0; i-- {
				if unicode.IsSpace(runes[i]) {
					cut = i
					break
				}
			}
		}
		if cut <= 0 {
			cut = limit
		}

		if piece := strings.TrimSpace(string(runes[:cut])); piece != "" {
			chunks = append(chunks, piece)
		}
		runes = []rune(strings.TrimSpace(string(runes[cut:])))
	}
	return chunks
}

func newGoogleTTS(cfg plugin.Config) (any, error) {
	g := New(cfg.String("base_url", DefaultBaseURL))
	g.Slow = cfg.String("speed", "normal") == "slow"
	return g, nil
}

func init() {
	plugin.RegisterWithMetadata(&plugin.Plugin{
		Kind:        plugin.KindTTS,
		Name:        "google",
		Factory:     newGoogleTTS,
		Description: "Google Translate text-to-speech (MP3)",
		Version:     "1.0.0",
		Config: map[string]any{
			"base_url": DefaultBaseURL,
			"speed":    "normal | slow",
		},
	})
}
