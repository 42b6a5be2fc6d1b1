package google

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/chriscow/charla/pkg/ai"
	"github.com/chriscow/charla/pkg/ai/tts"
	"github.com/matryer/is"
)

func TestSplitText(t *testing.T) {
	is := is.New(t)

	is.Equal(splitText("  Hola  ", 200), []string{"Hola"})
	is.Equal(len(splitText("", 200)), 0)

	long := strings.Repeat("palabra ", 60) // 480 runes
	chunks := splitText(long, 200)
	is.True(len(chunks) >= 3)
	for _, c := range chunks {
		is.True(len([]rune(c)) <= 200) // every chunk fits the endpoint
	}

	chunks = splitText("Buenos días. ¿Cómo estás hoy?", 15)
	is.Equal(chunks[0], "Buenos días.") // sentence punctuation is preferred

	chunks = splitText(strings.Repeat("a", 450), 200)
	is.Equal(len(chunks), 3) // unbroken text is hard-cut
}

func TestTranslateTTS_Synthesize(t *testing.T) {
	is := is.New(t)

	var mu sync.Mutex
	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		seen = append(seen, r.URL.Query().Get("tl")+":"+r.URL.Query().Get("q"))
		mu.Unlock()
		is.Equal(r.URL.Path, "/translate_tts")
		_, _ = w.Write([]byte("mp3|"))
	}))
	defer srv.Close()

	g := New(srv.URL)
	audio, err := g.Synthesize(context.Background(), tts.SynthesizeRequest{Text: "Hola amigo"})
	is.NoErr(err)
	is.Equal(string(audio), "mp3|")
	is.Equal(seen, []string{"es:Hola amigo"}) // language defaults to es
}

func TestTranslateTTS_StatusError(t *testing.T) {
	is := is.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := New(srv.URL).Synthesize(context.Background(), tts.SynthesizeRequest{Text: "Hola", Language: "es"})
	is.True(err != nil)
	is.True(ai.IsRecoverable(err)) // 5xx is retryable later
}
