package server

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/chriscow/charla/internal/conversation"
	"github.com/chriscow/charla/internal/tutor"
	"github.com/chriscow/charla/pkg/ai/tts"
	ttsfake "github.com/chriscow/charla/pkg/ai/tts/fake"
	"github.com/matryer/is"
)

type failingEngine struct{}

func (failingEngine) Name() string { return "failing" }

func (failingEngine) Respond(context.Context, tutor.Request) (string, error) {
	return "", errors.New("tables unavailable")
}

type testServer struct {
	*httptest.Server
	store  *conversation.Store
	client *http.Client
}

func newTestServer(t *testing.T, engine tutor.Engine, synth tts.Synthesizer) *testServer {
	t.Helper()
	if engine == nil {
		engine = tutor.NewRuleEngine(nil, tutor.PickerFunc(func(int) int { return 0 }), nil)
	}

	store := conversation.NewStore(conversation.Options{})
	svc := tutor.NewService(store, engine, nil)
	srv := httptest.NewServer(New(svc, store, Options{Synthesizer: synth}).Handler())
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	return &testServer{Server: srv, store: store, client: &http.Client{Jar: jar}}
}

func (ts *testServer) post(t *testing.T, path string, body any) (*http.Response, []byte) {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := ts.client.Post(ts.URL+path, "application/json", strings.NewReader(string(data)))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp, out
}

func (ts *testServer) sessionKey(t *testing.T) string {
	t.Helper()
	u, _ := url.Parse(ts.URL)
	for _, c := range ts.client.Jar.Cookies(u) {
		if c.Name == SessionCookie {
			return c.Value
		}
	}
	t.Fatal("no session cookie")
	return ""
}

func TestIndex(t *testing.T) {
	is := is.New(t)
	ts := newTestServer(t, nil, nil)

	resp, err := ts.client.Get(ts.URL + "/")
	is.NoErr(err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	is.Equal(resp.StatusCode, http.StatusOK)
	is.True(strings.Contains(string(body), `value="daily_life"`))
	is.True(strings.Contains(string(body), `value="advanced"`))
	is.True(ts.sessionKey(t) != "") // page issues a session cookie

	resp, err = ts.client.Get(ts.URL + "/nope")
	is.NoErr(err)
	resp.Body.Close()
	is.Equal(resp.StatusCode, http.StatusNotFound)
}

func TestChat(t *testing.T) {
	is := is.New(t)
	ts := newTestServer(t, nil, ttsfake.NewFakeTTS())

	resp, body := ts.post(t, "/api/chat", ChatRequest{Message: "Hello, how are you?", Level: "beginner", Topic: "greetings"})
	is.Equal(resp.StatusCode, http.StatusOK)

	var out ChatResponse
	is.NoErr(json.Unmarshal(body, &out))
	is.Equal(out.Message, "Estoy bien, gracias. ¿Y tú?")

	audio, err := base64.StdEncoding.DecodeString(out.Audio)
	is.NoErr(err)
	is.Equal(string(audio[:4]), "RIFF") // fake synthesizer renders WAV

	history := ts.store.GetOrCreate(ts.sessionKey(t))
	is.Equal(len(history), 2)
	is.Equal(history[0].Content, "Hello, how are you?")
}

func TestChat_DefaultsLevelAndTopic(t *testing.T) {
	is := is.New(t)
	ts := newTestServer(t, nil, nil)

	resp, body := ts.post(t, "/api/chat", map[string]string{"message": "good morning"})
	is.Equal(resp.StatusCode, http.StatusOK)

	var out ChatResponse
	is.NoErr(json.Unmarshal(body, &out))
	is.Equal(out.Message, "¡Buenos días! ¿Cómo estás?") // beginner greetings
	is.Equal(out.Audio, "")                             // no synthesizer, no audio
}

func TestChat_BadRequests(t *testing.T) {
	is := is.New(t)
	ts := newTestServer(t, nil, nil)

	resp, _ := ts.post(t, "/api/chat", ChatRequest{Message: "   "})
	is.Equal(resp.StatusCode, http.StatusBadRequest)

	raw, err := ts.client.Post(ts.URL+"/api/chat", "application/json", strings.NewReader("{"))
	is.NoErr(err)
	raw.Body.Close()
	is.Equal(raw.StatusCode, http.StatusBadRequest)

	is.Equal(ts.store.Len(), 0) // rejected requests create no sessions
}

func TestChat_EngineFailure(t *testing.T) {
	is := is.New(t)
	ts := newTestServer(t, failingEngine{}, ttsfake.NewFakeTTS())

	resp, body := ts.post(t, "/api/chat", ChatRequest{Message: "hola"})
	is.Equal(resp.StatusCode, http.StatusInternalServerError)

	var out errorResponse
	is.NoErr(json.Unmarshal(body, &out))
	is.Equal(out.Message, tutor.FailureReply)
	is.True(out.Error != "")
}

func TestChat_SynthesisFailureKeepsText(t *testing.T) {
	is := is.New(t)
	ts := newTestServer(t, nil, ttsfake.NewFailingTTS(errors.New("quota exceeded")))

	resp, body := ts.post(t, "/api/chat", ChatRequest{Message: "hello", Topic: "greetings"})
	is.Equal(resp.StatusCode, http.StatusOK)

	var out ChatResponse
	is.NoErr(json.Unmarshal(body, &out))
	is.True(out.Message != "")
	is.Equal(out.Audio, "")
}

func TestChat_SynthesisPanicKeepsText(t *testing.T) {
	is := is.New(t)
	ts := newTestServer(t, nil, ttsfake.NewPanickingTTS("voice model crashed"))

	resp, body := ts.post(t, "/api/chat", ChatRequest{Message: "hello", Topic: "greetings"})
	is.Equal(resp.StatusCode, http.StatusOK)

	var out ChatResponse
	is.NoErr(json.Unmarshal(body, &out))
	is.True(out.Message != "")
	is.Equal(out.Audio, "")
	is.Equal(len(ts.store.GetOrCreate(ts.sessionKey(t))), 2)
}

func TestReset(t *testing.T) {
	is := is.New(t)
	ts := newTestServer(t, nil, nil)

	resp, _ := ts.post(t, "/api/chat", ChatRequest{Message: "hola"})
	is.Equal(resp.StatusCode, http.StatusOK)
	key := ts.sessionKey(t)
	is.Equal(len(ts.store.GetOrCreate(key)), 2)

	resp, body := ts.post(t, "/api/reset", nil)
	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(strings.TrimSpace(string(body)), `{"status":"success"}`)
	is.Equal(len(ts.store.GetOrCreate(key)), 0)
	is.Equal(ts.sessionKey(t), key) // same session after reset
}

func TestOptionsAndHealth(t *testing.T) {
	is := is.New(t)
	ts := newTestServer(t, nil, nil)

	resp, err := ts.client.Get(ts.URL + "/api/options")
	is.NoErr(err)
	var opts optionsResponse
	is.NoErr(json.NewDecoder(resp.Body).Decode(&opts))
	resp.Body.Close()
	is.Equal(len(opts.Levels), 3)
	is.Equal(len(opts.Topics), 8)
	is.Equal(opts.Topics[0].Value, "greetings")

	resp, err = ts.client.Get(ts.URL + "/healthz")
	is.NoErr(err)
	var health map[string]any
	is.NoErr(json.NewDecoder(resp.Body).Decode(&health))
	resp.Body.Close()
	is.Equal(health["status"], "ok")
	is.Equal(health["engine"], "rules")

	resp, err = ts.client.Get(ts.URL + "/metrics")
	is.NoErr(err)
	var vars map[string]json.RawMessage
	is.NoErr(json.NewDecoder(resp.Body).Decode(&vars))
	resp.Body.Close()
	_, ok := vars["server"]
	is.True(ok) // server counters are published
}

func TestSessionKey_RejectsMalformedCookie(t *testing.T) {
	is := is.New(t)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: SessionCookie, Value: "../../etc"})
	h := http.Header{}

	key := sessionKey(h, r)
	is.True(key != "../../etc")
	is.True(strings.Contains(h.Get("Set-Cookie"), key))
}
