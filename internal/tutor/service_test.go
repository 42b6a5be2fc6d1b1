package tutor

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/chriscow/charla/internal/conversation"
	"github.com/chriscow/charla/pkg/ai/llm"
	"github.com/chriscow/charla/pkg/ai/llm/fake"
	"github.com/matryer/is"
)

type stubEngine struct {
	reply  string
	err    error
	panics bool
	turns  int
	reqs   []Request
}

func (e *stubEngine) Name() string { return "stub" }

func (e *stubEngine) Respond(_ context.Context, req Request) (string, error) {
	e.reqs = append(e.reqs, req)
	if e.panics {
		panic("table corrupted")
	}
	return e.reply, e.err
}

type historyStub struct{ stubEngine }

func (e *historyStub) HistoryTurns() int { return e.turns }

func newTestService(engine Engine) (*Service, *conversation.Store) {
	store := conversation.NewStore(conversation.Options{})
	return NewService(store, engine, nil), store
}

func TestService_ProcessTurnAppendsExchange(t *testing.T) {
	is := is.New(t)
	svc, store := newTestService(NewRuleEngine(nil, PickerFunc(func(int) int { return 0 }), nil))

	reply, err := svc.ProcessTurn(context.Background(), "s1", "Hello, how are you?", "beginner", "greetings")
	is.NoErr(err)
	is.Equal(reply, "Estoy bien, gracias. ¿Y tú?")

	history := store.GetOrCreate("s1")
	is.Equal(len(history), 2)
	is.Equal(history[0], conversation.Turn{Role: llm.RoleUser, Content: "Hello, how are you?"})
	is.Equal(history[1], conversation.Turn{Role: llm.RoleAssistant, Content: reply})

	_, err = svc.ProcessTurn(context.Background(), "s1", "hello", "beginner", "greetings")
	is.NoErr(err)
	is.Equal(len(svc.History("s1")), 4) // exchanges accumulate in order
}

func TestService_ResetSession(t *testing.T) {
	is := is.New(t)
	svc, store := newTestService(NewRuleEngine(nil, nil, nil))

	_, err := svc.ProcessTurn(context.Background(), "s1", "hola", "beginner", "greetings")
	is.NoErr(err)
	svc.ResetSession("s1")
	is.Equal(len(store.GetOrCreate("s1")), 0)

	svc.ResetSession("never-seen") // unknown sessions are fine
	is.Equal(len(svc.History("never-seen")), 0)
}

func TestService_UnknownLevelAndTopicUseDefaults(t *testing.T) {
	is := is.New(t)
	first := PickerFunc(func(int) int { return 0 })

	known, _ := newTestService(NewRuleEngine(nil, first, nil))
	unknown, _ := newTestService(NewRuleEngine(nil, first, nil))

	want, err := known.ProcessTurn(context.Background(), "a", "good morning", "beginner", "greetings")
	is.NoErr(err)
	got, err := unknown.ProcessTurn(context.Background(), "b", "good morning", "expert", "astronomy")
	is.NoErr(err)
	is.Equal(got, want)
}

func TestService_HistoryPassedToHistoryUsers(t *testing.T) {
	is := is.New(t)
	engine := &historyStub{stubEngine{reply: "vale", turns: 3}}
	svc, _ := newTestService(engine)

	for i := 0; i < 3; i++ {
		_, err := svc.ProcessTurn(context.Background(), "s1", "hola", "beginner", "greetings")
		is.NoErr(err)
	}
	is.Equal(len(engine.reqs[0].History), 0)
	is.Equal(len(engine.reqs[2].History), 3) // capped at HistoryTurns
	is.Equal(engine.reqs[2].History[2], conversation.AssistantTurn("vale"))

	plain := &stubEngine{reply: "vale"}
	svc, _ = newTestService(plain)
	_, _ = svc.ProcessTurn(context.Background(), "s1", "hola", "beginner", "greetings")
	_, _ = svc.ProcessTurn(context.Background(), "s1", "hola", "beginner", "greetings")
	is.Equal(plain.reqs[1].History, nil) // engines without history get none
}

func TestService_FailuresLeaveSessionUnchanged(t *testing.T) {
	cases := []struct {
		name   string
		engine *stubEngine
	}{
		{"error", &stubEngine{err: errors.New("no data")}},
		{"panic", &stubEngine{panics: true}},
		{"empty reply", &stubEngine{reply: "   "}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			is := is.New(t)
			svc, store := newTestService(tc.engine)
			store.Append("s1", conversation.UserTurn("antes"), conversation.AssistantTurn("vale"))

			reply, err := svc.ProcessTurn(context.Background(), "s1", "hola", "beginner", "greetings")
			is.True(errors.Is(err, ErrTurnFailed))
			is.Equal(reply, FailureReply)
			is.Equal(len(store.GetOrCreate("s1")), 2) // nothing appended
		})
	}
}

func TestService_GeneratorFailureStillReplies(t *testing.T) {
	is := is.New(t)
	gen := fake.NewFailingLLM(errors.New("connection refused"))
	svc, store := newTestService(NewGenerativeEngine(gen, GenerativeOptions{}))

	reply, err := svc.ProcessTurn(context.Background(), "s1", "hola", "beginner", "greetings")
	is.NoErr(err)
	is.Equal(reply, UnavailableReply)
	is.Equal(len(store.GetOrCreate("s1")), 2) // fallback reply is recorded
}

func TestService_CanceledTurnIsNotRecorded(t *testing.T) {
	cases := []struct {
		name   string
		engine Engine
	}{
		{"generative", NewGenerativeEngine(fake.NewBlockingLLM(), GenerativeOptions{})},
		{"rules", NewRuleEngine(nil, nil, nil)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			is := is.New(t)
			svc, store := newTestService(tc.engine)
			ctx, cancel := context.WithCancel(context.Background())
			cancel() // client disconnected

			reply, err := svc.ProcessTurn(ctx, "s1", "hola", "beginner", "greetings")
			is.True(errors.Is(err, ErrTurnFailed))
			is.Equal(reply, FailureReply)
			is.Equal(len(store.GetOrCreate("s1")), 0) // nothing recorded
		})
	}
}

func TestService_ConcurrentSessions(t *testing.T) {
	is := is.New(t)
	svc, store := newTestService(NewGenerativeEngine(fake.NewFakeLLM("sí"), GenerativeOptions{}))

	var wg sync.WaitGroup
	for _, key := range []string{"a", "b", "c"} {
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func(key string) {
				defer wg.Done()
				_, _ = svc.ProcessTurn(context.Background(), key, "hola", "beginner", "greetings")
			}(key)
		}
	}
	wg.Wait()

	for _, key := range []string{"a", "b", "c"} {
		history := store.GetOrCreate(key)
		is.Equal(len(history), 20)
		for i, turn := range history {
			if i%2 == 0 {
				is.Equal(turn.Role, llm.RoleUser)
			} else {
				is.Equal(turn.Role, llm.RoleAssistant)
			}
		}
	}
}
