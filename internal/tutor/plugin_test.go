package tutor

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/chriscow/charla/pkg/ai/llm/fake"
	"github.com/chriscow/charla/pkg/plugin"
	"github.com/matryer/is"
)

func TestNewEngine_Rules(t *testing.T) {
	is := is.New(t)

	engine, err := NewEngine("rules", plugin.Config{"seed": 7})
	is.NoErr(err)
	is.Equal(engine.Name(), "rules")

	path := filepath.Join(t.TempDir(), "tables.hjson")
	is.NoErr(os.WriteFile(path, []byte(sampleTable), 0o644))
	engine, err = NewEngine("rules", plugin.Config{"tables": path})
	is.NoErr(err)

	reply, err := engine.Respond(context.Background(), Request{Message: "paella", Level: Beginner, Topic: Food})
	is.NoErr(err)
	is.Equal(reply, "¡La paella es deliciosa!") // table file replaces the built-in data

	_, err = NewEngine("rules", plugin.Config{"tables": filepath.Join(t.TempDir(), "nope.hjson")})
	is.True(err != nil)
}

func TestNewEngine_Generative(t *testing.T) {
	is := is.New(t)

	_, err := NewEngine("generative", plugin.Config{})
	is.True(err != nil) // a generator is required

	engine, err := NewEngine("generative", plugin.Config{
		"generator":     fake.NewFakeLLM("¡Hola!"),
		"timeout":       "5s",
		"history_turns": 3,
	})
	is.NoErr(err)
	is.Equal(engine.Name(), "generative")

	ge, ok := engine.(*GenerativeEngine)
	is.True(ok)
	is.Equal(ge.HistoryTurns(), 3)
	is.Equal(ge.timeout, 5*time.Second)
}

func TestNewEngine_Unknown(t *testing.T) {
	is := is.New(t)

	_, err := NewEngine("oracle", nil)
	is.True(err != nil)

	var names []string
	for _, p := range plugin.List(plugin.KindEngine) {
		names = append(names, p.Name)
	}
	is.True(contains(names, "rules"))
	is.True(contains(names, "generative"))
}
