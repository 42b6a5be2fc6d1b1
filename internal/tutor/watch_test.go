package tutor

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestWatchTables_Reload(t *testing.T) {
	is := is.New(t)

	path := filepath.Join(t.TempDir(), "tables.hjson")
	is.NoErr(os.WriteFile(path, []byte(sampleTable), 0o644))
	table, err := LoadTableFile(path)
	is.NoErr(err)

	first := PickerFunc(func(int) int { return 0 })
	engine := NewRuleEngine(table, first, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	is.NoErr(WatchTables(ctx, path, engine, nil))

	// a broken file keeps the current tables
	is.NoErr(os.WriteFile(path, []byte("{ defaults: "), 0o644))
	time.Sleep(100 * time.Millisecond)
	is.Equal(engine.Table(), table)

	updated := strings.Replace(sampleTable, "¡La paella es deliciosa!", "¡Me encanta la paella!", 1)
	is.NoErr(os.WriteFile(path, []byte(updated), 0o644))

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		reply, err := engine.Respond(ctx, Request{Message: "paella", Level: Beginner, Topic: Food})
		is.NoErr(err)
		if reply == "¡Me encanta la paella!" {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal("tables were not reloaded")
}

func TestWatchTables_MissingDirectory(t *testing.T) {
	is := is.New(t)
	engine := NewRuleEngine(nil, nil, nil)

	err := WatchTables(context.Background(), filepath.Join(t.TempDir(), "nope", "tables.hjson"), engine, nil)
	is.True(err != nil)
}
