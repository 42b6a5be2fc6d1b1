package server

import (
	"expvar"
	"net/http"

	"github.com/chriscow/charla/internal/conversation"
)

var stats = expvar.NewMap("server")

func recordRequest(route string) { stats.Add("requests."+route, 1) }

func recordSilentReply() { stats.Add("tts_empty", 1) }

func recordWebSocket(delta int64) { stats.Add("ws_connections", delta) }

// publishSessions reports the store's counters under server.sessions.
func publishSessions(store *conversation.Store) {
	if store == nil {
		return
	}
	stats.Set("sessions", expvar.Func(func() any {
		return store.Stats()
	}))
}

func metricsHandler() http.Handler {
	return expvar.Handler()
}
