package server

import (
	"embed"
	"encoding/base64"
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/chriscow/charla/internal/tutor"
	"github.com/chriscow/charla/pkg/version"
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Message string `json:"message"`
	Level   string `json:"level"`
	Topic   string `json:"topic"`
}

// ChatResponse is the reply to POST /api/chat. Audio is base64 encoded
// and empty when speech synthesis failed.
type ChatResponse struct {
	Message string `json:"message"`
	Audio   string `json:"audio"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type option struct {
	Value       string `json:"value"`
	Description string `json:"description"`
}

type optionsResponse struct {
	Levels []option `json:"levels"`
	Topics []option `json:"topics"`
}

func levelOptions() []option {
	out := make([]option, 0, len(tutor.Levels))
	for _, l := range tutor.Levels {
		out = append(out, option{Value: l.String(), Description: l.Instruction()})
	}
	return out
}

func topicOptions() []option {
	out := make([]option, 0, len(tutor.Topics))
	for _, t := range tutor.Topics {
		out = append(out, option{Value: t.String(), Description: t.Description()})
	}
	return out
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	recordRequest("index")
	sessionKey(w.Header(), r)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := indexTemplate.Execute(w, optionsResponse{Levels: levelOptions(), Topics: topicOptions()})
	if err != nil {
		s.logger.Error("Failed to render page", slog.String("error", err.Error()))
	}
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	recordRequest("chat")
	key := sessionKey(w.Header(), r)

	var req ChatRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 64<<10)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "message is required"})
		return
	}

	text, audio, err := s.reply(r.Context(), key, req.Message, req.Level, req.Topic)
	if err != nil {
		s.logger.Error("Error in chat endpoint",
			slog.String("session", key),
			slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error:   "An error occurred while processing your request",
			Message: text,
		})
		return
	}

	writeJSON(w, http.StatusOK, ChatResponse{
		Message: text,
		Audio:   base64.StdEncoding.EncodeToString(audio),
	})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	recordRequest("reset")
	key := sessionKey(w.Header(), r)
	s.svc.ResetSession(key)
	writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

func (s *Server) handleOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, optionsResponse{Levels: levelOptions(), Topics: topicOptions()})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	sessions := 0
	if s.store != nil {
		sessions = s.store.Len()
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"engine":   s.svc.Engine().Name(),
		"sessions": sessions,
		"version":  version.Get(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
