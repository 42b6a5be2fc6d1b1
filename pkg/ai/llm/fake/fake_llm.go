package fake

import (
	"context"
	"strings"
	"sync"

	"github.com/chriscow/charla/pkg/ai/llm"
)

// FakeLLM is a scripted text generator for testing.
type FakeLLM struct {
	mu        sync.Mutex
	responses []string
	err       error
	noText    bool
	block     bool
	callCount int
	prompts   []string
}

// NewFakeLLM creates a fake generator that cycles through responses.
func NewFakeLLM(responses ...string) *FakeLLM {
	if len(responses) == 0 {
		responses = []string{
			"¡Hola! ¿Cómo estás hoy?",
			"Muy bien. ¿Qué te gusta hacer los fines de semana?",
			"¡Qué interesante! Cuéntame más.",
		}
	}
	return &FakeLLM{responses: responses}
}

// NewFailingLLM creates a fake generator that always returns err.
func NewFailingLLM(err error) *FakeLLM {
	return &FakeLLM{err: err}
}

// NewEmptyLLM creates a fake generator whose responses carry no text field.
func NewEmptyLLM() *FakeLLM {
	return &FakeLLM{noText: true}
}

// NewBlockingLLM creates a fake generator that waits for ctx to finish.
func NewBlockingLLM() *FakeLLM {
	return &FakeLLM{block: true}
}

// Generate returns the next scripted response.
func (f *FakeLLM) Generate(ctx context.Context, req llm.GenerateRequest) (llm.GenerateResponse, error) {
	f.mu.Lock()
	f.prompts = append(f.prompts, req.Prompt)
	f.callCount++
	call := f.callCount
	f.mu.Unlock()

	if f.block {
		<-ctx.Done()
		return llm.GenerateResponse{}, ctx.Err()
	}
	if f.err != nil {
		return llm.GenerateResponse{}, f.err
	}
	if f.noText {
		return llm.GenerateResponse{Model: f.model(req)}, nil
	}

	text := f.responses[(call-1)%len(f.responses)]
	return llm.GenerateResponse{
		Text:       text,
		HasText:    true,
		Model:      f.model(req),
		TokensUsed: len(strings.Fields(text)) + len(strings.Fields(req.Prompt)),
	}, nil
}

// Prompts returns every prompt received so far.
func (f *FakeLLM) Prompts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.prompts...)
}

// CallCount returns the number of Generate calls.
func (f *FakeLLM) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.callCount
}

func (f *FakeLLM) model(req llm.GenerateRequest) string {
	if req.Model != "" {
		return req.Model
	}
	return "fake-model"
}

// Capabilities returns the fake generator capabilities.
func (f *FakeLLM) Capabilities() llm.Capabilities {
	return llm.Capabilities{
		DefaultModel:    "fake-model",
		SupportedModels: []string{"fake-model"},
		Local:           true,
	}
}
