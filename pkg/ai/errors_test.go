package ai

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestProviderErrorClassification(t *testing.T) {
	base := errors.New("connection reset")

	recoverable := NewRecoverableError(base, "ollama request failed")
	if !IsRecoverable(recoverable) || IsFatal(recoverable) {
		t.Errorf("Expected recoverable classification, got %v", recoverable)
	}
	if !errors.Is(recoverable, base) {
		t.Error("Expected underlying error to be reachable")
	}
	if got := recoverable.Error(); got != "ollama request failed: connection reset" {
		t.Errorf("Unexpected message %q", got)
	}

	fatal := fmt.Errorf("generate: %w", NewFatalError(nil, "missing API key"))
	if !IsFatal(fatal) || IsRecoverable(fatal) {
		t.Errorf("Expected fatal classification, got %v", fatal)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"deadline", fmt.Errorf("call: %w", context.DeadlineExceeded), "timeout"},
		{"wrapped deadline", NewRecoverableError(context.DeadlineExceeded, "slow"), "timeout"},
		{"recoverable", NewRecoverableError(nil, "busy"), "recoverable"},
		{"fatal", NewFatalError(nil, "bad request"), "fatal"},
		{"plain", errors.New("boom"), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.err); got != tt.want {
				t.Errorf("Classify() = %q, want %q", got, tt.want)
			}
		})
	}
}
