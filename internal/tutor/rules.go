package tutor

import (
	"context"
	"log/slog"
	"sync"
)

// RuleEngine answers from static keyword tables. It never blocks and
// never fails.
type RuleEngine struct {
	mu     sync.RWMutex
	table  *ResponseTable
	picker Picker
	logger *slog.Logger
}

// NewRuleEngine creates a rule engine. A nil table selects DefaultTable, a
// nil picker a clock-seeded RandPicker.
func NewRuleEngine(table *ResponseTable, picker Picker, logger *slog.Logger) *RuleEngine {
	if table == nil {
		table = DefaultTable()
	}
	if picker == nil {
		picker = NewTimePicker()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RuleEngine{table: table, picker: picker, logger: logger}
}

func (e *RuleEngine) Name() string { return "rules" }

// Table returns the table currently in use.
func (e *RuleEngine) Table() *ResponseTable {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.table
}

// SetTable swaps the reply tables. Exchanges already past lookup keep the
// old table.
func (e *RuleEngine) SetTable(table *ResponseTable) {
	if table == nil {
		return
	}
	e.mu.Lock()
	e.table = table
	e.mu.Unlock()
}

// Respond picks a reply for req. See ResponseTable.Lookup for the
// fallback order.
func (e *RuleEngine) Respond(_ context.Context, req Request) (string, error) {
	level := ParseLevel(string(req.Level))
	topic := ParseTopic(string(req.Topic))

	match := e.Table().Lookup(req.Message, level, topic)
	idx := e.picker.Pick(len(match.Candidates))
	if idx < 0 || idx >= len(match.Candidates) {
		idx = 0
	}

	e.logger.Debug("Rule reply selected",
		slog.String("level", level.String()),
		slog.String("topic", topic.String()),
		slog.String("tier", string(match.Tier)),
		slog.String("keyword", match.Keyword))
	recordTier(match.Tier)

	return match.Candidates[idx], nil
}
