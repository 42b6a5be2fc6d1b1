package tutor

import "expvar"

// Counters published under /debug/vars and /metrics as "tutor".
var stats = expvar.NewMap("tutor")

func recordTier(t Tier) { stats.Add("rule_tier_"+string(t), 1) }

func recordTurn() { stats.Add("turns", 1) }

func recordTurnFailure() { stats.Add("turn_failures", 1) }

func recordGeneratorFailure() { stats.Add("generator_failures", 1) }

func recordGeneratorNoText() { stats.Add("generator_no_text", 1) }
