package tutor

import "strings"

// Level is the learner's proficiency tier.
type Level string

const (
	Beginner     Level = "beginner"
	Intermediate Level = "intermediate"
	Advanced     Level = "advanced"
)

// DefaultLevel is used for unknown level input.
const DefaultLevel = Beginner

// Levels lists every level in display order.
var Levels = []Level{Beginner, Intermediate, Advanced}

var levelInstructions = map[Level]string{
	Beginner:     "You are a Spanish language tutor helping a beginner. Use simple vocabulary, basic grammar, and very short sentences. Translate any complex terms.",
	Intermediate: "You are a Spanish language tutor helping an intermediate learner. Use moderate vocabulary, common expressions, and explain any difficult phrases.",
	Advanced:     "You are a Spanish language tutor helping an advanced learner. Use rich vocabulary, idiomatic expressions, and complex grammar structures.",
}

// ParseLevel maps s onto a Level, ignoring case and surrounding space.
// Anything unrecognized becomes DefaultLevel.
func ParseLevel(s string) Level {
	l := Level(strings.ToLower(strings.TrimSpace(s)))
	if l.Valid() {
		return l
	}
	return DefaultLevel
}

// Valid reports whether l is one of the known levels.
func (l Level) Valid() bool {
	_, ok := levelInstructions[l]
	return ok
}

// Instruction returns the tutor persona and register for l.
func (l Level) Instruction() string {
	if s, ok := levelInstructions[l]; ok {
		return s
	}
	return levelInstructions[DefaultLevel]
}

func (l Level) String() string {
	return string(l)
}
