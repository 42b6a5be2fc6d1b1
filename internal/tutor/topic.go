package tutor

import "strings"

// Topic is the subject-matter domain of a conversation.
type Topic string

const (
	Greetings Topic = "greetings"
	Travel    Topic = "travel"
	Food      Topic = "food"
	Shopping  Topic = "shopping"
	DailyLife Topic = "daily_life"
	Work      Topic = "work"
	Health    Topic = "health"
	Culture   Topic = "culture"
)

// DefaultTopic is used for unknown topic input.
const DefaultTopic = Greetings

// Topics lists every topic in display order.
var Topics = []Topic{Greetings, Travel, Food, Shopping, DailyLife, Work, Health, Culture}

var topicDescriptions = map[Topic]string{
	Greetings: "basic greetings, introductions, and small talk",
	Travel:    "traveling, directions, transportation, accommodation, and tourism",
	Food:      "ordering food, discussing cuisine, recipes, and dining experiences",
	Shopping:  "buying items, asking about prices, sizes, and preferences",
	DailyLife: "daily routines, schedules, and common activities",
	Work:      "professional settings, job interviews, and workplace conversations",
	Health:    "discussing health issues, visiting a doctor, and describing symptoms",
	Culture:   "cultural events, traditions, and customs in Spanish-speaking countries",
}

// ParseTopic maps s onto a Topic, ignoring case and surrounding space.
// Anything unrecognized becomes DefaultTopic.
func ParseTopic(s string) Topic {
	t := Topic(strings.ToLower(strings.TrimSpace(s)))
	if t.Valid() {
		return t
	}
	return DefaultTopic
}

// Valid reports whether t is one of the known topics.
func (t Topic) Valid() bool {
	_, ok := topicDescriptions[t]
	return ok
}

// Description returns the subject matter covered by t.
func (t Topic) Description() string {
	if s, ok := topicDescriptions[t]; ok {
		return s
	}
	return topicDescriptions[DefaultTopic]
}

func (t Topic) String() string {
	return string(t)
}
