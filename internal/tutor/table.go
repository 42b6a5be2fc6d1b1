package tutor

import (
	"slices"
	"strings"
)

// KeywordReplies pairs a trigger phrase with its candidate replies.
type KeywordReplies struct {
	Keyword string   `json:"keyword"`
	Replies []string `json:"replies"`
}

// LevelTable is the ordered keyword list for one (topic, level) pair.
// Keywords are tried in slice order and the first match wins.
type LevelTable struct {
	Keywords []KeywordReplies `json:"keywords"`
}

// TopicTable holds a topic's per-level keywords and per-level defaults.
// Either map may lack levels.
type TopicTable struct {
	Levels   map[Level]LevelTable `json:"levels"`
	Defaults map[Level][]string   `json:"defaults"`
}

// ResponseTable is the complete data set of the rule-based engine.
type ResponseTable struct {
	Topics   map[Topic]TopicTable `json:"topics"`
	Defaults map[Level][]string   `json:"defaults"`
}

// Clone returns a deep copy of t.
func (t *ResponseTable) Clone() *ResponseTable {
	out := &ResponseTable{
		Topics:   make(map[Topic]TopicTable, len(t.Topics)),
		Defaults: cloneDefaults(t.Defaults),
	}
	for topic, tt := range t.Topics {
		levels := make(map[Level]LevelTable, len(tt.Levels))
		for level, lt := range tt.Levels {
			keywords := make([]KeywordReplies, len(lt.Keywords))
			for i, kw := range lt.Keywords {
				keywords[i] = KeywordReplies{Keyword: kw.Keyword, Replies: slices.Clone(kw.Replies)}
			}
			levels[level] = LevelTable{Keywords: keywords}
		}
		out.Topics[topic] = TopicTable{Levels: levels, Defaults: cloneDefaults(tt.Defaults)}
	}
	return out
}

func cloneDefaults(m map[Level][]string) map[Level][]string {
	out := make(map[Level][]string, len(m))
	for level, replies := range m {
		out[level] = slices.Clone(replies)
	}
	return out
}

// Tier names the fallback level a reply was drawn from.
type Tier string

const (
	TierKeyword      Tier = "keyword"
	TierTopicDefault Tier = "topic_default"
	TierGlobal       Tier = "global_default"
	TierLastResort   Tier = "last_resort"
)

// Match is the outcome of a table lookup.
type Match struct {
	Tier       Tier
	Keyword    string
	Candidates []string
}

// Lookup resolves the candidate replies for message. message is matched
// case-insensitively as a substring against each keyword of the
// (topic, level) table in order. Lookup never fails: a missing topic, level
// or empty reply list falls through to the next tier.
func (t *ResponseTable) Lookup(message string, level Level, topic Topic) Match {
	normalized := strings.ToLower(message)

	topicTable, hasTopic := t.Topics[topic]
	if hasTopic {
		for _, kw := range topicTable.Levels[level].Keywords {
			needle := strings.ToLower(strings.TrimSpace(kw.Keyword))
			if needle == "" || len(kw.Replies) == 0 {
				continue
			}
			if strings.Contains(normalized, needle) {
				return Match{Tier: TierKeyword, Keyword: kw.Keyword, Candidates: kw.Replies}
			}
		}
		if defaults := topicTable.Defaults[level]; len(defaults) > 0 {
			return Match{Tier: TierTopicDefault, Candidates: defaults}
		}
	}

	if defaults := t.Defaults[level]; len(defaults) > 0 {
		return Match{Tier: TierGlobal, Candidates: defaults}
	}
	if defaults := t.Defaults[DefaultLevel]; len(defaults) > 0 {
		return Match{Tier: TierGlobal, Candidates: defaults}
	}
	return Match{Tier: TierLastResort, Candidates: []string{LastResortReply}}
}

// LastResortReply is returned when a table has no usable data at all.
const LastResortReply = "¿Puedes repetirlo, por favor?"
