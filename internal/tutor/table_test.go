package tutor

import (
	"testing"

	"github.com/matryer/is"
)

func TestLookup_Tiers(t *testing.T) {
	table := DefaultTable()

	cases := []struct {
		name    string
		message string
		level   Level
		topic   Topic
		tier    Tier
		from    []string
	}{
		{
			name:    "keyword",
			message: "I am so HUNGRY",
			level:   Beginner,
			topic:   Food,
			tier:    TierKeyword,
			from:    keywordReplies(t, Food, Beginner, "hungry"),
		},
		{
			name:    "topic default",
			message: "nothing matches here",
			level:   Intermediate,
			topic:   Travel,
			tier:    TierTopicDefault,
			from:    table.Topics[Travel].Defaults[Intermediate],
		},
		{
			name:    "level without keywords uses topic default",
			message: "music festival",
			level:   Advanced,
			topic:   Culture,
			tier:    TierTopicDefault,
			from:    table.Topics[Culture].Defaults[Advanced],
		},
		{
			name:    "topic without level defaults uses global",
			message: "nothing matches here",
			level:   Advanced,
			topic:   Shopping,
			tier:    TierGlobal,
			from:    table.Defaults[Advanced],
		},
		{
			name:    "missing topic uses global",
			message: "how are you",
			level:   Intermediate,
			topic:   Topic("astronomy"),
			tier:    TierGlobal,
			from:    table.Defaults[Intermediate],
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			is := is.New(t)
			m := table.Lookup(tc.message, tc.level, tc.topic)
			is.Equal(m.Tier, tc.tier)
			is.Equal(m.Candidates, tc.from)
		})
	}
}

func TestLookup_FirstMatchWins(t *testing.T) {
	is := is.New(t)
	table := &ResponseTable{
		Topics: map[Topic]TopicTable{
			Greetings: {Levels: map[Level]LevelTable{
				Beginner: {Keywords: []KeywordReplies{
					{Keyword: "empty", Replies: nil},
					{Keyword: "good", Replies: []string{"first"}},
					{Keyword: "good morning", Replies: []string{"second"}},
				}},
			}},
		},
		Defaults: map[Level][]string{Beginner: {"global"}},
	}

	m := table.Lookup("Good morning, empty room", Beginner, Greetings)
	is.Equal(m.Keyword, "good") // table order decides, and empty buckets are skipped
	is.Equal(m.Candidates, []string{"first"})
}

func TestLookup_DegradesWithoutData(t *testing.T) {
	is := is.New(t)

	onlyBeginner := &ResponseTable{Defaults: map[Level][]string{Beginner: {"hola"}}}
	m := onlyBeginner.Lookup("x", Advanced, Food)
	is.Equal(m.Tier, TierGlobal)
	is.Equal(m.Candidates, []string{"hola"}) // global beginner list backs other levels

	empty := &ResponseTable{}
	m = empty.Lookup("x", Advanced, Food)
	is.Equal(m.Tier, TierLastResort)
	is.Equal(m.Candidates, []string{LastResortReply})
}

func TestDefaultTable_Complete(t *testing.T) {
	is := is.New(t)
	table := DefaultTable()

	for _, l := range Levels {
		is.True(len(table.Defaults[l]) > 0) // every level has a global default
	}
	for _, tp := range Topics {
		tt, ok := table.Topics[tp]
		is.True(ok) // every topic has a table
		for _, byLevel := range tt.Levels {
			for _, kw := range byLevel.Keywords {
				is.True(kw.Keyword != "")
				is.True(len(kw.Replies) > 0)
			}
		}
	}
}

func TestDefaultTable_ReturnsIndependentCopies(t *testing.T) {
	is := is.New(t)
	want := DefaultTable().Lookup("how are you", Beginner, Greetings)

	table := DefaultTable()
	kw := table.Topics[Greetings].Levels[Beginner].Keywords
	kw[0].Replies[0] = "changed"
	kw[0].Keyword = "changed"
	table.Topics[Greetings].Defaults[Beginner][0] = "changed"
	table.Defaults[Beginner][0] = "changed"
	delete(table.Topics, Travel)

	fresh := DefaultTable()
	is.Equal(fresh.Lookup("how are you", Beginner, Greetings), want)
	is.True(fresh.Topics[Greetings].Defaults[Beginner][0] != "changed")
	is.True(fresh.Defaults[Beginner][0] != "changed")
	_, ok := fresh.Topics[Travel]
	is.True(ok)
}
