package tutor

import (
	"testing"

	"github.com/matryer/is"
)

func TestParseLevel(t *testing.T) {
	is := is.New(t)

	is.Equal(ParseLevel("advanced"), Advanced)
	is.Equal(ParseLevel(" Intermediate "), Intermediate) // case and space are ignored
	for _, in := range []string{"", "expert", "b", "beginnerx"} {
		is.Equal(ParseLevel(in), Beginner) // unknown input falls back
	}
}

func TestParseTopic(t *testing.T) {
	is := is.New(t)

	is.Equal(ParseTopic("daily_life"), DailyLife)
	is.Equal(ParseTopic("FOOD"), Food)
	for _, in := range []string{"", "sports", "daily life"} {
		is.Equal(ParseTopic(in), Greetings) // unknown input falls back
	}
}

func TestInstructionsAndDescriptions(t *testing.T) {
	is := is.New(t)

	for _, l := range Levels {
		is.True(l.Valid())
		is.True(l.Instruction() != "")
	}
	is.Equal(Level("nope").Instruction(), Beginner.Instruction())

	for _, tp := range Topics {
		is.True(tp.Valid())
		is.True(tp.Description() != "")
	}
	is.Equal(Topic("nope").Description(), Greetings.Description())
}
