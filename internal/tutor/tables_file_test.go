package tutor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"
)

const sampleTable = `
# comments and unquoted strings are allowed
{
  defaults: {
    beginner: ["¿Qué más?"]
  }
  topics: {
    food: {
      defaults: {
        beginner: ["¿Qué te gusta comer?"]
      }
      levels: {
        beginner: {
          keywords: [
            { keyword: "paella", replies: ["¡La paella es deliciosa!"] }
            { keyword: "pa", replies: ["never reached for paella"] }
          ]
        }
      }
    }
  }
}
`

func TestParseTable(t *testing.T) {
	is := is.New(t)

	table, err := ParseTable([]byte(sampleTable))
	is.NoErr(err)

	m := table.Lookup("I love PAELLA", Beginner, Food)
	is.Equal(m.Tier, TierKeyword)
	is.Equal(m.Candidates, []string{"¡La paella es deliciosa!"}) // file order is match order

	m = table.Lookup("tacos", Beginner, Food)
	is.Equal(m.Tier, TierTopicDefault)

	m = table.Lookup("tacos", Advanced, Travel)
	is.Equal(m.Tier, TierGlobal)
	is.Equal(m.Candidates, []string{"¿Qué más?"})
}

func TestParseTable_Invalid(t *testing.T) {
	cases := []struct {
		name string
		data string
		want string
	}{
		{"syntax", `{ defaults: `, "parse response table"},
		{"no defaults", `{ topics: {} }`, "needs global defaults"},
		{"unknown level", `{ defaults: { expert: ["x"] } }`, `unknown level "expert"`},
		{"unknown topic", `{ defaults: { beginner: ["x"] }, topics: { sports: {} } }`, `unknown topic "sports"`},
		{"empty keyword", `{ defaults: { beginner: ["x"] }, topics: { food: { levels: { beginner: { keywords: [ { keyword: "", replies: ["y"] } ] } } } } }`, "keyword 0 is empty"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			is := is.New(t)
			_, err := ParseTable([]byte(tc.data))
			is.True(err != nil)
			is.True(strings.Contains(err.Error(), tc.want))
		})
	}
}

func TestLoadTableFile(t *testing.T) {
	is := is.New(t)

	path := filepath.Join(t.TempDir(), "tables.hjson")
	is.NoErr(os.WriteFile(path, []byte(sampleTable), 0o644))

	table, err := LoadTableFile(path)
	is.NoErr(err)
	is.Equal(len(table.Topics), 1)

	_, err = LoadTableFile(filepath.Join(t.TempDir(), "missing.hjson"))
	is.True(err != nil)
}
