package tutor

import (
	"fmt"
	"os"

	hjson "github.com/hjson/hjson-go/v4"
)

// tableFile is the on-disk shape of a response table. Keywords are a list
// so that file order is match order.
type tableFile struct {
	Defaults map[string][]string `json:"defaults"`
	Topics   map[string]struct {
		Defaults map[string][]string `json:"defaults"`
		Levels   map[string]struct {
			Keywords []KeywordReplies `json:"keywords"`
		} `json:"levels"`
	} `json:"topics"`
}

// LoadTableFile reads an HJSON (or plain JSON) response table from path.
func LoadTableFile(path string) (*ResponseTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read response table: %w", err)
	}
	table, err := ParseTable(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// ParseTable decodes an HJSON response table. Level and topic names must
// be known ones; a table without any global defaults is rejected.
func ParseTable(data []byte) (*ResponseTable, error) {
	var f tableFile
	if err := hjson.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse response table: %w", err)
	}

	defaults, err := levelLists(f.Defaults)
	if err != nil {
		return nil, fmt.Errorf("defaults: %w", err)
	}
	if len(defaults) == 0 {
		return nil, fmt.Errorf("response table needs global defaults")
	}

	table := &ResponseTable{
		Topics:   make(map[Topic]TopicTable, len(f.Topics)),
		Defaults: defaults,
	}
	for name, ft := range f.Topics {
		topic := Topic(name)
		if !topic.Valid() {
			return nil, fmt.Errorf("unknown topic %q", name)
		}

		tt := TopicTable{Levels: make(map[Level]LevelTable, len(ft.Levels))}
		if tt.Defaults, err = levelLists(ft.Defaults); err != nil {
			return nil, fmt.Errorf("topic %s defaults: %w", name, err)
		}
		for lname, fl := range ft.Levels {
			level := Level(lname)
			if !level.Valid() {
				return nil, fmt.Errorf("topic %s: unknown level %q", name, lname)
			}
			for i, kw := range fl.Keywords {
				if kw.Keyword == "" {
					return nil, fmt.Errorf("topic %s level %s: keyword %d is empty", name, lname, i)
				}
			}
			tt.Levels[level] = LevelTable{Keywords: fl.Keywords}
		}
		table.Topics[topic] = tt
	}
	return table, nil
}

func levelLists(in map[string][]string) (map[Level][]string, error) {
	out := make(map[Level][]string, len(in))
	for name, replies := range in {
		level := Level(name)
		if !level.Valid() {
			return nil, fmt.Errorf("unknown level %q", name)
		}
		out[level] = replies
	}
	return out, nil
}
