package pokedex

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

type fuzzySource []Record

func (s fuzzySource) String(i int) string {
	return s[i].Name + " " + strings.Join(s[i].TypeNames(), " ")
}

func (s fuzzySource) Len() int { return len(s) }

// FuzzyRank returns records whose name or types contain query as a
// subsequence, best match first. It is a browsing aid for the CLI and does
// not take part in the search flow. An empty query returns records as is.
func FuzzyRank(records []Record, query string) []Record {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return records
	}
	matches := fuzzy.FindFrom(q, fuzzySource(records))
	out := make([]Record, 0, len(matches))
	for _, m := range matches {
		out = append(out, records[m.Index])
	}
	return out
}
