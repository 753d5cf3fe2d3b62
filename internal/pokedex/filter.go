package pokedex

import (
	"strconv"
	"strings"
)

// Filter returns the records matching query, preserving order. A blank query
// returns records unchanged. Otherwise a record matches when its name
// contains the lower-cased query, its id printed in base 10 equals the query
// exactly, or one of its type names contains the query.
func Filter(records []Record, query string) []Record {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return records
	}
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if Matches(r, term) {
			out = append(out, r)
		}
	}
	return out
}

// Matches applies the three predicates to an already normalized term.
func Matches(r Record, term string) bool {
	return matchesName(r, term) || matchesID(r, term) || matchesType(r, term)
}

func matchesName(r Record, term string) bool {
	return r.Name != "" && strings.Contains(strings.ToLower(r.Name), term)
}

// exact on purpose: "1" must not pick up #14
func matchesID(r Record, term string) bool {
	return strconv.Itoa(r.ID) == term
}

func matchesType(r Record, term string) bool {
	for _, t := range r.Types {
		if t.Type.Name != "" && strings.Contains(strings.ToLower(t.Type.Name), term) {
			return true
		}
	}
	return false
}
