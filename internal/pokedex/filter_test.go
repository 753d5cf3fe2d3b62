package pokedex

import (
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func starterRoster() []Record {
	return []Record{
		rec(1, "bulbasaur", "grass", "poison"),
		rec(4, "charmander", "fire"),
	}
}

func TestFilter_EmptyQueryIsIdentity(t *testing.T) {
	roster := starterRoster()
	for _, q := range []string{"", "   ", "\t"} {
		got := Filter(roster, q)
		if diff := cmp.Diff(ids(roster), ids(got)); diff != "" {
			t.Fatalf("Filter(%q) mismatch (-want +got):\n%s", q, diff)
		}
	}
}

func TestFilter_Scenarios(t *testing.T) {
	roster := append(starterRoster(), rec(14, "kakuna", "bug", "poison"))
	cases := []struct {
		query string
		want  []int
	}{
		{"char", []int{4}},
		{"CHAR", []int{4}},
		{"  char  ", []int{4}},
		{"1", []int{1}},
		{"14", []int{14}},
		{"fire", []int{4}},
		{"poison", []int{1, 14}},
		{"a", []int{1, 4, 14}},
		{"mew", []int{}},
		{"00", []int{}},
	}
	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			got := Filter(roster, tc.query)
			if diff := cmp.Diff(tc.want, ids(got)); diff != "" {
				t.Fatalf("Filter(%q) mismatch (-want +got):\n%s", tc.query, diff)
			}
		})
	}
}

func TestFilter_ResultsSatisfyPredicate(t *testing.T) {
	roster := []Record{
		rec(1, "bulbasaur", "grass", "poison"),
		rec(4, "charmander", "fire"),
		rec(7, "squirtle", "water"),
		rec(25, "pikachu", "electric"),
		rec(52, "meowth", "normal"),
	}
	for _, q := range []string{"a", "r", "1", "25", "er", "o", "ic", "x"} {
		for _, r := range Filter(roster, q) {
			ok := strings.Contains(r.Name, q) || strconv.Itoa(r.ID) == q
			for _, tn := range r.TypeNames() {
				ok = ok || strings.Contains(tn, q)
			}
			assert.Truef(t, ok, "record %d (%s) returned for %q without matching", r.ID, r.Name, q)
		}
	}
}

func TestFilter_MissingFieldsDoNotPanic(t *testing.T) {
	roster := []Record{{ID: 3}, {ID: 9, Name: "blastoise"}, {ID: 10, Types: []TypeSlot{{}}}}
	assert.NotPanics(t, func() {
		got := Filter(roster, "blast")
		assert.Equal(t, []int{9}, ids(got))
		assert.Equal(t, []int{3}, ids(Filter(roster, "3")))
	})
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	roster := starterRoster()
	_ = Filter(roster, "fire")
	assert.Equal(t, []int{1, 4}, ids(roster))
}
