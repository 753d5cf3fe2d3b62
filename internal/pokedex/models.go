// Package pokedex holds the search-and-select engine: the in-memory roster of
// Pokémon records, the local filter, the two-tier search flow and the
// selection bookkeeping that keeps the detail view in sync with the list.
package pokedex

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// NamedResource is PokeAPI's {name, url} reference shape.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// TypeSlot is one entry of a record's ordered type list.
type TypeSlot struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

// AbilitySlot is one entry of a record's ability list.
type AbilitySlot struct {
	Ability  NamedResource `json:"ability"`
	IsHidden bool          `json:"is_hidden"`
	Slot     int           `json:"slot"`
}

// Stat is a base stat entry.
type Stat struct {
	BaseStat int           `json:"base_stat"`
	Effort   int           `json:"effort"`
	Stat     NamedResource `json:"stat"`
}

// SpriteSet is the subset of sprite URLs the detail card looks at.
type SpriteSet struct {
	FrontDefault string     `json:"front_default"`
	Animated     *SpriteSet `json:"animated,omitempty"`
}

// Sprites mirrors the top level of PokeAPI's sprites object. Versions is keyed
// by generation, then by game.
type Sprites struct {
	FrontDefault string                          `json:"front_default"`
	Versions     map[string]map[string]SpriteSet `json:"versions,omitempty"`
}

// Record is one Pokémon as returned by the API. Only ID, Name and Types are
// inspected by the engine; everything else rides along for renderers. The
// original payload is retained so re-encoding a decoded record yields the
// same document.
type Record struct {
	ID        int           `json:"id"`
	Name      string        `json:"name"`
	Types     []TypeSlot    `json:"types"`
	Height    int           `json:"height"`
	Weight    int           `json:"weight"`
	Abilities []AbilitySlot `json:"abilities"`
	Stats     []Stat        `json:"stats"`
	Sprites   Sprites       `json:"sprites"`
	Species   NamedResource `json:"species"`

	raw json.RawMessage
}

type recordFields Record

// UnmarshalJSON decodes the known fields and keeps the raw document.
func (r *Record) UnmarshalJSON(data []byte) error {
	var f recordFields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*r = Record(f)
	r.raw = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON returns the original payload when the record was decoded from
// one, otherwise the known fields.
func (r Record) MarshalJSON() ([]byte, error) {
	if len(r.raw) > 0 {
		return r.raw, nil
	}
	return json.Marshal(recordFields(r))
}

// TypeNames returns the record's type names in slot order.
func (r Record) TypeNames() []string {
	out := make([]string, 0, len(r.Types))
	for _, t := range r.Types {
		if t.Type.Name != "" {
			out = append(out, t.Type.Name)
		}
	}
	return out
}

// BestSprite prefers the animated black/white sprite and falls back to the
// default front sprite.
func (r Record) BestSprite() string {
	if bw, ok := r.Sprites.Versions["generation-v"]["black-white"]; ok {
		if bw.Animated != nil && bw.Animated.FrontDefault != "" {
			return bw.Animated.FrontDefault
		}
	}
	return r.Sprites.FrontDefault
}

// FormatID renders an id with at least three digits, e.g. 7 -> "007".
func FormatID(id int) string {
	return fmt.Sprintf("%03d", id)
}

// DisplayName upper-cases the first letter of a PokeAPI name.
func DisplayName(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

// MaxBaseStat is the ceiling stat bars are scaled against.
const MaxBaseStat = 255

// StatLabel turns "special-attack" into "special attack". Only the first
// hyphen is replaced.
func StatLabel(name string) string {
	return strings.Replace(name, "-", " ", 1)
}

// StatPercent scales a base stat against MaxBaseStat, capped at 100.
func StatPercent(base int) int {
	if base <= 0 {
		return 0
	}
	if p := base * 100 / MaxBaseStat; p < 100 {
		return p
	}
	return 100
}

// HeightMetres converts PokeAPI decimetres.
func (r Record) HeightMetres() float64 { return float64(r.Height) / 10 }

// WeightKilograms converts PokeAPI hectograms.
func (r Record) WeightKilograms() float64 { return float64(r.Weight) / 10 }

// AbilityNames lists abilities in slot order.
func (r Record) AbilityNames() []string {
	out := make([]string, 0, len(r.Abilities))
	for _, a := range r.Abilities {
		out = append(out, a.Ability.Name)
	}
	return out
}
