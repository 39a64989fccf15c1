// Package carddb holds the card catalog: an immutable, in-memory index of
// every known card, built from a cached snapshot that is rebuilt from the
// upstream provider when it goes stale.
package carddb

import (
	"golang.org/x/text/cases"
)

// CardType is one tag of the fixed type vocabulary.
type CardType string

const (
	TypeSpell    CardType = "Spell"
	TypeTrap     CardType = "Trap"
	TypeRitual   CardType = "Ritual"
	TypeFusion   CardType = "Fusion"
	TypeSynchro  CardType = "Synchro"
	TypeXYZ      CardType = "XYZ"
	TypeLink     CardType = "Link"
	TypeNormal   CardType = "Normal"
	TypeEffect   CardType = "Effect"
	TypePendulum CardType = "Pendulum"
)

// PlaceholderDate is the release date of the sentinel card.
const PlaceholderDate = "0000-01-01"

// Card is an immutable catalog entry.
type Card struct {
	ID       int64      `json:"id" yaml:"id"`
	Name     string     `json:"name" yaml:"name"`
	Date     string     `json:"date" yaml:"date"`
	Types    []CardType `json:"types" yaml:"types"`
	AltNames []string   `json:"alt_names,omitempty" yaml:"alt_names,omitempty"`
}

// HasType reports whether the card carries the given tag.
func (c Card) HasType(t CardType) bool {
	for _, ct := range c.Types {
		if ct == t {
			return true
		}
	}
	return false
}

// Placeholder returns the sentinel record handed out on lookup misses.
func Placeholder(id int64, name string) Card {
	return Card{
		ID:       id,
		Name:     name,
		Date:     PlaceholderDate,
		Types:    []CardType{},
		AltNames: []string{},
	}
}

// FoldName returns the key used for case-insensitive name comparison.
func FoldName(name string) string {
	return cases.Fold().String(name)
}
