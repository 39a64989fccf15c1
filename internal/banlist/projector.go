package banlist

import (
	"sort"

	"github.com/jjformat/jjlf/internal/carddb"
)

// Default projection window bounds.
const (
	DefaultStart = "2000-01-01"
	DefaultEnd   = "3000-12-31"
)

// CardPool is a snapshot projected onto the cards released within a window.
type CardPool struct {
	Banned      []carddb.Card `json:"banned" yaml:"banned"`
	Limited     []carddb.Card `json:"limited" yaml:"limited"`
	Semilimited []carddb.Card `json:"semilimited" yaml:"semilimited"`
	Unlimited   []carddb.Card `json:"unlimited" yaml:"unlimited"`
}

// Tier returns the cards in one tier.
func (p CardPool) Tier(t Tier) []carddb.Card {
	switch t {
	case Banned:
		return p.Banned
	case Limited:
		return p.Limited
	case Semilimited:
		return p.Semilimited
	default:
		return p.Unlimited
	}
}

// Len counts every card in the pool.
func (p CardPool) Len() int {
	return len(p.Banned) + len(p.Limited) + len(p.Semilimited) + len(p.Unlimited)
}

// Project partitions the catalog cards released in [start, end] by their tier
// in snapshot. A nil snapshot leaves everything unlimited. Each tier is
// ordered by case-insensitive name.
func Project(catalog *carddb.Catalog, snapshot *Snapshot, start, end string) CardPool {
	tierByID := make(map[int64]Tier)
	for _, t := range restricted {
		for _, id := range snapshot.IDs(t) {
			// A miss is logged by the catalog; the id cannot be placed in the pool.
			if _, ok := catalog.ByID(id); ok {
				tierByID[id] = t
			}
		}
	}

	var pool CardPool
	inWindow := catalog.Filter(func(c carddb.Card) bool {
		return start <= c.Date && c.Date <= end
	})
	for _, card := range inWindow {
		switch tierByID[card.ID] {
		case Banned:
			pool.Banned = append(pool.Banned, card)
		case Limited:
			pool.Limited = append(pool.Limited, card)
		case Semilimited:
			pool.Semilimited = append(pool.Semilimited, card)
		default:
			pool.Unlimited = append(pool.Unlimited, card)
		}
	}

	for _, cards := range [][]carddb.Card{pool.Banned, pool.Limited, pool.Semilimited, pool.Unlimited} {
		sortByName(cards)
	}
	return pool
}

func sortByName(cards []carddb.Card) {
	keys := make(map[int64]string, len(cards))
	for _, c := range cards {
		keys[c.ID] = carddb.FoldName(c.Name)
	}
	sort.SliceStable(cards, func(i, j int) bool {
		ki, kj := keys[cards[i].ID], keys[cards[j].ID]
		if ki != kj {
			return ki < kj
		}
		return cards[i].ID < cards[j].ID
	})
}
