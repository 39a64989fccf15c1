package carddb

import (
	"log/slog"
)

// Catalog is the read-only card index shared by every component of a run.
type Catalog struct {
	cards  []Card
	byID   map[int64]int
	byName map[string]int
	logger *slog.Logger
}

// NewCatalog indexes cards in the given order. Names and alternate names are
// matched case-insensitively; when two cards share a key the later card wins.
func NewCatalog(cards []Card, logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.Default()
	}

	c := &Catalog{
		cards:  make([]Card, len(cards)),
		byID:   make(map[int64]int, len(cards)),
		byName: make(map[string]int, len(cards)),
		logger: logger,
	}
	copy(c.cards, cards)

	for i, card := range c.cards {
		c.byID[card.ID] = i
		c.byName[FoldName(card.Name)] = i
		for _, alt := range card.AltNames {
			c.byName[FoldName(alt)] = i
		}
	}

	return c
}

// Len returns the number of cards in the catalog.
func (c *Catalog) Len() int {
	return len(c.cards)
}

// Cards returns every card in catalog order.
func (c *Catalog) Cards() []Card {
	out := make([]Card, len(c.cards))
	copy(out, c.cards)
	return out
}

// ByID looks a card up by its canonical id. A miss is logged and yields a
// placeholder carrying the requested id.
func (c *Catalog) ByID(id int64) (Card, bool) {
	idx, ok := c.byID[id]
	if !ok {
		c.logger.Warn("no card for id", "id", id)
		return Placeholder(id, "None"), false
	}
	return c.cards[idx], true
}

// ByName looks a card up by canonical or alternate name, ignoring case. A
// miss is logged and yields a placeholder carrying the requested name.
func (c *Catalog) ByName(name string) (Card, bool) {
	idx, ok := c.byName[FoldName(name)]
	if !ok {
		c.logger.Warn("no card for name", "name", name)
		return Placeholder(-1, name), false
	}
	return c.cards[idx], true
}

// Filter returns the cards matching pred, in catalog order.
func (c *Catalog) Filter(pred func(Card) bool) []Card {
	var hits []Card
	for _, card := range c.cards {
		if pred(card) {
			hits = append(hits, card)
		}
	}
	return hits
}
